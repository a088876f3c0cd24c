package paymentmethod

import (
	"time"

	paymentmethodDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/paymentmethod"
)

type PaymentMethod struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDataModel(pm *paymentmethodDatamodel.PaymentMethod) *PaymentMethod {
	return &PaymentMethod{
		ID:        pm.ID,
		CompanyID: pm.CompanyID,
		Name:      pm.Name,
		Active:    pm.Active,
		CreatedAt: pm.CreatedAt,
		UpdatedAt: pm.UpdatedAt,
	}
}

func FromDataModelSlice(methods []*paymentmethodDatamodel.PaymentMethod) []*PaymentMethod {
	result := make([]*PaymentMethod, len(methods))
	for i, pm := range methods {
		result[i] = FromDataModel(pm)
	}
	return result
}
