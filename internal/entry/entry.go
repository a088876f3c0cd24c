package entry

import (
	"time"

	"github.com/shopspring/decimal"

	entryDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/entry"
	costcenterDomain "github.com/gestorfin/dre-management/internal/costcenter"
)

type Entry struct {
	ID              int64           `json:"id"`
	CompanyID       int64           `json:"company_id"`
	CompetenceMonth string          `json:"competence_month"`
	Type            string          `json:"type"`
	AccountID       int64           `json:"account_id"`
	CostCenterID    int64           `json:"cost_center_id"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedByID     int64           `json:"created_by_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	CostCenter *costcenterDomain.CostCenter `json:"cost_center,omitempty"`
}

func FromDataModel(e *entryDatamodel.Entry) *Entry {
	out := &Entry{
		ID:              e.ID,
		CompanyID:       e.CompanyID,
		CompetenceMonth: e.CompetenceMonth,
		Type:            e.Type,
		AccountID:       e.AccountID,
		CostCenterID:    e.CostCenterID,
		Description:     e.Description,
		Amount:          e.Amount,
		CreatedByID:     e.CreatedByID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.CostCenter != nil {
		out.CostCenter = costcenterDomain.FromDataModel(e.CostCenter)
	}
	return out
}

func FromDataModelSlice(entries []*entryDatamodel.Entry) []*Entry {
	result := make([]*Entry, len(entries))
	for i, e := range entries {
		result[i] = FromDataModel(e)
	}
	return result
}
