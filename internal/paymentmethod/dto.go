package paymentmethod

import (
	"github.com/gestorfin/dre-management/internal"
	"github.com/gestorfin/dre-management/internal/core/common/validation"
)

type CreatePaymentMethodDTO struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
}

func (dto CreatePaymentMethodDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("company_id", dto.CompanyID).Required()
	v.Field("name", dto.Name).Required().MaxLength(80)
	return v.Validate()
}

type UpdatePaymentMethodDTO struct {
	CompanyID int64   `json:"company_id"`
	Name      *string `json:"name"`
	Active    *bool   `json:"active"`
}

func (dto UpdatePaymentMethodDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("company_id", dto.CompanyID).Required()
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MaxLength(80)
	}
	return v.Validate()
}
