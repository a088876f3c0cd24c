package entry

import (
	"github.com/shopspring/decimal"

	"github.com/gestorfin/dre-management/internal"
	"github.com/gestorfin/dre-management/internal/core/common/validation"
)

type CreateEntryDTO struct {
	CompanyID       int64           `json:"company_id"`
	CompetenceMonth string          `json:"competence_month"`
	CostCenterID    int64           `json:"cost_center_id"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
}

func (dto CreateEntryDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("company_id", dto.CompanyID).Required()
	v.Field("competence_month", dto.CompetenceMonth).Required().Period()
	v.Field("cost_center_id", dto.CostCenterID).Required()
	v.Field("amount", dto.Amount).Positive()
	v.Field("description", dto.Description).MaxLength(255)
	return v.Validate()
}

type UpdateEntryDTO struct {
	CompanyID       int64           `json:"company_id"`
	CompetenceMonth string          `json:"competence_month"`
	CostCenterID    int64           `json:"cost_center_id"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	// Password is the caller's login password, re-entered to confirm
	// the mutation.
	Password string `json:"password"`
}

func (dto UpdateEntryDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("company_id", dto.CompanyID).Required()
	v.Field("competence_month", dto.CompetenceMonth).Required().Period()
	v.Field("cost_center_id", dto.CostCenterID).Required()
	v.Field("amount", dto.Amount).Positive()
	v.Field("description", dto.Description).MaxLength(255)
	v.Field("password", dto.Password).Required()
	return v.Validate()
}

type DeleteEntryDTO struct {
	CompanyID int64  `json:"company_id"`
	Password  string `json:"password"`
}

func (dto DeleteEntryDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("company_id", dto.CompanyID).Required()
	v.Field("password", dto.Password).Required()
	return v.Validate()
}

type ListEntriesFilter struct {
	CompanyID       int64
	CompetenceMonth string
	CostCenterID    int64
}
