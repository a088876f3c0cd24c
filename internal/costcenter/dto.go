package costcenter

import (
	"github.com/gestorfin/dre-management/internal"
	"github.com/gestorfin/dre-management/internal/core/common/validation"
)

type CreateCostCenterDTO struct {
	CompanyID    int64  `json:"company_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	ExpenseClass string `json:"expense_class"`
	// ExpenseCategory is a legacy alias for expense_class kept for older
	// front-end payloads; expense_class wins when both are set.
	ExpenseCategory string `json:"expense_category"`
}

func (dto CreateCostCenterDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("company_id", dto.CompanyID).Required()
	v.Field("name", dto.Name).Required().MaxLength(120)
	return v.Validate()
}

// RawExpenseClass resolves the expense class across the current field and its
// legacy alias.
func (dto CreateCostCenterDTO) RawExpenseClass() string {
	if dto.ExpenseClass != "" {
		return dto.ExpenseClass
	}
	return dto.ExpenseCategory
}

type UpdateCostCenterDTO struct {
	CompanyID       int64  `json:"company_id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	ExpenseClass    string `json:"expense_class"`
	ExpenseCategory string `json:"expense_category"`
}

func (dto UpdateCostCenterDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("company_id", dto.CompanyID).Required()
	v.Field("name", dto.Name).Required().MaxLength(120)
	return v.Validate()
}

func (dto UpdateCostCenterDTO) RawExpenseClass() string {
	if dto.ExpenseClass != "" {
		return dto.ExpenseClass
	}
	return dto.ExpenseCategory
}

type DeleteCostCenterDTO struct {
	CompanyID int64 `json:"company_id"`
}
