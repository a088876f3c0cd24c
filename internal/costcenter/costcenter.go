package costcenter

import (
	"strings"
	"time"

	costcenterDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/costcenter"
)

const (
	TypeRevenue = "REVENUE"
	TypeExpense = "EXPENSE"

	ClassFixed    = "FIXED"
	ClassVariable = "VARIABLE"
)

type CostCenter struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	ExpenseClass string    `json:"expense_class"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeType collapses any input to REVENUE or EXPENSE, expense being the
// default for unknown values.
func NormalizeType(t string) string {
	if t == TypeRevenue {
		return TypeRevenue
	}
	return TypeExpense
}

// NormalizeExpenseClass collapses any input to FIXED or VARIABLE. Matching
// is case-insensitive; everything but FIXED, including empty, is variable.
func NormalizeExpenseClass(v string) string {
	if strings.ToUpper(v) == ClassFixed {
		return ClassFixed
	}
	return ClassVariable
}

func FromDataModel(cc *costcenterDatamodel.CostCenter) *CostCenter {
	return &CostCenter{
		ID:           cc.ID,
		CompanyID:    cc.CompanyID,
		Name:         cc.Name,
		Type:         cc.Type,
		ExpenseClass: cc.ExpenseClass,
		CreatedAt:    cc.CreatedAt,
		UpdatedAt:    cc.UpdatedAt,
	}
}

func FromDataModelSlice(centers []*costcenterDatamodel.CostCenter) []*CostCenter {
	result := make([]*CostCenter, len(centers))
	for i, cc := range centers {
		result[i] = FromDataModel(cc)
	}
	return result
}
