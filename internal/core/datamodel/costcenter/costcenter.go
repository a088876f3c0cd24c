package costcenter

import "time"

type CostCenter struct {
	ID           int64     `gorm:"primaryKey"`
	CompanyID    int64     `gorm:"column:company_id;not null;index"`
	Name         string    `gorm:"not null"`
	Type         string    `gorm:"not null"`
	ExpenseClass string    `gorm:"column:expense_class;not null;default:VARIABLE"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `gorm:"column:updated_at;default:now()"`
}

func (CostCenter) TableName() string {
	return "cost_centers"
}
