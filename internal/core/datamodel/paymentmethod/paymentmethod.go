package paymentmethod

import "time"

type PaymentMethod struct {
	ID        int64     `gorm:"primaryKey"`
	CompanyID int64     `gorm:"column:company_id;not null;uniqueIndex:idx_payment_methods_company_name"`
	Name      string    `gorm:"not null;uniqueIndex:idx_payment_methods_company_name"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}
