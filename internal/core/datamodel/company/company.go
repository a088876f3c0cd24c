package company

import "time"

type Company struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}

func (Company) TableName() string {
	return "companies"
}

// Member links a user to a company with a role. The pair is the primary key,
// one membership row per user per company.
type Member struct {
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	CompanyID int64     `gorm:"column:company_id;primaryKey"`
	Role      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
}

func (Member) TableName() string {
	return "company_users"
}
