package entry

import (
	"time"

	"github.com/shopspring/decimal"

	accountDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/account"
	costcenterDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/costcenter"
)

type Entry struct {
	ID              int64           `gorm:"primaryKey"`
	CompanyID       int64           `gorm:"column:company_id;not null;index:idx_entries_company_competence"`
	CompetenceMonth string          `gorm:"column:competence_month;not null;index:idx_entries_company_competence"`
	Type            string          `gorm:"not null"`
	AccountID       int64           `gorm:"column:account_id;not null"`
	CostCenterID    int64           `gorm:"column:cost_center_id;not null;index"`
	Description     string          `gorm:"not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedByID     int64           `gorm:"column:created_by_id;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;default:now()"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;default:now()"`

	Account    *accountDatamodel.Account       `gorm:"foreignKey:AccountID"`
	CostCenter *costcenterDatamodel.CostCenter `gorm:"foreignKey:CostCenterID"`
}

func (Entry) TableName() string {
	return "entries"
}
