package postgres

import (
	"github.com/gestorfin/dre-management/internal/account"
	accountDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/account"
	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) account.Repository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(a *accountDatamodel.Account) error {
	return r.db.Create(a).Error
}

func (r *AccountRepository) GetByCompany(companyID int64) ([]*accountDatamodel.Account, error) {
	var accounts []*accountDatamodel.Account
	err := r.db.Where("company_id = ?", companyID).
		Order("sort_order ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepository) GetOldestByCompanyAndType(companyID int64, accountType string) (*accountDatamodel.Account, error) {
	var a accountDatamodel.Account
	err := r.db.Where("company_id = ? AND type = ?", companyID, accountType).
		Order("created_at ASC").
		First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
