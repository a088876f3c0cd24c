package postgres

import (
	"github.com/gestorfin/dre-management/internal/company"
	companyDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/company"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) company.Repository {
	return &CompanyRepository{db: db}
}

// Create persists the company and its owner membership in one transaction.
func (r *CompanyRepository) Create(c *companyDatamodel.Company, ownerUserID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		member := &companyDatamodel.Member{
			UserID:    ownerUserID,
			CompanyID: c.ID,
			Role:      company.RoleOwner,
		}
		return tx.Create(member).Error
	})
}

func (r *CompanyRepository) GetMembership(userID, companyID int64) (*companyDatamodel.Member, error) {
	var member companyDatamodel.Member
	err := r.db.Where("user_id = ? AND company_id = ?", userID, companyID).First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *CompanyRepository) GetMembershipsForUser(userID int64) ([]*companyDatamodel.Member, error) {
	var members []*companyDatamodel.Member
	err := r.db.Where("user_id = ?", userID).Find(&members).Error
	return members, err
}

func (r *CompanyRepository) GetByID(companyID int64) (*companyDatamodel.Company, error) {
	var c companyDatamodel.Company
	err := r.db.Where("id = ?", companyID).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
