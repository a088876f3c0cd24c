package postgres

import (
	paymentmethodDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/paymentmethod"
	"github.com/gestorfin/dre-management/internal/paymentmethod"
	"gorm.io/gorm"
)

type PaymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) paymentmethod.Repository {
	return &PaymentMethodRepository{db: db}
}

func (r *PaymentMethodRepository) Create(pm *paymentmethodDatamodel.PaymentMethod) error {
	return r.db.Create(pm).Error
}

func (r *PaymentMethodRepository) GetByCompany(companyID int64) ([]*paymentmethodDatamodel.PaymentMethod, error) {
	var methods []*paymentmethodDatamodel.PaymentMethod
	err := r.db.Where("company_id = ?", companyID).
		Order("active DESC").
		Order("name ASC").
		Find(&methods).Error
	return methods, err
}

func (r *PaymentMethodRepository) GetByIDAndCompany(id, companyID int64) (*paymentmethodDatamodel.PaymentMethod, error) {
	var pm paymentmethodDatamodel.PaymentMethod
	err := r.db.Where("id = ? AND company_id = ?", id, companyID).First(&pm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &pm, nil
}

func (r *PaymentMethodRepository) GetByCompanyAndName(companyID int64, name string) (*paymentmethodDatamodel.PaymentMethod, error) {
	var pm paymentmethodDatamodel.PaymentMethod
	err := r.db.Where("company_id = ? AND name = ?", companyID, name).First(&pm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &pm, nil
}

func (r *PaymentMethodRepository) Update(pm *paymentmethodDatamodel.PaymentMethod) error {
	return r.db.Save(pm).Error
}
