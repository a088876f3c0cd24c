package postgres

import (
	costcenterDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/costcenter"
	entryDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/entry"
	"github.com/gestorfin/dre-management/internal/costcenter"
	"gorm.io/gorm"
)

type CostCenterRepository struct {
	db *gorm.DB
}

func NewCostCenterRepository(db *gorm.DB) costcenter.Repository {
	return &CostCenterRepository{db: db}
}

func (r *CostCenterRepository) Create(cc *costcenterDatamodel.CostCenter) error {
	return r.db.Create(cc).Error
}

func (r *CostCenterRepository) GetByCompany(companyID int64) ([]*costcenterDatamodel.CostCenter, error) {
	var centers []*costcenterDatamodel.CostCenter
	err := r.db.Where("company_id = ?", companyID).
		Order("type ASC").
		Order("name ASC").
		Find(&centers).Error
	return centers, err
}

func (r *CostCenterRepository) GetByIDAndCompany(id, companyID int64) (*costcenterDatamodel.CostCenter, error) {
	var cc costcenterDatamodel.CostCenter
	err := r.db.Where("id = ? AND company_id = ?", id, companyID).First(&cc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cc, nil
}

func (r *CostCenterRepository) Update(cc *costcenterDatamodel.CostCenter) error {
	return r.db.Save(cc).Error
}

func (r *CostCenterRepository) Delete(id int64) error {
	return r.db.Delete(&costcenterDatamodel.CostCenter{}, id).Error
}

func (r *CostCenterRepository) CountEntries(companyID, costCenterID int64) (int64, error) {
	var count int64
	err := r.db.Model(&entryDatamodel.Entry{}).
		Where("company_id = ? AND cost_center_id = ?", companyID, costCenterID).
		Count(&count).Error
	return count, err
}
