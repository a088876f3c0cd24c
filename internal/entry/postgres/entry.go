package postgres

import (
	entryDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/entry"
	"github.com/gestorfin/dre-management/internal/entry"
	"gorm.io/gorm"
)

type EntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) entry.Repository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) Create(e *entryDatamodel.Entry) error {
	return r.db.Create(e).Error
}

func (r *EntryRepository) GetByIDAndCompany(id, companyID int64) (*entryDatamodel.Entry, error) {
	var e entryDatamodel.Entry
	err := r.db.Where("id = ? AND company_id = ?", id, companyID).First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EntryRepository) List(filter entry.ListEntriesFilter) ([]*entryDatamodel.Entry, error) {
	var entries []*entryDatamodel.Entry
	q := r.db.Preload("CostCenter").
		Where("company_id = ?", filter.CompanyID)
	if filter.CompetenceMonth != "" {
		q = q.Where("competence_month = ?", filter.CompetenceMonth)
	}
	if filter.CostCenterID != 0 {
		q = q.Where("cost_center_id = ?", filter.CostCenterID)
	}
	err := q.Order("competence_month DESC").
		Order("id DESC").
		Find(&entries).Error
	return entries, err
}

func (r *EntryRepository) Update(e *entryDatamodel.Entry) error {
	return r.db.Save(e).Error
}

func (r *EntryRepository) Delete(id int64) error {
	return r.db.Delete(&entryDatamodel.Entry{}, id).Error
}
