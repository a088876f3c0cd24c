package postgres

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	entryDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/entry"
	"github.com/gestorfin/dre-management/internal/report"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) report.Repository {
	return &ReportRepository{db: db}
}

type entryRow struct {
	CompetenceMonth string          `gorm:"column:competence_month"`
	Amount          decimal.Decimal `gorm:"column:amount"`
	Type            string          `gorm:"column:type"`
	AccountGroup    string          `gorm:"column:account_group"`
	CostCenterName  string          `gorm:"column:cost_center_name"`
	CostCenterType  string          `gorm:"column:cost_center_type"`
	CostCenterClass string          `gorm:"column:cost_center_class"`
}

const rowColumns = `entries.competence_month,
	entries.amount,
	entries.type,
	COALESCE(accounts.dre_group, '') AS account_group,
	COALESCE(cost_centers.name, '') AS cost_center_name,
	COALESCE(cost_centers.type, '') AS cost_center_type,
	COALESCE(cost_centers.expense_class, '') AS cost_center_class`

func (r *ReportRepository) baseQuery() *gorm.DB {
	return r.db.Model(&entryDatamodel.Entry{}).
		Select(rowColumns).
		Joins("LEFT JOIN accounts ON accounts.id = entries.account_id").
		Joins("LEFT JOIN cost_centers ON cost_centers.id = entries.cost_center_id")
}

func (r *ReportRepository) ListForPeriod(companyID int64, competenceMonth string, costCenterID int64) ([]report.EntryRow, error) {
	q := r.baseQuery().
		Where("entries.company_id = ? AND entries.competence_month = ?", companyID, competenceMonth)
	if costCenterID != 0 {
		q = q.Where("entries.cost_center_id = ?", costCenterID)
	}

	var rows []entryRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toReportRows(rows), nil
}

func (r *ReportRepository) ListForCompany(companyID int64) ([]report.EntryRow, error) {
	var rows []entryRow
	err := r.baseQuery().
		Where("entries.company_id = ?", companyID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toReportRows(rows), nil
}

func toReportRows(rows []entryRow) []report.EntryRow {
	out := make([]report.EntryRow, len(rows))
	for i, row := range rows {
		out[i] = report.EntryRow{
			CompetenceMonth: row.CompetenceMonth,
			Amount:          row.Amount,
			Type:            row.Type,
			AccountGroup:    row.AccountGroup,
			CostCenterName:  row.CostCenterName,
			CostCenterType:  row.CostCenterType,
			CostCenterClass: row.CostCenterClass,
		}
	}
	return out
}
