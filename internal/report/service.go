package report

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gestorfin/dre-management/internal"
	"github.com/gestorfin/dre-management/internal/core/common/validation"
)

// EntryRow is the flat projection of an entry the reports fold over.
// Cost center columns are empty strings when the relation cannot be
// resolved.
type EntryRow struct {
	CompetenceMonth string
	Amount          decimal.Decimal
	Type            string
	AccountGroup    string
	CostCenterName  string
	CostCenterType  string
	CostCenterClass string
}

type Repository interface {
	ListForPeriod(companyID int64, competenceMonth string, costCenterID int64) ([]EntryRow, error)
	ListForCompany(companyID int64) ([]EntryRow, error)
}

type MembershipChecker interface {
	RequireMembership(userID, companyID int64) error
}

type Service struct {
	repo       Repository
	membership MembershipChecker
	logger     *slog.Logger
}

func NewService(repo Repository, membership MembershipChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		membership: membership,
		logger:     logger,
	}
}

// fold accumulates group totals and the fixed/variable expense split over
// one set of rows. Revenue rows never enter the split.
type fold struct {
	groupTotals     map[string]decimal.Decimal
	despesaFixa     decimal.Decimal
	despesaVariavel decimal.Decimal
}

func newFold() *fold {
	return &fold{groupTotals: make(map[string]decimal.Decimal)}
}

func (f *fold) add(row EntryRow) {
	group := row.AccountGroup
	if group == "" {
		group = GroupSemGrupo
	}
	f.groupTotals[group] = f.groupTotals[group].Add(row.Amount)

	if IsRevenue(row.CostCenterType, row.Type) {
		return
	}
	if NormalizeExpenseClass(row.CostCenterClass) == ClassFixed {
		f.despesaFixa = f.despesaFixa.Add(row.Amount)
	} else {
		f.despesaVariavel = f.despesaVariavel.Add(row.Amount)
	}
}

func (f *fold) statement() Statement {
	st := BuildStatement(f.groupTotals)
	st.Totais.DespesaFixa = f.despesaFixa
	st.Totais.DespesaVariavel = f.despesaVariavel
	st.Totais.DespesaTotal = f.despesaFixa.Add(f.despesaVariavel)
	return st
}

func (s *Service) Statement(userID int64, q StatementQuery) (*StatementReport, error) {
	if err := validatePeriodQuery(q.CompanyID, q.CompetenceMonth); err != nil {
		return nil, err
	}
	if err := s.membership.RequireMembership(userID, q.CompanyID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListForPeriod(q.CompanyID, q.CompetenceMonth, q.CostCenterID)
	if err != nil {
		s.logger.Error("failed to fetch entries for statement", "error", err, "company_id", q.CompanyID, "competence", q.CompetenceMonth)
		return nil, internal.NewInternalError("failed to build statement", err)
	}

	f := newFold()
	for _, row := range rows {
		f.add(row)
	}
	st := f.statement()

	out := &StatementReport{
		CompanyID:       q.CompanyID,
		CompetenceMonth: q.CompetenceMonth,
		Grupos:          st.Grupos,
		Totais:          st.Totais,
	}
	if q.CostCenterID != 0 {
		id := q.CostCenterID
		out.CostCenterID = &id
	}
	return out, nil
}

// StatementByCostCenter partitions the period's entries by cost center name
// and builds one statement per partition. Entries with no resolvable cost
// center land in the "Sem Centro" bucket. The partitioning is strict, so the
// per-center totals sum back to the single-period statement.
func (s *Service) StatementByCostCenter(userID int64, q StatementQuery) (*CostCenterReport, error) {
	if err := validatePeriodQuery(q.CompanyID, q.CompetenceMonth); err != nil {
		return nil, err
	}
	if err := s.membership.RequireMembership(userID, q.CompanyID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListForPeriod(q.CompanyID, q.CompetenceMonth, 0)
	if err != nil {
		s.logger.Error("failed to fetch entries for cost center statement", "error", err, "company_id", q.CompanyID, "competence", q.CompetenceMonth)
		return nil, internal.NewInternalError("failed to build statement", err)
	}

	folds := make(map[string]*fold)
	for _, row := range rows {
		name := row.CostCenterName
		if name == "" {
			name = "Sem Centro"
		}
		f, ok := folds[name]
		if !ok {
			f = newFold()
			folds[name] = f
		}
		f.add(row)
	}

	centros := make(map[string]Statement, len(folds))
	for name, f := range folds {
		centros[name] = f.statement()
	}

	return &CostCenterReport{
		CompanyID:       q.CompanyID,
		CompetenceMonth: q.CompetenceMonth,
		Centros:         centros,
	}, nil
}

// Series builds one statement per competence month inside the inclusive
// [from, to] range. The company's whole history is fetched and filtered
// here; entries with malformed competence strings are excluded. Months with
// no entries do not appear in the output.
func (s *Service) Series(userID int64, q SeriesQuery) (*SeriesReport, error) {
	if q.CompanyID == 0 {
		return nil, internal.NewValidationError("companyId is required", internal.ErrCodeMissingCompany)
	}
	if !validation.IsValidPeriod(q.From) || !validation.IsValidPeriod(q.To) {
		return nil, internal.NewValidationError("from and to must be in YYYY-MM format", internal.ErrCodeInvalidPeriod)
	}
	if err := s.membership.RequireMembership(userID, q.CompanyID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListForCompany(q.CompanyID)
	if err != nil {
		s.logger.Error("failed to fetch entries for series", "error", err, "company_id", q.CompanyID)
		return nil, internal.NewInternalError("failed to build series", err)
	}

	from, _ := ymToInt(q.From)
	to, _ := ymToInt(q.To)

	folds := make(map[string]*fold)
	for _, row := range rows {
		ym, ok := ymToInt(row.CompetenceMonth)
		if !ok || ym < from || ym > to {
			continue
		}
		f, exists := folds[row.CompetenceMonth]
		if !exists {
			f = newFold()
			folds[row.CompetenceMonth] = f
		}
		f.add(row)
	}

	months := make([]string, 0, len(folds))
	for month := range folds {
		months = append(months, month)
	}
	// Lexicographic order is chronological because the format is zero
	// padded.
	sort.Strings(months)

	series := make([]MonthStatement, 0, len(months))
	for _, month := range months {
		st := folds[month].statement()
		series = append(series, MonthStatement{
			Month:  month,
			Grupos: st.Grupos,
			Totais: st.Totais,
		})
	}

	return &SeriesReport{
		CompanyID: q.CompanyID,
		From:      q.From,
		To:        q.To,
		Series:    series,
	}, nil
}

func validatePeriodQuery(companyID int64, competenceMonth string) error {
	if companyID == 0 {
		return internal.NewValidationError("companyId is required", internal.ErrCodeMissingCompany)
	}
	if competenceMonth == "" {
		return internal.NewValidationError("competenceMonth is required", internal.ErrCodeValidationFailed)
	}
	if !validation.IsValidPeriod(competenceMonth) {
		return internal.NewValidationError("competenceMonth must be in YYYY-MM format", internal.ErrCodeInvalidPeriod)
	}
	return nil
}

// ymToInt turns a YYYY-MM competence string into a comparable integer,
// year*100+month. Malformed strings report false.
func ymToInt(ym string) (int, bool) {
	parts := strings.SplitN(ym, "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return year*100 + month, true
}
