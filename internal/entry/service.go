package entry

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gestorfin/dre-management/internal"
	"github.com/gestorfin/dre-management/internal/auth"
	"github.com/gestorfin/dre-management/internal/core/common/validation"
	costcenterDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/costcenter"
	entryDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/entry"
)

type Repository interface {
	Create(e *entryDatamodel.Entry) error
	GetByIDAndCompany(id, companyID int64) (*entryDatamodel.Entry, error)
	List(filter ListEntriesFilter) ([]*entryDatamodel.Entry, error)
	Update(e *entryDatamodel.Entry) error
	Delete(id int64) error
}

type MembershipChecker interface {
	RequireMembership(userID, companyID int64) error
}

type CostCenterResolver interface {
	GetByIDAndCompany(id, companyID int64) (*costcenterDatamodel.CostCenter, error)
}

// DefaultAccountResolver picks the account an entry posts to when the
// caller supplies none.
type DefaultAccountResolver interface {
	EnsureDefaultAccount(companyID int64, accountType string) (int64, error)
}

// PasswordVerifier re-checks the caller's login password before a
// destructive mutation goes through.
type PasswordVerifier interface {
	VerifyPassword(userID int64, password string) error
}

type Service struct {
	repo        Repository
	membership  MembershipChecker
	costCenters CostCenterResolver
	accounts    DefaultAccountResolver
	passwords   PasswordVerifier
	logger      *slog.Logger
}

func NewService(repo Repository, membership MembershipChecker, costCenters CostCenterResolver, accounts DefaultAccountResolver, passwords PasswordVerifier, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		membership:  membership,
		costCenters: costCenters,
		accounts:    accounts,
		passwords:   passwords,
		logger:      logger,
	}
}

// CreateEntry records a ledger fact. The entry's type follows its cost
// center's type, and the posting account is resolved from that type rather
// than chosen by the caller.
func (s *Service) CreateEntry(userID int64, dto CreateEntryDTO) (*Entry, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.membership.RequireMembership(userID, dto.CompanyID); err != nil {
		return nil, err
	}

	cc, err := s.costCenters.GetByIDAndCompany(dto.CostCenterID, dto.CompanyID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load cost center", err)
	}
	if cc == nil {
		return nil, internal.ErrCostCenterNotFound
	}

	accountID, err := s.accounts.EnsureDefaultAccount(dto.CompanyID, cc.Type)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(dto.Description)
	if description == "" {
		description = cc.Name
	}

	record := &entryDatamodel.Entry{
		CompanyID:       dto.CompanyID,
		CompetenceMonth: dto.CompetenceMonth,
		Type:            cc.Type,
		AccountID:       accountID,
		CostCenterID:    cc.ID,
		Description:     description,
		Amount:          dto.Amount,
		CreatedByID:     userID,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create entry", "error", err, "company_id", dto.CompanyID)
		return nil, internal.NewInternalError("failed to create entry", err)
	}

	s.logger.Info("entry created", "entry_id", record.ID, "company_id", record.CompanyID, "competence", record.CompetenceMonth)
	return FromDataModel(record), nil
}

func (s *Service) ListEntries(userID int64, filter ListEntriesFilter) ([]*Entry, error) {
	if filter.CompanyID == 0 {
		return nil, internal.NewValidationError("companyId is required", internal.ErrCodeMissingCompany)
	}
	if filter.CompetenceMonth != "" && !validation.IsValidPeriod(filter.CompetenceMonth) {
		return nil, internal.NewValidationError("competence must be in YYYY-MM format", internal.ErrCodeInvalidPeriod)
	}
	if err := s.membership.RequireMembership(userID, filter.CompanyID); err != nil {
		return nil, err
	}

	records, err := s.repo.List(filter)
	if err != nil {
		return nil, internal.NewInternalError("failed to list entries", err)
	}
	return FromDataModelSlice(records), nil
}

// UpdateEntry rewrites an entry after re-validating the caller's password.
// A wrong password is rejected before the entry is even looked up, so the
// caller cannot probe for entry existence with bad credentials.
func (s *Service) UpdateEntry(userID, entryID int64, dto UpdateEntryDTO) (*Entry, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.membership.RequireMembership(userID, dto.CompanyID); err != nil {
		return nil, err
	}
	if err := s.verifyPassword(userID, dto.Password); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByIDAndCompany(entryID, dto.CompanyID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load entry", err)
	}
	if record == nil {
		return nil, internal.ErrEntryNotFound
	}

	cc, err := s.costCenters.GetByIDAndCompany(dto.CostCenterID, dto.CompanyID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load cost center", err)
	}
	if cc == nil {
		return nil, internal.ErrCostCenterNotFound
	}

	accountID, err := s.accounts.EnsureDefaultAccount(dto.CompanyID, cc.Type)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(dto.Description)
	if description == "" {
		description = cc.Name
	}

	record.CompetenceMonth = dto.CompetenceMonth
	record.Type = cc.Type
	record.AccountID = accountID
	record.CostCenterID = cc.ID
	record.Description = description
	record.Amount = dto.Amount

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update entry", "error", err, "entry_id", entryID)
		return nil, internal.NewInternalError("failed to update entry", err)
	}

	s.logger.Info("entry updated", "entry_id", record.ID, "company_id", record.CompanyID)
	return FromDataModel(record), nil
}

func (s *Service) DeleteEntry(userID, entryID int64, dto DeleteEntryDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if err := s.membership.RequireMembership(userID, dto.CompanyID); err != nil {
		return err
	}
	if err := s.verifyPassword(userID, dto.Password); err != nil {
		return err
	}

	record, err := s.repo.GetByIDAndCompany(entryID, dto.CompanyID)
	if err != nil {
		return internal.NewInternalError("failed to load entry", err)
	}
	if record == nil {
		return internal.ErrEntryNotFound
	}

	if err := s.repo.Delete(record.ID); err != nil {
		s.logger.Error("failed to delete entry", "error", err, "entry_id", entryID)
		return internal.NewInternalError("failed to delete entry", err)
	}

	s.logger.Info("entry deleted", "entry_id", record.ID, "company_id", record.CompanyID)
	return nil
}

func (s *Service) verifyPassword(userID int64, password string) error {
	if err := s.passwords.VerifyPassword(userID, password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return internal.NewUnauthorizedError("invalid password", internal.ErrCodeInvalidCredentials)
		}
		return internal.NewInternalError("failed to verify password", err)
	}
	return nil
}
