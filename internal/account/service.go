package account

import (
	"log/slog"
	"strings"

	"github.com/gestorfin/dre-management/internal"
	accountDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/account"
)

type Repository interface {
	Create(account *accountDatamodel.Account) error
	GetByCompany(companyID int64) ([]*accountDatamodel.Account, error)
	GetOldestByCompanyAndType(companyID int64, accountType string) (*accountDatamodel.Account, error)
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

func (s *Service) CreateAccount(userID int64, dto CreateAccountDTO) (*Account, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.membership.RequireMembership(userID, dto.CompanyID); err != nil {
		return nil, err
	}

	record := &accountDatamodel.Account{
		CompanyID: dto.CompanyID,
		Name:      strings.TrimSpace(dto.Name),
		Type:      NormalizeType(dto.Type),
		Group:     dto.Group,
		SortOrder: dto.SortOrder,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create account", "error", err, "company_id", dto.CompanyID)
		return nil, internal.NewInternalError("failed to create account", err)
	}

	s.logger.Info("account created", "account_id", record.ID, "company_id", dto.CompanyID, "group", record.Group)
	return FromDataModel(record), nil
}

func (s *Service) ListAccounts(userID, companyID int64) ([]*Account, error) {
	if companyID == 0 {
		return nil, internal.NewValidationError("companyId is required", internal.ErrCodeMissingCompany)
	}
	if err := s.membership.RequireMembership(userID, companyID); err != nil {
		return nil, err
	}

	records, err := s.repo.GetByCompany(companyID)
	if err != nil {
		s.logger.Error("failed to list accounts", "error", err, "company_id", companyID)
		return nil, internal.NewInternalError("failed to list accounts", err)
	}
	return FromDataModelSlice(records), nil
}

// EnsureDefaultAccount resolves the account an entry posts to when the caller
// does not pick one: the oldest account of matching type, lazily created on
// first use. Idempotent, later entries reuse the same account.
func (s *Service) EnsureDefaultAccount(companyID int64, accountType string) (int64, error) {
	accountType = NormalizeType(accountType)

	existing, err := s.repo.GetOldestByCompanyAndType(companyID, accountType)
	if err != nil {
		return 0, internal.NewInternalError("failed to resolve default account", err)
	}
	if existing != nil {
		return existing.ID, nil
	}

	record := &accountDatamodel.Account{
		CompanyID: companyID,
		Type:      accountType,
		SortOrder: 1,
	}
	if accountType == TypeRevenue {
		record.Name = DefaultRevenueAccountName
		record.Group = DefaultRevenueAccountGroup
	} else {
		record.Name = DefaultExpenseAccountName
		record.Group = DefaultExpenseAccountGroup
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create default account", "error", err, "company_id", companyID, "type", accountType)
		return 0, internal.NewInternalError("failed to create default account", err)
	}

	s.logger.Info("default account created", "account_id", record.ID, "company_id", companyID, "type", accountType)
	return record.ID, nil
}
