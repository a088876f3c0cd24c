package costcenter

import (
	"log/slog"
	"strings"

	"github.com/gestorfin/dre-management/internal"
	costcenterDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/costcenter"
)

type Repository interface {
	Create(cc *costcenterDatamodel.CostCenter) error
	GetByCompany(companyID int64) ([]*costcenterDatamodel.CostCenter, error)
	GetByIDAndCompany(id, companyID int64) (*costcenterDatamodel.CostCenter, error)
	Update(cc *costcenterDatamodel.CostCenter) error
	Delete(id int64) error
	CountEntries(companyID, costCenterID int64) (int64, error)
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

func (s *Service) CreateCostCenter(userID int64, dto CreateCostCenterDTO) (*CostCenter, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.membership.RequireMembership(userID, dto.CompanyID); err != nil {
		return nil, err
	}

	record := &costcenterDatamodel.CostCenter{
		CompanyID:    dto.CompanyID,
		Name:         strings.TrimSpace(dto.Name),
		Type:         NormalizeType(dto.Type),
		ExpenseClass: resolveExpenseClass(dto.Type, dto.RawExpenseClass()),
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create cost center", "error", err, "company_id", dto.CompanyID)
		return nil, internal.NewInternalError("failed to create cost center", err)
	}

	s.logger.Info("cost center created", "cost_center_id", record.ID, "company_id", dto.CompanyID, "type", record.Type)
	return FromDataModel(record), nil
}

func (s *Service) ListCostCenters(userID, companyID int64) ([]*CostCenter, error) {
	if companyID == 0 {
		return nil, internal.NewValidationError("companyId is required", internal.ErrCodeMissingCompany)
	}
	if err := s.membership.RequireMembership(userID, companyID); err != nil {
		return nil, err
	}

	records, err := s.repo.GetByCompany(companyID)
	if err != nil {
		s.logger.Error("failed to list cost centers", "error", err, "company_id", companyID)
		return nil, internal.NewInternalError("failed to list cost centers", err)
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) UpdateCostCenter(userID, costCenterID int64, dto UpdateCostCenterDTO) (*CostCenter, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.membership.RequireMembership(userID, dto.CompanyID); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByIDAndCompany(costCenterID, dto.CompanyID)
	if err != nil {
		s.logger.Error("failed to load cost center", "error", err, "cost_center_id", costCenterID)
		return nil, internal.NewInternalError("failed to update cost center", err)
	}
	if record == nil {
		return nil, internal.ErrCostCenterNotFound
	}

	record.Name = strings.TrimSpace(dto.Name)
	record.Type = NormalizeType(dto.Type)
	record.ExpenseClass = resolveExpenseClass(dto.Type, dto.RawExpenseClass())

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update cost center", "error", err, "cost_center_id", costCenterID)
		return nil, internal.NewInternalError("failed to update cost center", err)
	}

	return FromDataModel(record), nil
}

// DeleteCostCenter removes a cost center unless entries still reference it;
// referenced centers are rejected, never cascaded.
func (s *Service) DeleteCostCenter(userID, costCenterID, companyID int64) error {
	if companyID == 0 {
		return internal.NewValidationError("companyId is required", internal.ErrCodeMissingCompany)
	}
	if err := s.membership.RequireMembership(userID, companyID); err != nil {
		return err
	}

	record, err := s.repo.GetByIDAndCompany(costCenterID, companyID)
	if err != nil {
		s.logger.Error("failed to load cost center", "error", err, "cost_center_id", costCenterID)
		return internal.NewInternalError("failed to delete cost center", err)
	}
	if record == nil {
		return internal.ErrCostCenterNotFound
	}

	count, err := s.repo.CountEntries(companyID, costCenterID)
	if err != nil {
		s.logger.Error("failed to count entries for cost center", "error", err, "cost_center_id", costCenterID)
		return internal.NewInternalError("failed to delete cost center", err)
	}
	if count > 0 {
		return internal.ErrCostCenterInUse
	}

	if err := s.repo.Delete(costCenterID); err != nil {
		s.logger.Error("failed to delete cost center", "error", err, "cost_center_id", costCenterID)
		return internal.NewInternalError("failed to delete cost center", err)
	}

	s.logger.Info("cost center deleted", "cost_center_id", costCenterID, "company_id", companyID)
	return nil
}

// resolveExpenseClass only lets expense centers carry FIXED; revenue centers
// always store VARIABLE so the class never matters for them.
func resolveExpenseClass(rawType, rawClass string) string {
	if NormalizeType(rawType) == TypeExpense {
		return NormalizeExpenseClass(rawClass)
	}
	return ClassVariable
}
