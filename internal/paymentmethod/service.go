package paymentmethod

import (
	"log/slog"
	"strings"

	"github.com/gestorfin/dre-management/internal"
	paymentmethodDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/paymentmethod"
)

type Repository interface {
	Create(pm *paymentmethodDatamodel.PaymentMethod) error
	GetByCompany(companyID int64) ([]*paymentmethodDatamodel.PaymentMethod, error)
	GetByIDAndCompany(id, companyID int64) (*paymentmethodDatamodel.PaymentMethod, error)
	GetByCompanyAndName(companyID int64, name string) (*paymentmethodDatamodel.PaymentMethod, error)
	Update(pm *paymentmethodDatamodel.PaymentMethod) error
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

func (s *Service) CreatePaymentMethod(userID int64, dto CreatePaymentMethodDTO) (*PaymentMethod, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.membership.RequireMembership(userID, dto.CompanyID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)
	existing, err := s.repo.GetByCompanyAndName(dto.CompanyID, name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check payment method name", err)
	}
	if existing != nil {
		return nil, internal.NewConflictError("payment method name already in use", internal.ErrCodeDuplicateName)
	}

	record := &paymentmethodDatamodel.PaymentMethod{
		CompanyID: dto.CompanyID,
		Name:      name,
		Active:    true,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create payment method", "error", err, "company_id", dto.CompanyID)
		return nil, internal.NewInternalError("failed to create payment method", err)
	}

	s.logger.Info("payment method created", "payment_method_id", record.ID, "company_id", record.CompanyID)
	return FromDataModel(record), nil
}

func (s *Service) ListPaymentMethods(userID, companyID int64) ([]*PaymentMethod, error) {
	if companyID == 0 {
		return nil, internal.NewValidationError("companyId is required", internal.ErrCodeMissingCompany)
	}
	if err := s.membership.RequireMembership(userID, companyID); err != nil {
		return nil, err
	}

	records, err := s.repo.GetByCompany(companyID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list payment methods", err)
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) UpdatePaymentMethod(userID, paymentMethodID int64, dto UpdatePaymentMethodDTO) (*PaymentMethod, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.membership.RequireMembership(userID, dto.CompanyID); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByIDAndCompany(paymentMethodID, dto.CompanyID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load payment method", err)
	}
	if record == nil {
		return nil, internal.ErrPaymentMethodNotFound
	}

	if dto.Name != nil {
		record.Name = strings.TrimSpace(*dto.Name)
	}
	if dto.Active != nil {
		record.Active = *dto.Active
	}

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update payment method", "error", err, "payment_method_id", paymentMethodID)
		return nil, internal.NewInternalError("failed to update payment method", err)
	}

	s.logger.Info("payment method updated", "payment_method_id", record.ID, "company_id", record.CompanyID)
	return FromDataModel(record), nil
}
