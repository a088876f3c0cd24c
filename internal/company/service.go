package company

import (
	"log/slog"
	"strings"

	"github.com/gestorfin/dre-management/internal"
	companyDatamodel "github.com/gestorfin/dre-management/internal/core/datamodel/company"
)

type Repository interface {
	Create(company *companyDatamodel.Company, ownerUserID int64) error
	GetMembership(userID, companyID int64) (*companyDatamodel.Member, error)
	GetMembershipsForUser(userID int64) ([]*companyDatamodel.Member, error)
	GetByID(companyID int64) (*companyDatamodel.Company, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateCompany creates a company and enrolls the creator as its owner.
func (s *Service) CreateCompany(userID int64, name string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}

	record := &companyDatamodel.Company{Name: name}
	if err := s.repo.Create(record, userID); err != nil {
		s.logger.Error("failed to create company", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to create company", err)
	}

	s.logger.Info("company created", "company_id", record.ID, "user_id", userID)
	return FromDataModel(record), nil
}

// ListMyCompanies returns the companies the user is a member of.
func (s *Service) ListMyCompanies(userID int64) ([]Membership, error) {
	members, err := s.repo.GetMembershipsForUser(userID)
	if err != nil {
		s.logger.Error("failed to list memberships", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to list companies", err)
	}

	memberships := make([]Membership, 0, len(members))
	for _, m := range members {
		c, err := s.repo.GetByID(m.CompanyID)
		if err != nil {
			s.logger.Error("failed to load company", "error", err, "company_id", m.CompanyID)
			return nil, internal.NewInternalError("failed to list companies", err)
		}
		if c == nil {
			continue
		}
		memberships = append(memberships, Membership{ID: c.ID, Name: c.Name, Role: m.Role})
	}

	return memberships, nil
}

// RequireMembership is the tenancy gate: every company-scoped operation calls
// it before touching data, so a non-member learns nothing about the company.
func (s *Service) RequireMembership(userID, companyID int64) error {
	member, err := s.repo.GetMembership(userID, companyID)
	if err != nil {
		s.logger.Error("membership lookup failed", "error", err, "user_id", userID, "company_id", companyID)
		return internal.NewInternalError("failed to check company access", err)
	}
	if member == nil {
		return internal.ErrNoCompanyAccess
	}
	return nil
}
