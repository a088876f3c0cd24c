package company

import (
	"encoding/json"
	"net/http"

	"github.com/gestorfin/dre-management/internal/auth"
	"github.com/gestorfin/dre-management/internal/transport"
	"github.com/gestorfin/dre-management/pkg/logger"
)

type ServiceAPI interface {
	CreateCompany(userID int64, name string) (*Company, error)
	ListMyCompanies(userID int64) ([]Membership, error)
	RequireMembership(userID, companyID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

type createCompanyDTO struct {
	Name string `json:"name"`
}

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto createCompanyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.Service.CreateCompany(user.ID, dto.Name)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{"company": company})
}

func (h *Handler) ListMyCompanies(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	companies, err := h.Service.ListMyCompanies(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"companies": companies})
}
