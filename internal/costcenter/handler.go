package costcenter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gestorfin/dre-management/internal/auth"
	"github.com/gestorfin/dre-management/internal/transport"
	"github.com/gestorfin/dre-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateCostCenter(userID int64, dto CreateCostCenterDTO) (*CostCenter, error)
	ListCostCenters(userID, companyID int64) ([]*CostCenter, error)
	UpdateCostCenter(userID, costCenterID int64, dto UpdateCostCenterDTO) (*CostCenter, error)
	DeleteCostCenter(userID, costCenterID, companyID int64) error
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

func (h *Handler) CreateCostCenter(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateCostCenterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateCostCenter(user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{"cost_center": created})
}

func (h *Handler) ListCostCenters(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	companyID, _ := strconv.ParseInt(r.URL.Query().Get("companyId"), 10, 64)

	centers, err := h.Service.ListCostCenters(user.ID, companyID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"cost_centers": centers})
}

func (h *Handler) UpdateCostCenter(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	costCenterID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid cost center ID")
		return
	}

	var dto UpdateCostCenterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateCostCenter(user.ID, costCenterID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"cost_center": updated})
}

func (h *Handler) DeleteCostCenter(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	costCenterID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid cost center ID")
		return
	}

	var dto DeleteCostCenterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.DeleteCostCenter(user.ID, costCenterID, dto.CompanyID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
