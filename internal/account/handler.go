package account

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gestorfin/dre-management/internal/auth"
	"github.com/gestorfin/dre-management/internal/transport"
	"github.com/gestorfin/dre-management/pkg/logger"
)

type ServiceAPI interface {
	CreateAccount(userID int64, dto CreateAccountDTO) (*Account, error)
	ListAccounts(userID, companyID int64) ([]*Account, error)
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

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateAccount(user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{"account": created})
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	companyID, _ := strconv.ParseInt(r.URL.Query().Get("companyId"), 10, 64)

	accounts, err := h.Service.ListAccounts(user.ID, companyID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"accounts": accounts})
}
