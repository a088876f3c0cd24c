package report

import (
	"net/http"
	"strconv"

	"github.com/gestorfin/dre-management/internal/auth"
	"github.com/gestorfin/dre-management/internal/transport"
	"github.com/gestorfin/dre-management/pkg/logger"
)

type ServiceAPI interface {
	Statement(userID int64, q StatementQuery) (*StatementReport, error)
	StatementByCostCenter(userID int64, q StatementQuery) (*CostCenterReport, error)
	Series(userID int64, q SeriesQuery) (*SeriesReport, error)
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

// Statement handles GET /reports/dre.
func (h *Handler) Statement(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	query := r.URL.Query()
	companyID, _ := strconv.ParseInt(query.Get("companyId"), 10, 64)
	costCenterID, _ := strconv.ParseInt(query.Get("costCenterId"), 10, 64)

	statement, err := h.Service.Statement(user.ID, StatementQuery{
		CompanyID:       companyID,
		CompetenceMonth: query.Get("competenceMonth"),
		CostCenterID:    costCenterID,
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, statement)
}

// StatementByCostCenter handles GET /reports/dre-by-cost-center.
func (h *Handler) StatementByCostCenter(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	query := r.URL.Query()
	companyID, _ := strconv.ParseInt(query.Get("companyId"), 10, 64)

	breakdown, err := h.Service.StatementByCostCenter(user.ID, StatementQuery{
		CompanyID:       companyID,
		CompetenceMonth: query.Get("competenceMonth"),
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, breakdown)
}

// Series handles GET /reports/dre-series.
func (h *Handler) Series(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	query := r.URL.Query()
	companyID, _ := strconv.ParseInt(query.Get("companyId"), 10, 64)

	series, err := h.Service.Series(user.ID, SeriesQuery{
		CompanyID: companyID,
		From:      query.Get("from"),
		To:        query.Get("to"),
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, series)
}
