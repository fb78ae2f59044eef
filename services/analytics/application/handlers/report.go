package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/analytics/application/services"
)

// ReportHandler handles GET /report requests.
type ReportHandler struct {
	svc *appsvcs.Services
}

func NewReportHandler(svc *appsvcs.Services) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Execute serves the full export as a JSON download. Optional from and to
// query parameters (YYYY-MM-DD, inclusive) restrict the order range.
func (h *ReportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var from, to time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		if from, err = time.ParseInLocation(dateLayout, raw, time.Local); err != nil {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "from must be YYYY-MM-DD"})
			return
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if to, err = time.ParseInLocation(dateLayout, raw, time.Local); err != nil {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "to must be YYYY-MM-DD"})
			return
		}
	}

	report, err := h.svc.Aggregation.Report(r.Context(), tenantID, from, to)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	filename := fmt.Sprintf("report-%s.json", report.GeneratedAt.Format("20060102"))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(report)
}
