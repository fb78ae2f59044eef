package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pranavkdileep/inventory-dashboard/pkg/auth"
	"github.com/pranavkdileep/inventory-dashboard/pkg/errhttp"
	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	appsvcs "github.com/pranavkdileep/inventory-dashboard/services/analytics/application/services"
)

const dateLayout = "2006-01-02"

// defaultTopProducts caps the top-products ranking when no limit is given.
const defaultTopProducts = 5

// CategoryTotalsHandler handles GET /analytics/categories requests.
type CategoryTotalsHandler struct {
	svc *appsvcs.Services
}

func NewCategoryTotalsHandler(svc *appsvcs.Services) *CategoryTotalsHandler {
	return &CategoryTotalsHandler{svc: svc}
}

// Execute returns per-category quantity and stock value, highest value first.
func (h *CategoryTotalsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	totals, err := h.svc.Aggregation.CategoryTotals(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, totals)
}

// TopProductsHandler handles GET /analytics/top-products requests.
type TopProductsHandler struct {
	svc *appsvcs.Services
}

func NewTopProductsHandler(svc *appsvcs.Services) *TopProductsHandler {
	return &TopProductsHandler{svc: svc}
}

// Execute ranks products by revenue. The optional limit query parameter
// overrides the default of 5.
func (h *TopProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	limit := defaultTopProducts
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	products, err := h.svc.Aggregation.TopProducts(r.Context(), tenantID, limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

// SalesSeriesHandler serves the bucketed sales series endpoints.
type SalesSeriesHandler struct {
	svc *appsvcs.Services
}

func NewSalesSeriesHandler(svc *appsvcs.Services) *SalesSeriesHandler {
	return &SalesSeriesHandler{svc: svc}
}

// Monthly returns order totals per calendar month over the trailing window.
func (h *SalesSeriesHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	buckets, err := h.svc.Aggregation.SalesByMonth(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, buckets)
}

// Daily returns order totals per day over the trailing window.
func (h *SalesSeriesHandler) Daily(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	buckets, err := h.svc.Aggregation.SalesByDay(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, buckets)
}

// Hourly returns one day's totals in 24 hourly buckets. The date query
// parameter selects the day and defaults to today.
func (h *SalesSeriesHandler) Hourly(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	day := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	buckets, err := h.svc.Aggregation.SalesByHourForDate(r.Context(), tenantID, day)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, buckets)
}

// Today returns per-product revenue for orders placed on the current
// server-local date.
func (h *SalesSeriesHandler) Today(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	products, err := h.svc.Aggregation.TodaysSales(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

// InsightsHandler handles GET /analytics/insights requests.
type InsightsHandler struct {
	svc *appsvcs.Services
}

func NewInsightsHandler(svc *appsvcs.Services) *InsightsHandler {
	return &InsightsHandler{svc: svc}
}

// Execute summarizes daily revenue: trend direction, mean, and peak day.
func (h *InsightsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	insights, err := h.svc.Aggregation.Insights(r.Context(), tenantID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, insights)
}
