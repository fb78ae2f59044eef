package models

import (
	"time"

	"github.com/shopspring/decimal"

	histmodels "github.com/pranavkdileep/inventory-dashboard/services/history/domain/models"
	invmodels "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain/models"
	ordmodels "github.com/pranavkdileep/inventory-dashboard/services/orders/domain/models"
)

// CategoryTotal is one row of the category breakdown: summed quantity and
// stock value (quantity × unit price) across a category's items.
type CategoryTotal struct {
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// ProductSales is one row of a per-product sales summary, aggregated over
// order line items with the prices frozen at order time.
type ProductSales struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SalesBucket is one time-grain bucket of a sales series. Buckets for empty
// periods are present with a zero total rather than omitted.
type SalesBucket struct {
	Start time.Time       `json:"start"`
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// DashboardSummary is the headline view: counts, lifetime sales, and the
// low-stock list.
type DashboardSummary struct {
	CompanyName    string            `json:"company_name"`
	InventoryCount int               `json:"inventory_count"`
	OrderCount     int               `json:"order_count"`
	TotalSales     decimal.Decimal   `json:"total_sales"`
	LowStock       []*invmodels.Item `json:"low_stock_products"`
}

// Trend direction constants for SalesInsights.
const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"
)

// SalesInsights summarizes daily revenue behavior: direction of the trend
// (recent average vs earliest average), mean daily sales, and the peak day.
type SalesInsights struct {
	Trend         string          `json:"trend"`
	AvgDailySales decimal.Decimal `json:"avg_daily_sales"`
	PeakDay       string          `json:"peak_day,omitempty"`
	PeakAmount    decimal.Decimal `json:"peak_amount"`
}

// ForecastPoint is one projected future day of revenue.
type ForecastPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Forecast is the projection result. Confidence is the fitted model's R²
// against its training data; it can be negative for a fit worse than the
// mean, so callers must not assume a lower bound of 0.
type Forecast struct {
	Points     []ForecastPoint `json:"points"`
	Confidence float64         `json:"confidence"`
}

// Report is the full snapshot handed to report generators. Layout and
// formatting are entirely the consumer's concern.
type Report struct {
	GeneratedAt time.Time           `json:"generated_at"`
	CompanyName string              `json:"company_name"`
	Inventory   []*invmodels.Item   `json:"inventory"`
	Orders      []*ordmodels.Order  `json:"orders"`
	History     []*histmodels.Entry `json:"history"`
}
