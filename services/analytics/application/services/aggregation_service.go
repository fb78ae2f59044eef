package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	"github.com/pranavkdileep/inventory-dashboard/services/analytics/domain/models"
	"github.com/pranavkdileep/inventory-dashboard/services/analytics/domain/repositories"
	invmodels "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain/models"
	ordmodels "github.com/pranavkdileep/inventory-dashboard/services/orders/domain/models"
)

// AggregationService computes read-only views over a consistent snapshot
// of a tenant's inventory and orders. Every method takes the snapshot once
// and derives everything from it, so a single response never mixes states
// from before and after a concurrent write.
type AggregationService struct {
	source            repositories.SnapshotSource
	log               logger.Logger
	lowStockThreshold int
	salesWindowMonths int
	salesWindowDays   int
	now               func() time.Time
}

func NewAggregationService(source repositories.SnapshotSource, log logger.Logger, lowStockThreshold, salesWindowMonths, salesWindowDays int) *AggregationService {
	return &AggregationService{
		source:            source,
		log:               log,
		lowStockThreshold: lowStockThreshold,
		salesWindowMonths: salesWindowMonths,
		salesWindowDays:   salesWindowDays,
		now:               time.Now,
	}
}

// WithClock overrides the service's notion of the current time. Tests use
// this to pin "today".
func (s *AggregationService) WithClock(now func() time.Time) *AggregationService {
	s.now = now
	return s
}

// CategoryTotals sums quantity and stock value per category, ordered by
// value descending. Items whose category is empty are grouped under
// "Uncategorized". An empty inventory yields an empty slice.
func (s *AggregationService) CategoryTotals(ctx context.Context, tenantID uuid.UUID) ([]models.CategoryTotal, error) {
	snap, err := s.source.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return categoryTotals(snap.Items), nil
}

func categoryTotals(items []*invmodels.Item) []models.CategoryTotal {
	totals := make(map[string]*models.CategoryTotal)
	order := make([]string, 0, len(items))
	for _, item := range items {
		cat := item.Category
		if cat == "" {
			cat = "Uncategorized"
		}
		row, ok := totals[cat]
		if !ok {
			row = &models.CategoryTotal{Category: cat}
			totals[cat] = row
			order = append(order, cat)
		}
		row.Quantity += item.Quantity
		row.Value = row.Value.Add(item.Value())
	}

	out := make([]models.CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, *totals[cat])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.Cmp(out[j].Value) > 0
	})
	return out
}

// TopProducts returns the n best-selling products by revenue, descending.
// Revenue uses the unit price frozen on each line at order time, so later
// price edits do not rewrite past rankings. Ties keep first-sold order.
func (s *AggregationService) TopProducts(ctx context.Context, tenantID uuid.UUID, n int) ([]models.ProductSales, error) {
	snap, err := s.source.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return topProducts(snap, n), nil
}

func topProducts(snap *repositories.Snapshot, n int) []models.ProductSales {
	out := productSales(snap.Orders)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// productSales aggregates line items per product name, revenue descending,
// stable so ties keep first-sold order.
func productSales(orders []*ordmodels.Order) []models.ProductSales {
	byName := make(map[string]*models.ProductSales)
	var seen []string
	for _, o := range orders {
		for _, line := range o.Lines {
			row, ok := byName[line.Name]
			if !ok {
				row = &models.ProductSales{Name: line.Name}
				byName[line.Name] = row
				seen = append(seen, line.Name)
			}
			row.Quantity += line.Quantity
			row.Revenue = row.Revenue.Add(line.Subtotal())
		}
	}

	out := make([]models.ProductSales, 0, len(seen))
	for _, name := range seen {
		out = append(out, *byName[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.Cmp(out[j].Revenue) > 0
	})
	return out
}

// SalesByMonth buckets order totals into calendar months, covering the
// configured trailing window up to the current month. Empty months are
// present with a zero total.
func (s *AggregationService) SalesByMonth(ctx context.Context, tenantID uuid.UUID) ([]models.SalesBucket, error) {
	snap, err := s.source.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(s.salesWindowMonths - 1), 0)

	buckets := make([]models.SalesBucket, 0, s.salesWindowMonths)
	index := make(map[string]int, s.salesWindowMonths)
	for i := 0; i < s.salesWindowMonths; i++ {
		m := start.AddDate(0, i, 0)
		key := m.Format("2006-01")
		index[key] = len(buckets)
		buckets = append(buckets, models.SalesBucket{Start: m, Label: m.Format("Jan 2006")})
	}

	for _, o := range snap.Orders {
		key := o.CreatedAt.In(now.Location()).Format("2006-01")
		if i, ok := index[key]; ok {
			buckets[i].Total = buckets[i].Total.Add(o.Total)
		}
	}
	return buckets, nil
}

// SalesByDay buckets order totals by calendar day over the configured
// trailing window, ending today. Empty days are present with a zero total.
func (s *AggregationService) SalesByDay(ctx context.Context, tenantID uuid.UUID) ([]models.SalesBucket, error) {
	snap, err := s.source.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(s.salesWindowDays - 1))

	buckets := make([]models.SalesBucket, 0, s.salesWindowDays)
	index := make(map[string]int, s.salesWindowDays)
	for i := 0; i < s.salesWindowDays; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		index[key] = len(buckets)
		buckets = append(buckets, models.SalesBucket{Start: d, Label: key})
	}

	for _, o := range snap.Orders {
		key := o.CreatedAt.In(now.Location()).Format("2006-01-02")
		if i, ok := index[key]; ok {
			buckets[i].Total = buckets[i].Total.Add(o.Total)
		}
	}
	return buckets, nil
}

// SalesByHourForDate buckets one day's order totals into 24 hourly slots
// in the server's local time.
func (s *AggregationService) SalesByHourForDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]models.SalesBucket, error) {
	snap, err := s.source.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	loc := s.now().Location()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	buckets := make([]models.SalesBucket, 24)
	for h := 0; h < 24; h++ {
		start := day.Add(time.Duration(h) * time.Hour)
		buckets[h] = models.SalesBucket{Start: start, Label: start.Format("15:00")}
	}

	for _, o := range snap.Orders {
		at := o.CreatedAt.In(loc)
		if at.Year() == day.Year() && at.YearDay() == day.YearDay() {
			buckets[at.Hour()].Total = buckets[at.Hour()].Total.Add(o.Total)
		}
	}
	return buckets, nil
}

// TodaysSales sums revenue per product over orders created on the current
// server-local calendar date. An untouched day yields an empty slice.
func (s *AggregationService) TodaysSales(ctx context.Context, tenantID uuid.UUID) ([]models.ProductSales, error) {
	snap, err := s.source.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	loc := now.Location()
	var todays []*ordmodels.Order
	for _, o := range snap.Orders {
		at := o.CreatedAt.In(loc)
		if at.Year() == now.Year() && at.YearDay() == now.YearDay() {
			todays = append(todays, o)
		}
	}
	return productSales(todays), nil
}

// Summary builds the dashboard headline: item and order counts, lifetime
// sales, and products whose stock sits below the configured threshold.
func (s *AggregationService) Summary(ctx context.Context, tenantID uuid.UUID) (*models.DashboardSummary, error) {
	snap, err := s.source.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, o := range snap.Orders {
		total = total.Add(o.Total)
	}

	low := make([]*invmodels.Item, 0)
	for _, item := range snap.Items {
		if item.Quantity < s.lowStockThreshold {
			low = append(low, item)
		}
	}

	return &models.DashboardSummary{
		CompanyName:    snap.CompanyName,
		InventoryCount: len(snap.Items),
		OrderCount:     len(snap.Orders),
		TotalSales:     total,
		LowStock:       low,
	}, nil
}

// Insights derives daily-revenue behavior over the trailing day window:
// trend direction compares the average of the last week of the window
// against the average of its first week, and the peak is the single
// highest-revenue day.
func (s *AggregationService) Insights(ctx context.Context, tenantID uuid.UUID) (*models.SalesInsights, error) {
	buckets, err := s.SalesByDay(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dailyInsights(buckets), nil
}

func dailyInsights(buckets []models.SalesBucket) *models.SalesInsights {
	out := &models.SalesInsights{Trend: models.TrendNeutral}
	if len(buckets) == 0 {
		return out
	}

	total := decimal.Zero
	peak := buckets[0]
	for _, b := range buckets {
		total = total.Add(b.Total)
		if b.Total.Cmp(peak.Total) > 0 {
			peak = b
		}
	}
	out.AvgDailySales = total.Div(decimal.NewFromInt(int64(len(buckets)))).Round(2)
	if peak.Total.IsPositive() {
		out.PeakDay = peak.Label
		out.PeakAmount = peak.Total
	}

	span := 7
	if span > len(buckets)/2 {
		span = len(buckets) / 2
	}
	if span == 0 {
		return out
	}
	early := avgTotals(buckets[:span])
	late := avgTotals(buckets[len(buckets)-span:])
	switch late.Cmp(early) {
	case 1:
		out.Trend = models.TrendUp
	case -1:
		out.Trend = models.TrendDown
	}
	return out
}

func avgTotals(buckets []models.SalesBucket) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range buckets {
		sum = sum.Add(b.Total)
	}
	return sum.Div(decimal.NewFromInt(int64(len(buckets))))
}

// Report assembles the full export payload. When from or to is non-zero the
// order list is filtered to the inclusive date range; inventory and history
// are always complete.
func (s *AggregationService) Report(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (*models.Report, error) {
	snap, err := s.source.Snapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	orders := snap.Orders
	if !from.IsZero() || !to.IsZero() {
		orders = orders[:0:0]
		for _, o := range snap.Orders {
			if !from.IsZero() && o.CreatedAt.Before(from) {
				continue
			}
			if !to.IsZero() && !o.CreatedAt.Before(to.AddDate(0, 0, 1)) {
				continue
			}
			orders = append(orders, o)
		}
	}

	return &models.Report{
		GeneratedAt: s.now(),
		CompanyName: snap.CompanyName,
		Inventory:   snap.Items,
		Orders:      orders,
		History:     snap.History,
	}, nil
}
