package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	"github.com/pranavkdileep/inventory-dashboard/services/analytics/domain/models"
	"github.com/pranavkdileep/inventory-dashboard/services/analytics/domain/repositories"
	invmodels "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain/models"
	ordmodels "github.com/pranavkdileep/inventory-dashboard/services/orders/domain/models"
)

type fakeSource struct {
	snap *repositories.Snapshot
}

func (f *fakeSource) Snapshot(ctx context.Context, tenantID uuid.UUID) (*repositories.Snapshot, error) {
	return f.snap, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixtureItem(id int64, name, category string, qty int, unitPrice string) *invmodels.Item {
	return &invmodels.Item{
		ID: id, Name: name, Category: category, Quantity: qty,
		UnitPrice: dec(unitPrice), CreatedAt: time.Now(),
	}
}

func fixtureOrder(id int64, createdAt time.Time, lines ...ordmodels.LineItem) *ordmodels.Order {
	return &ordmodels.Order{
		ID: id, Customer: "fixture", Lines: lines,
		Total: ordmodels.SumLines(lines), CreatedAt: createdAt,
	}
}

func line(itemID int64, name string, qty int, unitPrice string) ordmodels.LineItem {
	return ordmodels.LineItem{ItemID: itemID, Name: name, Quantity: qty, UnitPrice: dec(unitPrice)}
}

func newAggService(snap *repositories.Snapshot, now time.Time) *AggregationService {
	svc := NewAggregationService(&fakeSource{snap: snap}, logger.NewNop(), 10, 6, 30)
	return svc.WithClock(func() time.Time { return now })
}

func TestAggregation_CategoryTotals(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	snap := &repositories.Snapshot{
		Items: []*invmodels.Item{
			fixtureItem(1, "Tea", "Beverages", 10, "2.00"),    // 20
			fixtureItem(2, "Coffee", "Beverages", 5, "8.00"),  // 40 → Beverages 60
			fixtureItem(3, "Socks", "Apparel", 100, "1.00"),   // Apparel 100
			fixtureItem(4, "Mystery", "", 1, "5.00"),          // Uncategorized 5
		},
	}
	svc := newAggService(snap, now)

	totals, err := svc.CategoryTotals(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("category totals: %v", err)
	}
	if len(totals) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(totals))
	}
	if totals[0].Category != "Apparel" || !totals[0].Value.Equal(dec("100")) {
		t.Fatalf("expected Apparel 100 first, got %+v", totals[0])
	}
	if totals[1].Category != "Beverages" || totals[1].Quantity != 15 {
		t.Fatalf("expected Beverages quantity 15 second, got %+v", totals[1])
	}
	if totals[2].Category != "Uncategorized" {
		t.Fatalf("expected Uncategorized last, got %+v", totals[2])
	}
}

func TestAggregation_CategoryTotalsEmptyInventory(t *testing.T) {
	svc := newAggService(&repositories.Snapshot{}, time.Now())

	totals, err := svc.CategoryTotals(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("category totals: %v", err)
	}
	if totals == nil || len(totals) != 0 {
		t.Fatalf("expected empty slice, got %v", totals)
	}
}

func TestAggregation_TopProductsRankedByRevenue(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	snap := &repositories.Snapshot{
		Orders: []*ordmodels.Order{
			// A: 30 units × 10 = 300. B: 5 units × 100 = 500.
			fixtureOrder(1, now.Add(-48*time.Hour), line(1, "A", 30, "10.00")),
			fixtureOrder(2, now.Add(-24*time.Hour), line(2, "B", 5, "100.00")),
		},
	}
	svc := newAggService(snap, now)

	products, err := svc.TopProducts(context.Background(), uuid.New(), 5)
	if err != nil {
		t.Fatalf("top products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	// Revenue outranks raw quantity.
	if products[0].Name != "B" || !products[0].Revenue.Equal(dec("500.00")) {
		t.Fatalf("expected B with 500 first, got %+v", products[0])
	}
	if products[1].Name != "A" || products[1].Quantity != 30 {
		t.Fatalf("expected A second, got %+v", products[1])
	}

	limited, err := svc.TopProducts(context.Background(), uuid.New(), 1)
	if err != nil {
		t.Fatalf("top products limit 1: %v", err)
	}
	if len(limited) != 1 || limited[0].Name != "B" {
		t.Fatalf("expected only B, got %+v", limited)
	}
}

func TestAggregation_SalesByDayZeroFillsWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.Local)
	snap := &repositories.Snapshot{
		Orders: []*ordmodels.Order{
			fixtureOrder(1, now.AddDate(0, 0, -2), line(1, "A", 1, "40.00")),
			fixtureOrder(2, now.AddDate(0, 0, -2).Add(time.Hour), line(1, "A", 1, "10.00")),
			fixtureOrder(3, now, line(1, "A", 1, "25.00")),
			// Outside the 30-day window; must be ignored.
			fixtureOrder(4, now.AddDate(0, 0, -31), line(1, "A", 1, "999.00")),
		},
	}
	svc := newAggService(snap, now)

	buckets, err := svc.SalesByDay(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("sales by day: %v", err)
	}
	if len(buckets) != 30 {
		t.Fatalf("expected 30 buckets, got %d", len(buckets))
	}
	last := buckets[len(buckets)-1]
	if last.Label != "2026-08-28" || !last.Total.Equal(dec("25.00")) {
		t.Fatalf("unexpected today bucket %+v", last)
	}
	twoDaysAgo := buckets[len(buckets)-3]
	if !twoDaysAgo.Total.Equal(dec("50.00")) {
		t.Fatalf("expected same-day orders summed to 50, got %s", twoDaysAgo.Total)
	}
	var nonZero int
	for _, b := range buckets {
		if !b.Total.IsZero() {
			nonZero++
		}
	}
	if nonZero != 2 {
		t.Fatalf("expected exactly 2 non-zero buckets, got %d", nonZero)
	}
}

func TestAggregation_SalesByMonthZeroFillsWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.Local)
	snap := &repositories.Snapshot{
		Orders: []*ordmodels.Order{
			fixtureOrder(1, time.Date(2026, 8, 3, 10, 0, 0, 0, time.Local), line(1, "A", 1, "100.00")),
			fixtureOrder(2, time.Date(2026, 5, 14, 10, 0, 0, 0, time.Local), line(1, "A", 1, "60.00")),
			fixtureOrder(3, time.Date(2025, 12, 25, 10, 0, 0, 0, time.Local), line(1, "A", 1, "999.00")),
		},
	}
	svc := newAggService(snap, now)

	buckets, err := svc.SalesByMonth(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("sales by month: %v", err)
	}
	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Mar 2026" {
		t.Fatalf("expected window to start at Mar 2026, got %s", buckets[0].Label)
	}
	if !buckets[5].Total.Equal(dec("100.00")) {
		t.Fatalf("expected Aug total 100, got %s", buckets[5].Total)
	}
	if !buckets[2].Total.Equal(dec("60.00")) {
		t.Fatalf("expected May total 60, got %s", buckets[2].Total)
	}
}

func TestAggregation_TodaysSalesPerProduct(t *testing.T) {
	now := time.Date(2026, 8, 28, 18, 30, 0, 0, time.Local)
	snap := &repositories.Snapshot{
		Orders: []*ordmodels.Order{
			fixtureOrder(1, time.Date(2026, 8, 28, 9, 15, 0, 0, time.Local), line(1, "Widget", 3, "100.00")),
			fixtureOrder(2, time.Date(2026, 8, 28, 14, 45, 0, 0, time.Local), line(2, "Gadget", 1, "500.00")),
			fixtureOrder(3, time.Date(2026, 8, 28, 16, 0, 0, 0, time.Local), line(1, "Widget", 1, "100.00")),
			fixtureOrder(4, time.Date(2026, 8, 27, 9, 30, 0, 0, time.Local), line(1, "Widget", 9, "100.00")), // yesterday
		},
	}
	svc := newAggService(snap, now)

	products, err := svc.TodaysSales(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("todays sales: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Gadget" || !products[0].Revenue.Equal(dec("500.00")) {
		t.Fatalf("expected Gadget with revenue 500 first, got %s %s", products[0].Name, products[0].Revenue)
	}
	if products[1].Name != "Widget" || products[1].Quantity != 4 || !products[1].Revenue.Equal(dec("400.00")) {
		t.Fatalf("expected Widget qty 4 revenue 400, got %+v", products[1])
	}
}

func TestAggregation_TodaysSalesEmptyDay(t *testing.T) {
	now := time.Date(2026, 8, 28, 8, 0, 0, 0, time.Local)
	snap := &repositories.Snapshot{
		Orders: []*ordmodels.Order{
			fixtureOrder(1, time.Date(2026, 8, 27, 9, 30, 0, 0, time.Local), line(1, "Widget", 1, "10.00")),
		},
	}
	svc := newAggService(snap, now)

	products, err := svc.TodaysSales(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("todays sales: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", products)
	}
}

func TestAggregation_Summary(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	snap := &repositories.Snapshot{
		CompanyName: "Acme Retail",
		Items: []*invmodels.Item{
			fixtureItem(1, "Scarce", "Misc", 3, "1.00"),
			fixtureItem(2, "Plenty", "Misc", 50, "1.00"),
		},
		Orders: []*ordmodels.Order{
			fixtureOrder(1, now, line(1, "Scarce", 1, "7.50")),
			fixtureOrder(2, now, line(2, "Plenty", 2, "5.00")),
		},
	}
	svc := newAggService(snap, now)

	summary, err := svc.Summary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.CompanyName != "Acme Retail" {
		t.Fatalf("company name: %q", summary.CompanyName)
	}
	if summary.InventoryCount != 2 || summary.OrderCount != 2 {
		t.Fatalf("counts: %+v", summary)
	}
	if !summary.TotalSales.Equal(dec("17.50")) {
		t.Fatalf("expected total sales 17.50, got %s", summary.TotalSales)
	}
	if len(summary.LowStock) != 1 || summary.LowStock[0].Name != "Scarce" {
		t.Fatalf("unexpected low stock %+v", summary.LowStock)
	}
}

func TestAggregation_Insights(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	// Rising revenue over the window: zero early, sales in the last week.
	var orders []*ordmodels.Order
	for i := 0; i < 7; i++ {
		orders = append(orders, fixtureOrder(int64(i+1), now.AddDate(0, 0, -i), line(1, "A", 1, "100.00")))
	}
	svc := newAggService(&repositories.Snapshot{Orders: orders}, now)

	insights, err := svc.Insights(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("insights: %v", err)
	}
	if insights.Trend != models.TrendUp {
		t.Fatalf("expected upward trend, got %s", insights.Trend)
	}
	if insights.PeakDay == "" || !insights.PeakAmount.Equal(dec("100.00")) {
		t.Fatalf("unexpected peak %q %s", insights.PeakDay, insights.PeakAmount)
	}
	// 700 over a 30-day window.
	if !insights.AvgDailySales.Equal(dec("23.33")) {
		t.Fatalf("expected avg 23.33, got %s", insights.AvgDailySales)
	}
}

func TestAggregation_InsightsNoSales(t *testing.T) {
	svc := newAggService(&repositories.Snapshot{}, time.Now())

	insights, err := svc.Insights(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("insights: %v", err)
	}
	if insights.Trend != models.TrendNeutral {
		t.Fatalf("expected neutral trend, got %s", insights.Trend)
	}
	if insights.PeakDay != "" {
		t.Fatalf("expected no peak day, got %q", insights.PeakDay)
	}
}

func TestAggregation_ReportDateFilter(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	snap := &repositories.Snapshot{
		CompanyName: "Acme Retail",
		Items:       []*invmodels.Item{fixtureItem(1, "Tea", "Beverages", 10, "2.00")},
		Orders: []*ordmodels.Order{
			fixtureOrder(1, time.Date(2026, 8, 1, 10, 0, 0, 0, time.Local), line(1, "Tea", 1, "2.00")),
			fixtureOrder(2, time.Date(2026, 8, 15, 10, 0, 0, 0, time.Local), line(1, "Tea", 1, "2.00")),
			fixtureOrder(3, time.Date(2026, 8, 27, 10, 0, 0, 0, time.Local), line(1, "Tea", 1, "2.00")),
		},
	}
	svc := newAggService(snap, now)

	full, err := svc.Report(context.Background(), uuid.New(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("full report: %v", err)
	}
	if len(full.Orders) != 3 || len(full.Inventory) != 1 {
		t.Fatalf("unexpected full report: %d orders, %d items", len(full.Orders), len(full.Inventory))
	}
	if full.CompanyName != "Acme Retail" {
		t.Fatalf("company name: %q", full.CompanyName)
	}

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)
	filtered, err := svc.Report(context.Background(), uuid.New(), from, to)
	if err != nil {
		t.Fatalf("filtered report: %v", err)
	}
	if len(filtered.Orders) != 1 || filtered.Orders[0].ID != 2 {
		t.Fatalf("expected only order 2 in range, got %+v", filtered.Orders)
	}
	// Inventory is never filtered by date.
	if len(filtered.Inventory) != 1 {
		t.Fatalf("inventory should be complete, got %d", len(filtered.Inventory))
	}
}
