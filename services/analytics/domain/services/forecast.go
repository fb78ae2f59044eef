package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/pranavkdileep/inventory-dashboard/services/analytics/domain"
	"github.com/pranavkdileep/inventory-dashboard/services/analytics/domain/models"
	ordmodels "github.com/pranavkdileep/inventory-dashboard/services/orders/domain/models"
)

// minTrainingDays is the smallest number of distinct sale days that still
// gives a meaningful line fit.
const minTrainingDays = 5

// Engine fits a revenue trend over a tenant's order history and projects it
// forward. An Engine is single-use per training set and not safe for
// concurrent Train/Predict; the owning service creates one per request.
type Engine struct {
	model   LinearModel
	rsq     float64
	origin  time.Time // first observed sale day, x = 0
	trained bool
	now     func() time.Time
}

// WithClock fixes the engine's notion of the current time. Used in tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Train aggregates orders into daily revenue totals and fits a least squares
// line over (day index, revenue). Orders spanning fewer than minTrainingDays
// distinct calendar days return ErrInsufficientData.
func (e *Engine) Train(orders []*ordmodels.Order) error {
	daily := make(map[string]decimal.Decimal)
	for _, o := range orders {
		key := o.CreatedAt.Format("2006-01-02")
		daily[key] = daily[key].Add(o.Total)
	}
	if len(daily) < minTrainingDays {
		return domain.ErrInsufficientData
	}

	days := make([]string, 0, len(daily))
	for d := range daily {
		days = append(days, d)
	}
	sort.Strings(days)

	first, err := time.ParseInLocation("2006-01-02", days[0], time.Local)
	if err != nil {
		return err
	}
	// x is days since the first sale, so gaps between sale days keep their
	// real distance instead of collapsing.
	xs := make([]float64, 0, len(days))
	ys := make([]float64, 0, len(days))
	for _, d := range days {
		t, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			return err
		}
		xs = append(xs, t.Sub(first).Hours()/24)
		f, _ := daily[d].Float64()
		ys = append(ys, f)
	}

	model, err := FitLinear(xs, ys)
	if err != nil {
		return domain.ErrInsufficientData
	}

	e.model = model
	e.rsq = RSquared(model, xs, ys)
	e.origin = first
	e.trained = true
	return nil
}

// Predict projects revenue for the given number of days starting tomorrow.
// The x offsets stay relative to the first observed sale day, so a trend
// trained on older history is extrapolated across the gap up to today.
// Projections below zero are clamped to zero and amounts are rounded to
// cents.
func (e *Engine) Predict(daysAhead int) (*models.Forecast, error) {
	if !e.trained {
		return nil, domain.ErrNotTrained
	}

	now := time.Now
	if e.now != nil {
		now = e.now
	}
	today := now().In(e.origin.Location())
	firstDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, e.origin.Location()).AddDate(0, 0, 1)
	points := make([]models.ForecastPoint, 0, daysAhead)
	for i := 0; i < daysAhead; i++ {
		day := firstDay.AddDate(0, 0, i)
		offset := day.Sub(e.origin).Hours() / 24
		revenue := e.model.Predict(offset)
		if revenue < 0 {
			revenue = 0
		}
		points = append(points, models.ForecastPoint{
			Date:    day.Format("2006-01-02"),
			Revenue: decimal.NewFromFloat(revenue).Round(2),
		})
	}
	return &models.Forecast{Points: points, Confidence: e.rsq}, nil
}
