package goalplan

import (
	"math"
	"time"

	"github.com/nivesh/goalplan/date"
	"github.com/shopspring/decimal"
)

// testToday is the fixed reference date every engine test computes from.
var testToday = date.New(2026, time.January, 1)

// INR is a helper for tests to create rupee money from a const.
func INR(v float64) Money { return M(v, "INR") }

// D is a helper for tests to create decimal amounts from a const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// within reports whether got is within tol of want.
func within(got, want, tol float64) bool { return math.Abs(got-want) <= tol }

// inYears returns a target date the given number of years from testToday.
func inYears(years int) date.Date { return testToday.AddYears(years) }

// oneTimeGoal builds a one-time goal for tests.
func oneTimeGoal(id string, target float64, inflation float64, targetDate date.Date) Goal {
	return Goal{
		ID:            id,
		Name:          id,
		Type:          GoalOneTime,
		TargetAmount:  D(target),
		InflationRate: inflation,
		TargetDate:    targetDate,
		StartDate:     testToday,
	}
}

// holding builds a holding for tests.
func holding(id string, category Category, value float64) Holding {
	return Holding{ID: id, Name: id, Category: category, Value: D(value)}
}

// planWith builds a normalized document around the given holdings and goals.
func planWith(holdings []Holding, goals []Goal) *PlanDocument {
	doc := DefaultPlan()
	doc.Assets.Items = holdings
	doc.Goals = goals
	doc.Normalize()
	return doc
}
