package goalplan

import (
	"testing"
)

func TestGlideFactor(t *testing.T) {
	tests := []struct {
		years float64
		want  float64
	}{
		{years: 30, want: 1.0},
		{years: 10, want: 1.0},
		{years: 8.5, want: 0.75},
		{years: 7, want: 0.50},
		{years: 6, want: 0.375},
		{years: 5, want: 0.25},
		{years: 2, want: 0.25},
	}
	for _, tt := range tests {
		if got := glideFactor(tt.years); !within(got, tt.want, 1e-9) {
			t.Errorf("glideFactor(%v) = %v, want %v", tt.years, got, tt.want)
		}
	}
}

func TestGoalSplitShort(t *testing.T) {
	a := Assumptions{DebtReturn: 7, ArbitrageReturn: 6, EquityAllocationPct: 60}
	p := Projection{Horizon: Short, Years: 2, MonthlySIP: 10000}

	s := goalSplit(p, a)
	if !within(s.Arbitrage, 10000, 0.01) || s.Equity != 0 || s.Debt != 0 {
		t.Errorf("short split = %+v, want all arbitrage", s)
	}

	// No arbitrage return configured: short money falls back to debt.
	a.ArbitrageReturn = 0
	s = goalSplit(p, a)
	if !within(s.Debt, 10000, 0.01) || s.Arbitrage != 0 {
		t.Errorf("short split without arbitrage = %+v, want all debt", s)
	}
}

func TestGoalSplitLongTapersEquity(t *testing.T) {
	a := Assumptions{EquityReturn: 12, DebtReturn: 7, EquityAllocationPct: 60}

	far := goalSplit(Projection{Horizon: Long, Years: 20, MonthlySIP: 10000}, a)
	if !within(far.Equity, 6000, 0.01) || !within(far.Debt, 4000, 0.01) {
		t.Errorf("far split = %+v, want full 60/40", far)
	}

	// At seven years the equity share is halved: 30% of the contribution.
	near := goalSplit(Projection{Horizon: Long, Years: 7, MonthlySIP: 10000}, a)
	if !within(near.Equity, 3000, 0.01) || !within(near.Debt, 7000, 0.01) {
		t.Errorf("near split = %+v, want tapered 30/70", near)
	}

	if s := goalSplit(Projection{Horizon: Long, Years: 20, MonthlySIP: 0}, a); s.Total() != 0 {
		t.Errorf("zero SIP split = %+v, want empty", s)
	}
}

func TestFundSplitPercentages(t *testing.T) {
	s := FundSplit{Equity: 6000, Debt: 4000}
	if !s.EquityPct().Equal(60) || !s.DebtPct().Equal(40) || !s.ArbitragePct().Equal(0) {
		t.Errorf("split pcts = %v/%v/%v, want 60/40/0", s.EquityPct(), s.DebtPct(), s.ArbitragePct())
	}
	empty := FundSplit{}
	if empty.EquityPct() != 0 {
		t.Errorf("empty split equity pct = %v, want 0", empty.EquityPct())
	}
}

func TestNewPlanSummary(t *testing.T) {
	doc := planWith(
		[]Holding{
			holding("fd", CategoryFixedDeposit, 200000),
			holding("eq", CategoryEquityMutualFund, 500000),
		},
		[]Goal{
			oneTimeGoal("trip", 400000, 6, inYears(2)),
			oneTimeGoal("house", 5000000, 6, inYears(12)),
		},
	)
	s := NewPlanSummary(doc, testToday)

	if s.Currency != "INR" {
		t.Errorf("Currency = %q, want INR", s.Currency)
	}
	if len(s.Goals) != 2 {
		t.Fatalf("got %d goal projections, want 2", len(s.Goals))
	}
	if s.Short.Goals != 1 || s.Long.Goals != 1 {
		t.Errorf("bucket counts = %d short, %d long, want 1 and 1", s.Short.Goals, s.Long.Goals)
	}

	// The allocator ran first, so projections work on the reduced targets.
	if got := doc.Goal("trip").LinkedTotal(); !within(got, 200000, 0.01) {
		t.Errorf("trip linked = %v, want the fd allocated before projection", got)
	}

	if s.Short.MonthlySIP <= 0 || s.Long.MonthlySIP <= 0 {
		t.Errorf("bucket SIPs = %v/%v, want both positive", s.Short.MonthlySIP, s.Long.MonthlySIP)
	}
	if !within(s.TotalMonthlySIP(), s.Short.MonthlySIP+s.Long.MonthlySIP, 1e-9) {
		t.Errorf("TotalMonthlySIP inconsistent")
	}

	// Bucket splits add up to the bucket SIP.
	if !within(s.Short.Split.Total(), s.Short.MonthlySIP, 0.01) {
		t.Errorf("short split %v does not sum to bucket SIP %v", s.Short.Split.Total(), s.Short.MonthlySIP)
	}
	if !within(s.Long.Split.Total(), s.Long.MonthlySIP, 0.01) {
		t.Errorf("long split %v does not sum to bucket SIP %v", s.Long.Split.Total(), s.Long.MonthlySIP)
	}
	// The long bucket keeps an equity component at 12 years out.
	if s.Long.Split.Equity <= 0 {
		t.Errorf("long split = %+v, want an equity component", s.Long.Split)
	}

	if s := NewPlanSummary(nil, testToday); s.TotalMonthlySIP() != 0 {
		t.Errorf("nil document summary = %+v, want zeros", s)
	}
}
