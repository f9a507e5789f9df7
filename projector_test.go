package goalplan

import (
	"testing"
)

func TestHorizonOf(t *testing.T) {
	tests := []struct {
		years float64
		want  Horizon
	}{
		{years: 0, want: Short},
		{years: 4.99, want: Short},
		{years: 5, want: Long},
		{years: 30, want: Long},
	}
	for _, tt := range tests {
		if got := HorizonOf(tt.years); got != tt.want {
			t.Errorf("HorizonOf(%v) = %v, want %v", tt.years, got, tt.want)
		}
	}
}

func TestBlendedReturn(t *testing.T) {
	a := Assumptions{EquityReturn: 12, DebtReturn: 7, ArbitrageReturn: 6, EquityAllocationPct: 60}

	if got := BlendedReturn(Short, a); got != 6 {
		t.Errorf("short bucket = %v, want arbitrage return 6", got)
	}
	// 60% of 12 plus 40% of 7.
	if got := BlendedReturn(Long, a); !within(got, 10, 1e-9) {
		t.Errorf("long bucket = %v, want 10", got)
	}

	// Documents written before the arbitrage return existed fall back to debt.
	a.ArbitrageReturn = 0
	if got := BlendedReturn(Short, a); got != 7 {
		t.Errorf("short bucket without arbitrage return = %v, want debt return 7", got)
	}
}

func TestProjectGoal(t *testing.T) {
	g := oneTimeGoal("car", 1000000, 6, inYears(10))
	a := Assumptions{EquityReturn: 12, DebtReturn: 7, ArbitrageReturn: 6, EquityAllocationPct: 60}

	p := ProjectGoal(&g, testToday, a)

	if p.Horizon != Long {
		t.Errorf("Horizon = %v, want Long", p.Horizon)
	}
	if p.Months != 120 {
		t.Errorf("Months = %d, want 120", p.Months)
	}
	if !within(p.Years, 10, 0.01) {
		t.Errorf("Years = %v, want ~10", p.Years)
	}
	if !within(p.AdjustedTarget, 1790847, 500) {
		t.Errorf("AdjustedTarget = %v, want ~1790847", p.AdjustedTarget)
	}
	if !within(p.BlendedReturn, 10, 1e-9) {
		t.Errorf("BlendedReturn = %v, want 10", p.BlendedReturn)
	}
	want := RegularSIP(p.AdjustedTarget, 10, 120)
	if !within(p.MonthlySIP, want, 0.01) {
		t.Errorf("MonthlySIP = %v, want %v", p.MonthlySIP, want)
	}
}

func TestProjectGoalAccountsForLinkedValue(t *testing.T) {
	g := oneTimeGoal("house", 500000, 0, inYears(3))
	g.LinkedAssets = []LinkedAsset{{HoldingID: "fd", Amount: D(200000)}}
	a := Assumptions{DebtReturn: 7, ArbitrageReturn: 6}

	p := ProjectGoal(&g, testToday, a)

	if !within(p.Linked, 200000, 0.01) {
		t.Errorf("Linked = %v, want 200000", p.Linked)
	}
	want := RegularSIP(300000, 6, p.Months)
	if !within(p.MonthlySIP, want, 0.01) {
		t.Errorf("MonthlySIP = %v, want %v (only the unfunded part)", p.MonthlySIP, want)
	}
}

func TestProjectGoalFullyLinked(t *testing.T) {
	g := oneTimeGoal("trip", 100000, 0, inYears(2))
	g.LinkedAssets = []LinkedAsset{{HoldingID: "fd", Amount: D(100000)}}

	p := ProjectGoal(&g, testToday, Assumptions{DebtReturn: 7})
	if p.MonthlySIP != 0 {
		t.Errorf("MonthlySIP = %v, want 0 for a fully funded goal", p.MonthlySIP)
	}
}

func TestProjectGoalPastDate(t *testing.T) {
	g := oneTimeGoal("done", 100000, 6, testToday.AddYears(-1))
	p := ProjectGoal(&g, testToday, Assumptions{DebtReturn: 7})
	if p.Years != 0 || p.Months != 0 {
		t.Errorf("past goal: years=%v months=%d, want 0", p.Years, p.Months)
	}
	if p.AdjustedTarget != 100000 {
		t.Errorf("AdjustedTarget = %v, want unchanged target for years <= 0", p.AdjustedTarget)
	}
	if p.MonthlySIP != 0 {
		t.Errorf("MonthlySIP = %v, want 0 with no months left", p.MonthlySIP)
	}
}

func TestProjectGoalNil(t *testing.T) {
	p := ProjectGoal(nil, testToday, Assumptions{})
	if p.MonthlySIP != 0 || p.AdjustedTarget != 0 {
		t.Errorf("nil goal: got %+v, want zero projection", p)
	}
}
