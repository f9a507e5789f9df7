package goalplan

import (
	"testing"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	doc := &PlanDocument{}
	doc.Normalize()

	if doc.Settings.Currency != "INR" {
		t.Errorf("Currency = %q, want INR", doc.Settings.Currency)
	}
	if doc.Settings.EquityReturn == 0 || doc.Settings.DebtReturn == 0 {
		t.Errorf("returns not defaulted: %+v", doc.Settings)
	}
	// The arbitrage return is deliberately not defaulted: a zero value means
	// "not set" and triggers the debt fallback for short-horizon money.
	if doc.Settings.ArbitrageReturn != 0 {
		t.Errorf("ArbitrageReturn = %v, want left at 0", doc.Settings.ArbitrageReturn)
	}
	if doc.Goals == nil || doc.Assets.Items == nil || doc.Cashflow.Incomes == nil {
		t.Errorf("collections not initialized")
	}
	if doc.Settings.StepUpPct != 5 || doc.Settings.PayrollStepUpPct != 5 {
		t.Errorf("step-ups not defaulted: StepUpPct=%v PayrollStepUpPct=%v",
			doc.Settings.StepUpPct, doc.Settings.PayrollStepUpPct)
	}
}

func TestNormalizeKeepsExplicitSettings(t *testing.T) {
	doc := &PlanDocument{Settings: Settings{Currency: "USD", EquityReturn: 9}}
	doc.Normalize()
	if doc.Settings.Currency != "USD" || doc.Settings.EquityReturn != 9 {
		t.Errorf("explicit settings overwritten: %+v", doc.Settings)
	}
}

func TestDocumentLookups(t *testing.T) {
	doc := planWith(
		[]Holding{holding("fd", CategoryFixedDeposit, 100)},
		[]Goal{oneTimeGoal("trip", 100, 0, inYears(2))},
	)

	if g := doc.Goal("trip"); g == nil || g.Name != "trip" {
		t.Errorf("Goal(trip) = %v", g)
	}
	if g := doc.Goal("nope"); g != nil {
		t.Errorf("Goal(nope) = %v, want nil", g)
	}
	if h := doc.Holding("fd"); h == nil || h.ID != "fd" {
		t.Errorf("Holding(fd) = %v", h)
	}
	if h := doc.Holding("nope"); h != nil {
		t.Errorf("Holding(nope) = %v, want nil", h)
	}

	var nilDoc *PlanDocument
	if nilDoc.Goal("x") != nil || nilDoc.Holding("x") != nil {
		t.Errorf("nil document lookups must return nil")
	}
}

func TestRetirementCorpusAndContributions(t *testing.T) {
	doc := planWith(
		[]Holding{
			holding("epf1", CategoryEPF, 1000000),
			holding("epf2", CategoryEPF, 500000),
			holding("nps", CategoryNPS, 300000),
			holding("fd", CategoryFixedDeposit, 200000),
		},
		nil,
	)
	doc.Cashflow.Incomes = []Income{
		{ID: "job1", Monthly: D(100000), EPFMonthly: D(10000), NPSMonthly: D(4000)},
		{ID: "job2", Monthly: D(50000), EPFMonthly: D(2000)},
	}

	c := doc.RetirementCorpus()
	if !within(c.EPF, 1500000, 0.01) || !within(c.NPS, 300000, 0.01) {
		t.Errorf("corpus = %+v, want EPF 1500000, NPS 300000", c)
	}

	p := doc.PayrollContributions()
	if !within(p.EPFMonthly, 12000, 0.01) || !within(p.NPSMonthly, 4000, 0.01) {
		t.Errorf("contributions = %+v, want EPF 12000, NPS 4000", p)
	}
}

func TestCategoryEligibility(t *testing.T) {
	tests := []struct {
		category Category
		want     Eligibility
	}{
		{CategoryEPF, NotLinkable},
		{CategoryNPS, NotLinkable},
		{CategoryEquityMutualFund, LongOnly},
		{CategoryStocks, LongOnly},
		{CategoryGoldETF, LongOnly},
		{CategoryFixedDeposit, ShortOnly},
		{CategorySavings, ShortOnly},
		{CategoryArbitrageFund, BothHorizons},
		{CategoryRealEstate, NotLinkable},
		{CategoryInsurance, NotLinkable},
		{CategoryOther, NotLinkable},
		{Category("from-the-future"), NotLinkable},
	}
	for _, tt := range tests {
		if got := tt.category.Eligibility(); got != tt.want {
			t.Errorf("%s.Eligibility() = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("fixed-deposit")
	if err != nil || c != CategoryFixedDeposit {
		t.Errorf("ParseCategory(fixed-deposit) = %v, %v", c, err)
	}
	if _, err := ParseCategory("bitcoin"); err == nil {
		t.Errorf("ParseCategory(bitcoin) = nil error, want an error")
	}
}

func TestMoneyString(t *testing.T) {
	if got := INR(300000).String(); got != "₹300,000.00" {
		t.Errorf("INR(300000).String() = %q", got)
	}
	if !INR(10).Add(INR(5)).Equal(INR(15)) {
		t.Errorf("Add broken")
	}
	if !M(100, "").Add(INR(1)).Equal(INR(101)) {
		t.Errorf("weak currency Add broken")
	}
}
