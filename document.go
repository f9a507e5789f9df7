package goalplan

import (
	"github.com/shopspring/decimal"
)

// Settings holds the return assumptions and contribution policies of the
// plan. It is pure configuration, owned by the data store.
type Settings struct {
	Currency            string  `json:"currency"`
	EquityReturn        float64 `json:"equityReturn"`        // percent per year
	DebtReturn          float64 `json:"debtReturn"`          // percent per year
	ArbitrageReturn     float64 `json:"arbitrageReturn"`     // percent per year, 0 falls back to debt
	EPFReturn           float64 `json:"epfReturn"`           // percent per year
	NPSReturn           float64 `json:"npsReturn"`           // percent per year
	EquityAllocationPct float64 `json:"equityAllocationPct"` // equity share of long-horizon money
	StepUpPct           float64 `json:"stepUpPct"`           // annual step-up for generic contributions
	PayrollStepUpPct    float64 `json:"payrollStepUpPct"`    // annual step-up for payroll income
}

// DefaultSettings returns the documented default assumptions a partial or
// missing document is merged against.
func DefaultSettings() Settings {
	return Settings{
		Currency:            DefaultCurrency,
		EquityReturn:        12,
		DebtReturn:          7,
		ArbitrageReturn:     6,
		EPFReturn:           8.25,
		NPSReturn:           10,
		EquityAllocationPct: 60,
		StepUpPct:           5,
		PayrollStepUpPct:    5,
	}
}

// Income is a recurring income source. The EPF and NPS fields record the
// monthly payroll-linked retirement contributions tied to this income.
type Income struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Monthly    decimal.Decimal `json:"monthly"`
	EPFMonthly decimal.Decimal `json:"epfMonthly"`
	NPSMonthly decimal.Decimal `json:"npsMonthly"`
}

// Expense is a recurring monthly expense record.
type Expense struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Monthly decimal.Decimal `json:"monthly"`
}

// Liability is an outstanding debt record.
type Liability struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Outstanding decimal.Decimal `json:"outstanding"`
	EMI         decimal.Decimal `json:"emi"`
}

// Cashflow groups the recurring income and expense records.
type Cashflow struct {
	Incomes  []Income  `json:"income"`
	Expenses []Expense `json:"expenses"`
}

// Assets wraps the holdings list.
type Assets struct {
	Items []Holding `json:"items"`
}

// Liabilities wraps the liabilities list.
type Liabilities struct {
	Items []Liability `json:"items"`
}

// PlanDocument is the single shared document the whole plan lives in. The
// engine never keeps hidden state: every entry point takes the document as an
// explicit parameter and recomputes from scratch.
type PlanDocument struct {
	Settings    Settings    `json:"settings"`
	Cashflow    Cashflow    `json:"cashflow"`
	Assets      Assets      `json:"assets"`
	Liabilities Liabilities `json:"liabilities"`
	Goals       []Goal      `json:"goals"`
}

// DefaultPlan returns an empty plan document with default settings.
func DefaultPlan() *PlanDocument {
	doc := &PlanDocument{Settings: DefaultSettings()}
	doc.Normalize()
	return doc
}

// Normalize fills missing settings with defaults and replaces nil collections
// with empty ones, so a partially stored document is safe to compute on.
func (d *PlanDocument) Normalize() {
	def := DefaultSettings()
	if d.Settings.Currency == "" {
		d.Settings.Currency = def.Currency
	}
	if d.Settings.EquityReturn == 0 {
		d.Settings.EquityReturn = def.EquityReturn
	}
	if d.Settings.DebtReturn == 0 {
		d.Settings.DebtReturn = def.DebtReturn
	}
	if d.Settings.EPFReturn == 0 {
		d.Settings.EPFReturn = def.EPFReturn
	}
	if d.Settings.NPSReturn == 0 {
		d.Settings.NPSReturn = def.NPSReturn
	}
	if d.Settings.EquityAllocationPct == 0 {
		d.Settings.EquityAllocationPct = def.EquityAllocationPct
	}
	if d.Settings.StepUpPct == 0 {
		d.Settings.StepUpPct = def.StepUpPct
	}
	if d.Settings.PayrollStepUpPct == 0 {
		d.Settings.PayrollStepUpPct = def.PayrollStepUpPct
	}
	if d.Cashflow.Incomes == nil {
		d.Cashflow.Incomes = []Income{}
	}
	if d.Cashflow.Expenses == nil {
		d.Cashflow.Expenses = []Expense{}
	}
	if d.Assets.Items == nil {
		d.Assets.Items = []Holding{}
	}
	if d.Liabilities.Items == nil {
		d.Liabilities.Items = []Liability{}
	}
	if d.Goals == nil {
		d.Goals = []Goal{}
	}
	for i := range d.Goals {
		if d.Goals[i].LinkedAssets == nil {
			d.Goals[i].LinkedAssets = []LinkedAsset{}
		}
		if d.Goals[i].Type == "" {
			d.Goals[i].Type = GoalOneTime
		}
	}
}

// Goal returns the goal with this id, or nil if unknown.
func (d *PlanDocument) Goal(id string) *Goal {
	if d == nil {
		return nil
	}
	for i := range d.Goals {
		if d.Goals[i].ID == id {
			return &d.Goals[i]
		}
	}
	return nil
}

// Holding returns the holding with this id, or nil if unknown.
func (d *PlanDocument) Holding(id string) *Holding {
	if d == nil {
		return nil
	}
	for i := range d.Assets.Items {
		if d.Assets.Items[i].ID == id {
			return &d.Assets.Items[i]
		}
	}
	return nil
}

// RetirementCorpus sums the retirement-locked holdings by sub-category.
func (d *PlanDocument) RetirementCorpus() RetirementCorpus {
	var c RetirementCorpus
	if d == nil {
		return c
	}
	for _, h := range d.Assets.Items {
		switch h.Category {
		case CategoryEPF:
			c.EPF += h.Value.InexactFloat64()
		case CategoryNPS:
			c.NPS += h.Value.InexactFloat64()
		}
	}
	return c
}

// PayrollContributions sums the recurring monthly payroll-retirement
// contributions across all income sources.
func (d *PlanDocument) PayrollContributions() PayrollContribution {
	var p PayrollContribution
	if d == nil {
		return p
	}
	for _, in := range d.Cashflow.Incomes {
		p.EPFMonthly += in.EPFMonthly.InexactFloat64()
		p.NPSMonthly += in.NPSMonthly.InexactFloat64()
	}
	return p
}

// Assumptions bundles the market assumptions every projection needs.
func (d *PlanDocument) Assumptions() Assumptions {
	if d == nil {
		return Assumptions{}
	}
	return Assumptions{
		EquityReturn:        d.Settings.EquityReturn,
		DebtReturn:          d.Settings.DebtReturn,
		ArbitrageReturn:     d.Settings.ArbitrageReturn,
		EquityAllocationPct: d.Settings.EquityAllocationPct,
	}
}

// PayrollReturns bundles the assumed returns of the payroll retirement funds.
func (d *PlanDocument) PayrollReturns() PayrollReturns {
	if d == nil {
		return PayrollReturns{}
	}
	return PayrollReturns{EPF: d.Settings.EPFReturn, NPS: d.Settings.NPSReturn}
}
