package goalplan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category classifies a holding and determines which goal horizons it may
// fund. The set of categories is part of the stored document format.
type Category string

const (
	// Retirement-locked holdings. Never linkable to goals directly; they are
	// netted against retirement goals by the retirement adjuster instead.
	CategoryEPF Category = "epf"
	CategoryNPS Category = "nps"

	// Equity-type holdings, suitable for long-horizon goals only.
	CategoryEquityMutualFund Category = "equity-mutual-fund"
	CategoryStocks           Category = "stocks"
	CategoryGoldETF          Category = "gold-etf"

	// Debt / short-duration holdings, suitable for short-horizon goals only.
	CategoryFixedDeposit Category = "fixed-deposit"
	CategorySavings      Category = "savings-account"

	// Arbitrage funds sit in between and may fund either horizon.
	CategoryArbitrageFund Category = "arbitrage-fund"

	// Illiquid holdings. Tracked for net worth, never linkable.
	CategoryRealEstate Category = "real-estate"
	CategoryInsurance  Category = "insurance"
	CategoryOther      Category = "other"
)

// Eligibility tags a category with the goal horizons its holdings may fund.
type Eligibility int

const (
	NotLinkable Eligibility = iota
	ShortOnly
	LongOnly
	BothHorizons
)

func (e Eligibility) String() string {
	switch e {
	case NotLinkable:
		return "not-linkable"
	case ShortOnly:
		return "short-only"
	case LongOnly:
		return "long-only"
	case BothHorizons:
		return "both"
	default:
		return "unknown"
	}
}

// Eligibility returns the horizon eligibility of the category. Unknown
// categories are not linkable, so a document written by a newer version
// degrades safely instead of misallocating.
func (c Category) Eligibility() Eligibility {
	switch c {
	case CategoryEquityMutualFund, CategoryStocks, CategoryGoldETF:
		return LongOnly
	case CategoryFixedDeposit, CategorySavings:
		return ShortOnly
	case CategoryArbitrageFund:
		return BothHorizons
	default:
		return NotLinkable
	}
}

// IsRetirement reports whether the category is a payroll-locked retirement fund.
func (c Category) IsRetirement() bool {
	return c == CategoryEPF || c == CategoryNPS
}

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryEPF, CategoryNPS,
		CategoryEquityMutualFund, CategoryStocks, CategoryGoldETF,
		CategoryFixedDeposit, CategorySavings,
		CategoryArbitrageFund,
		CategoryRealEstate, CategoryInsurance, CategoryOther,
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown holding category: %q", s)
}

// Holding is a quantified financial resource (fund, deposit, account) with a
// category determining which goals it may fund.
type Holding struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Value    decimal.Decimal `json:"value"`
}
