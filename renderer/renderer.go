// Package renderer turns the engine's computed structs into markdown
// documents for the CLI to print.
package renderer

import (
	"fmt"

	"github.com/nivesh/goalplan"
)

// money formats an amount in the plan's currency.
func money(v float64, currency string) string {
	return goalplan.M(v, currency).String()
}

// years formats a fractional-year horizon.
func years(y float64) string {
	return fmt.Sprintf("%.1fy", y)
}
