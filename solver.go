package goalplan

import "math"

// This file holds the time-value-of-money routines. They are deliberately
// plain float64 functions with explicit degenerate branches: a zero horizon,
// a zero rate or a non-positive amount returns a zero-valued result, never an
// error or a solver failure.

const (
	// monthsPerYear is the compounding frequency for every projection.
	monthsPerYear = 12

	// solverMaxIterations bounds the bisection search.
	solverMaxIterations = 100

	// solverTolerance is the absolute tolerance, in money units, on the
	// projected future value of a candidate payment.
	solverTolerance = 0.01
)

// monthlyRate converts an annual percentage rate into a monthly fraction.
func monthlyRate(annualRatePct float64) float64 {
	return annualRatePct / 100 / monthsPerYear
}

// InflationAdjusted grows a present value at the given annual rate over the
// given number of (possibly fractional) years. The present value is returned
// unchanged when years <= 0.
func InflationAdjusted(presentValue, annualRatePct, years float64) float64 {
	if years <= 0 {
		return presentValue
	}
	return presentValue * math.Pow(1+annualRatePct/100, years)
}

// LumpsumFutureValue returns the monthly-compounded future value of a
// principal held for the given number of years. The principal is returned
// unchanged when years <= 0 or principal <= 0.
func LumpsumFutureValue(principal, annualRatePct, years float64) float64 {
	if years <= 0 || principal <= 0 {
		return principal
	}
	months := years * monthsPerYear
	return principal * math.Pow(1+monthlyRate(annualRatePct), months)
}

// AnnuityFutureValue returns the future value of a level month-end payment
// made for the given number of months, compounding monthly.
func AnnuityFutureValue(payment, annualRatePct float64, months int) float64 {
	if payment <= 0 || months <= 0 {
		return 0
	}
	i := monthlyRate(annualRatePct)
	if i == 0 {
		return payment * float64(months)
	}
	return payment * (math.Pow(1+i, float64(months)) - 1) / i
}

// RegularSIP returns the level month-end payment required to accumulate
// futureValue over the given number of months (ordinary annuity, monthly
// compounding). It returns 0 when futureValue <= 0 or months <= 0, and
// degenerates to futureValue/months at a zero rate.
func RegularSIP(futureValue, annualRatePct float64, months int) float64 {
	if futureValue <= 0 || months <= 0 {
		return 0
	}
	i := monthlyRate(annualRatePct)
	if i == 0 {
		return futureValue / float64(months)
	}
	return futureValue * i / (math.Pow(1+i, float64(months)) - 1)
}

// StepUpFutureValue simulates a contribution schedule whose month-end payment
// is held constant over consecutive 12-month blocks (the final block may be
// shorter) and multiplied by (1+stepUpRate) between blocks. Each month's
// payment compounds at monthlyRate for its remaining months to the horizon.
func StepUpFutureValue(startingPayment, monthlyRate float64, totalMonths int, stepUpRate float64) float64 {
	if startingPayment <= 0 || totalMonths <= 0 {
		return 0
	}
	fv := 0.0
	payment := startingPayment
	for month := 1; month <= totalMonths; month++ {
		fv += payment * math.Pow(1+monthlyRate, float64(totalMonths-month))
		if month%monthsPerYear == 0 {
			payment *= 1 + stepUpRate
		}
	}
	return fv
}

// StepUpSIP returns the starting month-end payment required to accumulate
// futureValue over the given number of months when the payment steps up by
// annualStepUpPct at the start of every 12-month block thereafter.
//
// The payment is found by bisection between 0 and 2*futureValue/months. The
// search is conservative: a converged answer whose projected future value is
// still below the target (within tolerance) is nudged up by one cent, and if
// the iterations exhaust the current upper bound is returned, so the payment
// never under-funds the goal.
func StepUpSIP(futureValue, annualRatePct float64, months int, annualStepUpPct float64) float64 {
	if futureValue <= 0 || months <= 0 {
		return 0
	}
	if annualStepUpPct == 0 {
		return RegularSIP(futureValue, annualRatePct, months)
	}

	i := monthlyRate(annualRatePct)
	stepUp := annualStepUpPct / 100
	lo, hi := 0.0, 2*futureValue/float64(months)

	for iter := 0; iter < solverMaxIterations; iter++ {
		mid := (lo + hi) / 2
		fv := StepUpFutureValue(mid, i, months, stepUp)
		if math.Abs(fv-futureValue) <= solverTolerance {
			if fv < futureValue {
				return mid + solverTolerance
			}
			return mid
		}
		if fv < futureValue {
			lo = mid
		} else {
			hi = mid
		}
	}
	// Not converged: the upper bound is the only payment known to reach the
	// target, so return it rather than the midpoint.
	return hi
}
