// Package loan implements the amortization engine behind the repayment
// calculator: fixed-rate loan figures, a full amortization schedule, input
// clamping against configured bounds, and GBP display formatting.
package loan

import (
	"fmt"
	"iter"
)

// Result holds the derived figures for a fixed-rate amortizing loan.
// All values are unrounded; rounding happens at the display layer only.
type Result struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalAmount    float64 `json:"totalAmount"`
}

// SavedCalculation is the side-channel snapshot the calculator persists and
// the form engine reads once at mount to pre-fill the loan-amount step.
type SavedCalculation struct {
	Amount  float64 `json:"amount"`
	Term    int     `json:"term"`
	Rate    float64 `json:"rate"`
	Results Result  `json:"results"`
}

// ScheduleRow is one month of an amortization schedule.
type ScheduleRow struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	PrincipalPortion float64 `json:"principalPortion"`
	InterestPortion  float64 `json:"interestPortion"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// CalculateLoan computes the monthly payment, total interest and total
// repayable for a fixed-rate amortizing loan.
//
// Callers clamp inputs against Config bounds before invoking. Out-of-domain
// inputs (principal <= 0, termMonths < 1, negative rate) are programmer
// errors and panic.
func CalculateLoan(principal float64, termMonths int, annualRatePercent float64) Result {
	mustValidInputs(principal, termMonths, annualRatePercent)

	monthly := monthlyPayment(principal, termMonths, annualRatePercent)
	total := monthly * float64(termMonths)
	return Result{
		MonthlyPayment: monthly,
		TotalInterest:  total - principal,
		TotalAmount:    total,
	}
}

// GenerateAmortizationSchedule yields the month-by-month breakdown of the
// loan. The sequence is a pure re-derivation from its inputs, so it can be
// ranged over any number of times. The final row's RemainingBalance lands on
// zero within floating-point error.
func GenerateAmortizationSchedule(principal float64, termMonths int, annualRatePercent float64) iter.Seq[ScheduleRow] {
	mustValidInputs(principal, termMonths, annualRatePercent)

	return func(yield func(ScheduleRow) bool) {
		monthly := monthlyPayment(principal, termMonths, annualRatePercent)
		rate := monthlyRate(annualRatePercent)
		balance := principal
		for period := 1; period <= termMonths; period++ {
			interest := balance * rate
			repaid := monthly - interest
			balance -= repaid
			if !yield(ScheduleRow{
				Period:           period,
				Payment:          monthly,
				PrincipalPortion: repaid,
				InterestPortion:  interest,
				RemainingBalance: balance,
			}) {
				return
			}
		}
	}
}

func monthlyPayment(principal float64, termMonths int, annualRatePercent float64) float64 {
	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return principal / float64(termMonths)
	}
	factor := pow1p(r, termMonths)
	return principal * r * factor / (factor - 1)
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// pow1p computes (1+r)^n by repeated multiplication; n is small (months).
func pow1p(r float64, n int) float64 {
	f := 1.0
	for i := 0; i < n; i++ {
		f *= 1 + r
	}
	return f
}

func mustValidInputs(principal float64, termMonths int, annualRatePercent float64) {
	if principal <= 0 {
		panic(fmt.Sprintf("loan: principal must be positive, got %v", principal))
	}
	if termMonths < 1 {
		panic(fmt.Sprintf("loan: term must be at least one month, got %d", termMonths))
	}
	if annualRatePercent < 0 {
		panic(fmt.Sprintf("loan: rate must not be negative, got %v", annualRatePercent))
	}
}
