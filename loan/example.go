package loan

// Example is a fixed illustrative loan scenario shown for regulatory
// transparency, independent of anything the user has entered.
type Example struct {
	Amount     float64 `json:"amount"`
	TermMonths int     `json:"termMonths"`
	AnnualRate float64 `json:"annualRate"`
	Results    Result  `json:"results"`
}

// RepresentativeExample returns the scenario quoted across the site.
func RepresentativeExample() Example {
	const (
		amount = 25000.0
		term   = 48
		rate   = 8.9
	)
	return Example{
		Amount:     amount,
		TermMonths: term,
		AnnualRate: rate,
		Results:    CalculateLoan(amount, term, rate),
	}
}
