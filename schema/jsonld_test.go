package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattylll/tradesmanfinance-engine/catalog"
	"github.com/mattylll/tradesmanfinance-engine/loan"
)

func TestFinancialServiceDoc(t *testing.T) {
	trade, _ := catalog.TradeByID("electrician")
	loc := catalog.Location{Town: "Norwich", County: "Norfolk", Slug: "norwich"}

	doc := FinancialService(trade, loc, "https://tradesmanfinance.co.uk")
	assert.Equal(t, "FinancialService", doc["@type"])
	assert.Equal(t, "Electrician Finance in Norwich", doc["name"])
	assert.Equal(t, "https://tradesmanfinance.co.uk/electrician-finance/norwich", doc["url"])

	out, err := Render(doc)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, `"@context":"https://schema.org"`) ||
		strings.Contains(out, `"@context": "https://schema.org"`))
}

func TestLoanOrCreditUsesRepresentativeExample(t *testing.T) {
	ex := loan.RepresentativeExample()
	doc := LoanOrCredit(ex)

	assert.Equal(t, "LoanOrCredit", doc["@type"])
	amount := doc["amount"].(Doc)
	assert.Equal(t, "GBP", amount["currency"])
	assert.Equal(t, ex.Amount, amount["value"])

	repayment := doc["loanRepaymentForm"].(Doc)
	payment := repayment["loanPaymentAmount"].(Doc)
	assert.Equal(t, ex.Results.MonthlyPayment, payment["value"])
}

func TestFAQPage(t *testing.T) {
	doc := FAQPage([]FAQ{
		{Question: "Can I get finance with bad credit?", Answer: "Often, yes — lenders weigh trading history too."},
		{Question: "How fast is payout?", Answer: "Usually within 48 hours of approval."},
	})
	entities := doc["mainEntity"].([]Doc)
	require.Len(t, entities, 2)
	assert.Equal(t, "Question", entities[0]["@type"])
}

func TestBreadcrumbListPositionsAreOneBased(t *testing.T) {
	doc := BreadcrumbList([]Crumb{
		{Name: "Home", URL: "https://tradesmanfinance.co.uk"},
		{Name: "Electrician Finance", URL: "https://tradesmanfinance.co.uk/electrician-finance"},
	})
	items := doc["itemListElement"].([]Doc)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0]["position"])
	assert.Equal(t, 2, items[1]["position"])
}
