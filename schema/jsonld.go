// Package schema assembles the JSON-LD structured data the programmatic SEO
// pages embed: service schema per trade × location page, the representative
// loan example, FAQ blocks and breadcrumbs. Builders return plain documents;
// Render serializes them for the <script type="application/ld+json"> tag.
package schema

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/mattylll/tradesmanfinance-engine/catalog"
	"github.com/mattylll/tradesmanfinance-engine/loan"
)

const schemaOrg = "https://schema.org"

// Doc is one JSON-LD document.
type Doc map[string]any

// Render serializes a document for embedding in a page.
func Render(d Doc) (string, error) {
	out, err := sonic.MarshalString(d)
	if err != nil {
		return "", fmt.Errorf("render json-ld: %w", err)
	}
	return out, nil
}

// FinancialService describes one trade × location landing page.
func FinancialService(trade catalog.Trade, loc catalog.Location, baseURL string) Doc {
	return Doc{
		"@context":    schemaOrg,
		"@type":       "FinancialService",
		"name":        fmt.Sprintf("%s Finance in %s", trade.Name, loc.Town),
		"description": fmt.Sprintf("Business finance for %ss in %s, %s.", trade.Name, loc.Town, loc.County),
		"url":         fmt.Sprintf("%s/%s-finance/%s", baseURL, trade.ID, loc.Slug),
		"areaServed": Doc{
			"@type": "Place",
			"name":  fmt.Sprintf("%s, %s", loc.Town, loc.County),
		},
		"serviceType": "Trade business finance brokerage",
	}
}

// LoanOrCredit renders the representative example quoted for regulatory
// transparency.
func LoanOrCredit(ex loan.Example) Doc {
	return Doc{
		"@context":             schemaOrg,
		"@type":                "LoanOrCredit",
		"amount":               Doc{"@type": "MonetaryAmount", "currency": "GBP", "value": ex.Amount},
		"loanTerm":             Doc{"@type": "QuantitativeValue", "value": ex.TermMonths, "unitCode": "MON"},
		"annualPercentageRate": ex.AnnualRate,
		"loanRepaymentForm": Doc{
			"@type":                "RepaymentSpecification",
			"loanPaymentAmount":    Doc{"@type": "MonetaryAmount", "currency": "GBP", "value": ex.Results.MonthlyPayment},
			"numberOfLoanPayments": ex.TermMonths,
		},
	}
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// FAQPage builds the FAQ rich-result block.
func FAQPage(items []FAQ) Doc {
	entities := make([]Doc, 0, len(items))
	for _, item := range items {
		entities = append(entities, Doc{
			"@type": "Question",
			"name":  item.Question,
			"acceptedAnswer": Doc{
				"@type": "Answer",
				"text":  item.Answer,
			},
		})
	}
	return Doc{
		"@context":   schemaOrg,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// Crumb is one breadcrumb entry.
type Crumb struct {
	Name string
	URL  string
}

// BreadcrumbList builds the breadcrumb trail for a page.
func BreadcrumbList(crumbs []Crumb) Doc {
	items := make([]Doc, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, Doc{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     c.URL,
		})
	}
	return Doc{
		"@context":        schemaOrg,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}
