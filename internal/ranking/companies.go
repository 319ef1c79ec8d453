package ranking

import (
	"strings"

	"github.com/mkaplan/careercompass/internal/types"
)

// maxTargetCompanies caps the company list attached to a match.
const maxTargetCompanies = 8

// defaultCompaniesByCategory is reference data, not business logic: a static
// lookup used when a catalog row declares no companies of its own.
var defaultCompaniesByCategory = map[string][]string{
	"it":                     {"Google", "Microsoft", "Amazon", "Atlassian", "Shopify", "Stripe"},
	"information technology": {"Google", "Microsoft", "Amazon", "Atlassian", "Shopify", "Stripe"},
	"data science":           {"Google", "Meta", "Netflix", "Airbnb", "Databricks", "Snowflake"},
	"design":                 {"Figma", "Adobe", "Canva", "Airbnb", "Spotify"},
	"marketing":              {"HubSpot", "Salesforce", "Shopify", "Mailchimp"},
	"finance":                {"Goldman Sachs", "JPMorgan", "Stripe", "Bloomberg"},
	"security":               {"CrowdStrike", "Palo Alto Networks", "Cloudflare", "Okta"},
	"cloud":                  {"Amazon", "Microsoft", "Google", "HashiCorp", "Datadog"},
}

// targetCompanies returns the career's own company list when present,
// otherwise the static category lookup, capped at maxTargetCompanies.
func targetCompanies(career *types.CareerDefinition) []string {
	companies := career.TopCompanies
	if len(companies) == 0 {
		companies = defaultCompaniesByCategory[strings.ToLower(strings.TrimSpace(career.Category))]
	}
	if len(companies) > maxTargetCompanies {
		companies = companies[:maxTargetCompanies]
	}

	out := make([]string, len(companies))
	copy(out, companies)
	return out
}
