package ghl

import "strings"

const leadSource = "Portfolio Website"

// serviceValues maps the offered service labels to the monetary
// estimate attached to a new opportunity.
var serviceValues = map[string]int{
	"Strategic Consulting":            5000,
	"Regulatory Navigation Support":   3000,
	"Transformation Coaching":         2500,
	"Innovative Financial Strategies": 4000,
	"Business System Optimization":    3500,
	"General Inquiry":                 1000,
}

const defaultOpportunityValue = 1000

func opportunityValue(serviceType string) int {
	if v, ok := serviceValues[serviceType]; ok {
		return v
	}
	return defaultOpportunityValue
}

// splitName maps a display name onto the CRM's first/last fields:
// first whitespace token is the first name, the remainder joined with
// single spaces is the last name (empty for single-token names).
func splitName(name string) (first, last string) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", ""
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}
