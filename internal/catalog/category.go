package catalog

import "fmt"

// Category is a closed set of challenge categories. Every weekly challenge,
// track, and task belongs to exactly one category.
type Category string

const (
	CategoryThreatDetection  Category = "threat-detection"
	CategoryVulnerabilityScan Category = "vulnerability-scan"
	CategorySecureCoding     Category = "secure-coding"
	CategoryIncidentResponse Category = "incident-response"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryThreatDetection,
		CategoryVulnerabilityScan,
		CategorySecureCoding,
		CategoryIncidentResponse,
	}
}

// ParseCategory converts a raw string into a Category.
// Unknown strings are rejected so typos never silently create a new bucket.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryThreatDetection, CategoryVulnerabilityScan, CategorySecureCoding, CategoryIncidentResponse:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryThreatDetection:
		return "Threat Detection"
	case CategoryVulnerabilityScan:
		return "Vulnerability Hunter"
	case CategorySecureCoding:
		return "Secure Code Champion"
	case CategoryIncidentResponse:
		return "Incident Responder"
	default:
		return string(c)
	}
}

// Icon returns the display icon for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryThreatDetection:
		return "🎯"
	case CategoryVulnerabilityScan:
		return "🛡️"
	case CategorySecureCoding:
		return "💻"
	case CategoryIncidentResponse:
		return "🚨"
	default:
		return "✦"
	}
}
