package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"mfo-offers-api/internal/models"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidateOffer checks every field constraint of an offer payload. The offer
// is expected to be sanitized already; ID must be empty on create requests.
func ValidateOffer(offer models.Offer) error {
	if offer.Name == "" {
		return &ValidationError{
			Field:   "name",
			Message: "is required",
		}
	}

	if offer.APR < 0 {
		return &ValidationError{
			Field:   "apr",
			Message: "must be non-negative",
		}
	}

	if offer.MinAmount < 0 {
		return &ValidationError{
			Field:   "min_amount",
			Message: "must be non-negative",
		}
	}

	if offer.MaxAmount < 0 {
		return &ValidationError{
			Field:   "max_amount",
			Message: "must be non-negative",
		}
	}

	if offer.TermMinDays < 1 {
		return &ValidationError{
			Field:   "term_min_days",
			Message: "must be at least 1",
		}
	}

	if offer.TermMaxDays < 1 {
		return &ValidationError{
			Field:   "term_max_days",
			Message: "must be at least 1",
		}
	}

	if offer.ApprovalRate != nil && (*offer.ApprovalRate < 0 || *offer.ApprovalRate > 100) {
		return &ValidationError{
			Field:   "approval_rate",
			Message: "must be between 0 and 100",
		}
	}

	if offer.Rating != nil && (*offer.Rating < 0 || *offer.Rating > 5) {
		return &ValidationError{
			Field:   "rating",
			Message: "must be between 0 and 5",
		}
	}

	if offer.Link != nil {
		if err := validateURL(*offer.Link); err != nil {
			return err
		}
	}

	return nil
}

// SanitizeOffer strips control characters and surrounding whitespace from all
// string fields of an offer in place.
func SanitizeOffer(offer *models.Offer) {
	offer.Name = SanitizeString(offer.Name)
	if offer.Description != nil {
		desc := SanitizeString(*offer.Description)
		offer.Description = &desc
	}
	if offer.Link != nil {
		link := SanitizeString(*offer.Link)
		offer.Link = &link
	}
	for i := range offer.Tags {
		offer.Tags[i] = SanitizeString(offer.Tags[i])
	}
}

func SanitizeString(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(s)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ValidationError{
			Field:   "link",
			Message: "must be a valid absolute URL",
		}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{
			Field:   "link",
			Message: "must use http or https",
		}
	}

	return nil
}

// ParseOfferFilter parses and validates the optional listing query parameters.
// A missing or empty parameter contributes nothing; out-of-range values are
// rejected with field-level detail before the filter is built.
func ParseOfferFilter(params url.Values) (models.OfferFilter, error) {
	var filter models.OfferFilter

	if q := SanitizeString(params.Get("q")); q != "" {
		filter.Query = &q
	}

	maxAPR, err := parseOptionalFloat(params, "max_apr", 0, -1)
	if err != nil {
		return models.OfferFilter{}, err
	}
	filter.MaxAPR = maxAPR

	minAmount, err := parseOptionalInt(params, "min_amount")
	if err != nil {
		return models.OfferFilter{}, err
	}
	filter.MinAmount = minAmount

	maxAmount, err := parseOptionalInt(params, "max_amount")
	if err != nil {
		return models.OfferFilter{}, err
	}
	filter.MaxAmount = maxAmount

	minRating, err := parseOptionalFloat(params, "min_rating", 0, 5)
	if err != nil {
		return models.OfferFilter{}, err
	}
	filter.MinRating = minRating

	return filter, nil
}

// parseOptionalFloat parses a float query parameter with a minimum and an
// optional maximum (max < min disables the upper bound).
func parseOptionalFloat(params url.Values, field string, min, max float64) (*float64, error) {
	raw := params.Get(field)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ValidationError{
			Field:   field,
			Message: "must be a number",
		}
	}

	if v < min {
		return nil, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %g", min),
		}
	}

	if max >= min && v > max {
		return nil, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %g", max),
		}
	}

	return &v, nil
}

func parseOptionalInt(params url.Values, field string) (*int64, error) {
	raw := params.Get(field)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &ValidationError{
			Field:   field,
			Message: "must be an integer",
		}
	}

	if v < 0 {
		return nil, &ValidationError{
			Field:   field,
			Message: "must be non-negative",
		}
	}

	return &v, nil
}
