// Package http exposes the roundtrip analyzer over HTTP.
// It parses and validates requests, maps errors to status codes, and renders
// selection results with localized message text.
package http

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

// SelectRoundtripsRequest is the body of POST /api/v1/roundtrips/select.
type SelectRoundtripsRequest struct {
	// Filter narrows the catalog; omitted fields are unconstrained
	Filter *FilterDTO `json:"filter,omitempty"`

	// More asks for a page of alternatives instead of the single cheapest roundtrip
	More bool `json:"more"`

	// Segment is the zero-based page of alternatives
	Segment int `json:"segment"`

	// Locale overrides Accept-Language for message text
	Locale string `json:"locale,omitempty"`
}

// FilterDTO mirrors domain.Filter on the wire.
type FilterDTO struct {
	Route             *RouteDTO        `json:"route,omitempty"`
	TotalCost         *float64         `json:"totalCost,omitempty"`
	Weekday           *string          `json:"weekday,omitempty"`
	Month             *int             `json:"month,omitempty"`
	OriginatingTicket *TicketFilterDTO `json:"originatingTicket,omitempty"`
}

// RouteDTO is a directed station pair.
type RouteDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TicketFilterDTO constrains the outbound leg.
type TicketFilterDTO struct {
	// Date is YYYY-MM-DD; an explicit null clears a previously chosen date
	Date NullableDate `json:"date"`
}

// NullableDate tells an absent date, an explicit null and a value apart.
type NullableDate struct {
	Present bool
	Null    bool
	Value   string
}

// UnmarshalJSON implements json.Unmarshaler. It is only called when the key is present.
func (d *NullableDate) UnmarshalJSON(data []byte) error {
	d.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		d.Null = true
		d.Value = ""
		return nil
	}
	d.Null = false
	return json.Unmarshal(data, &d.Value)
}

// MarshalJSON implements json.Marshaler.
func (d NullableDate) MarshalJSON() ([]byte, error) {
	if !d.Present || d.Null {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value)
}

var stationPattern = regexp.MustCompile(`^[A-Z0-9]{2,8}$`)

// ValidationError is a problem with one request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every problem found in a request.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add records a problem with field.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any problem was recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap returns field to message, for the error response details.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request and normalizes station codes and weekday case.
// anyWeekday is the sentinel accepted in place of a weekday.
func (r *SelectRoundtripsRequest) Validate(anyWeekday string) error {
	errs := &ValidationErrors{}

	if r.Segment < 0 {
		errs.Add("segment", "segment must be non-negative")
	}

	if r.Filter != nil {
		r.validateRoute(errs)
		r.validateTotalCost(errs)
		r.validateWeekday(errs, anyWeekday)
		r.validateMonth(errs)
		r.validateDate(errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SelectRoundtripsRequest) validateRoute(errs *ValidationErrors) {
	route := r.Filter.Route
	if route == nil {
		return
	}

	route.From = strings.ToUpper(strings.TrimSpace(route.From))
	route.To = strings.ToUpper(strings.TrimSpace(route.To))

	if !stationPattern.MatchString(route.From) {
		errs.Add("filter.route.from", "from must be a station code of 2 to 8 letters or digits")
	}
	if !stationPattern.MatchString(route.To) {
		errs.Add("filter.route.to", "to must be a station code of 2 to 8 letters or digits")
	}
	if route.From != "" && route.From == route.To {
		errs.Add("filter.route", "from and to must be different")
	}
}

func (r *SelectRoundtripsRequest) validateTotalCost(errs *ValidationErrors) {
	if c := r.Filter.TotalCost; c != nil && *c < 0 {
		errs.Add("filter.totalCost", "totalCost must be non-negative")
	}
}

func (r *SelectRoundtripsRequest) validateWeekday(errs *ValidationErrors, anyWeekday string) {
	if r.Filter.Weekday == nil {
		return
	}
	weekday := strings.ToLower(strings.TrimSpace(*r.Filter.Weekday))
	*r.Filter.Weekday = weekday

	if weekday != anyWeekday && !domain.Weekday(weekday).IsValid() {
		errs.Add("filter.weekday", "weekday must be a day name such as \"friday\", or \""+anyWeekday+"\"")
	}
}

func (r *SelectRoundtripsRequest) validateMonth(errs *ValidationErrors) {
	if m := r.Filter.Month; m != nil && (*m < 0 || *m > 11) {
		errs.Add("filter.month", "month must be between 0 (january) and 11 (december)")
	}
}

func (r *SelectRoundtripsRequest) validateDate(errs *ValidationErrors) {
	ticket := r.Filter.OriginatingTicket
	if ticket == nil || !ticket.Date.Present || ticket.Date.Null {
		return
	}
	if _, err := domain.ParseDate(ticket.Date.Value); err != nil {
		errs.Add("filter.originatingTicket.date", "date must be in YYYY-MM-DD format")
	}
}
