package http

// SwaggerSelectRequest documents the selection request body.
// NullableDate has custom JSON handling that swag cannot introspect.
// @Description Roundtrip selection request
type SwaggerSelectRequest struct {
	Filter  *SwaggerFilter `json:"filter,omitempty"`
	More    bool           `json:"more" example:"false"`
	Segment int            `json:"segment" example:"0"`
	Locale  string         `json:"locale,omitempty" example:"ru"`
}

// SwaggerFilter documents the optional filter.
// @Description Partial filter; omitted fields are unconstrained
type SwaggerFilter struct {
	Route *RouteDTO `json:"route,omitempty"`

	// TotalCost is an inclusive price ceiling; 0 means no ceiling
	TotalCost *float64 `json:"totalCost,omitempty" example:"4500"`

	// Weekday is a lowercase day name or "any"
	Weekday *string `json:"weekday,omitempty" example:"friday"`

	// Month is 0-based (0 = january)
	Month *int `json:"month,omitempty" example:"11"`

	OriginatingTicket *SwaggerTicketFilter `json:"originatingTicket,omitempty"`
}

// SwaggerTicketFilter documents the outbound leg constraint.
// @Description Outbound leg constraint
type SwaggerTicketFilter struct {
	// Date is YYYY-MM-DD; null clears an earlier date choice
	Date *string `json:"date" extensions:"x-nullable" example:"2026-10-02"`
}
