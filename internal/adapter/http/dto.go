package http

// SelectRoundtripsResponse is the body of a successful selection.
type SelectRoundtripsResponse struct {
	// Roundtrips is null when nothing was selected and [] for an empty page
	Roundtrips []RoundtripDTO `json:"roundtrips"`

	// Message explains the outcome, or is null
	Message *MessageDTO `json:"message"`
}

// RoundtripDTO is one selected roundtrip.
type RoundtripDTO struct {
	ID                string     `json:"id" example:"rt-001"`
	TotalCost         float64    `json:"totalCost" example:"4200"`
	Route             RouteDTO   `json:"route"`
	Weekday           string     `json:"weekday" example:"friday"`
	Month             int        `json:"month" example:"9"`
	MonthName         string     `json:"monthName" example:"october"`
	OriginatingTicket TicketDTO  `json:"originatingTicket"`
	ReturningTicket   *TicketDTO `json:"returningTicket,omitempty"`
}

// TicketDTO is one leg of a roundtrip.
type TicketDTO struct {
	Date     string  `json:"date" example:"2026-10-02"`
	DateTime string  `json:"datetime" example:"2026-10-02T23:40:00+03:00"`
	Train    string  `json:"train,omitempty" example:"016A"`
	Cost     float64 `json:"cost,omitempty" example:"2100"`
}

// MessageDTO is a selection message with its rendered text.
type MessageDTO struct {
	Key    string         `json:"key" example:"noTicketsForGivenMonth"`
	Params map[string]any `json:"params,omitempty"`
	Text   string         `json:"text" example:"There are no tickets for december."`
}
