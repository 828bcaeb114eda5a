package http

import (
	"time"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

// ToSelectionRequest converts a validated request into the domain request.
func ToSelectionRequest(req *SelectRoundtripsRequest) domain.SelectionRequest {
	return domain.SelectionRequest{
		Filter:  ToDomainFilter(req.Filter),
		More:    req.More,
		Segment: req.Segment,
	}
}

// ToDomainFilter converts a filter DTO. A date that fails to parse is treated as
// absent; Validate rejects such requests first.
func ToDomainFilter(dto *FilterDTO) *domain.Filter {
	if dto == nil {
		return nil
	}

	f := &domain.Filter{
		TotalCost: dto.TotalCost,
		Month:     dto.Month,
	}
	if dto.Route != nil {
		f.Route = &domain.Route{From: dto.Route.From, To: dto.Route.To}
	}
	if dto.Weekday != nil {
		w := domain.Weekday(*dto.Weekday)
		f.Weekday = &w
	}
	if dto.OriginatingTicket != nil {
		f.OriginatingTicket = &domain.TicketFilter{Date: toDateConstraint(dto.OriginatingTicket.Date)}
	}
	return f
}

func toDateConstraint(d NullableDate) domain.DateConstraint {
	switch {
	case !d.Present:
		return domain.DateConstraint{}
	case d.Null:
		return domain.ClearedDate()
	}
	date, err := domain.ParseDate(d.Value)
	if err != nil {
		return domain.DateConstraint{}
	}
	return domain.OnDate(date)
}

// ToSelectRoundtripsResponse renders a selection result. A nil result list
// stays null on the wire; an empty page is an empty array.
func ToSelectRoundtripsResponse(result *domain.SelectionResult, translator domain.Translator, locale string) SelectRoundtripsResponse {
	var resp SelectRoundtripsResponse
	if result == nil {
		return resp
	}

	if result.Roundtrips != nil {
		resp.Roundtrips = make([]RoundtripDTO, len(result.Roundtrips))
		for i, rt := range result.Roundtrips {
			resp.Roundtrips[i] = ToRoundtripDTO(rt)
		}
	}

	if result.Message != nil {
		resp.Message = &MessageDTO{
			Key:    string(result.Message.Key),
			Params: result.Message.Params,
			Text:   translator.Translate(locale, *result.Message),
		}
	}
	return resp
}

// ToRoundtripDTO converts one roundtrip.
func ToRoundtripDTO(rt domain.Roundtrip) RoundtripDTO {
	dto := RoundtripDTO{
		ID:                rt.ID,
		TotalCost:         rt.TotalCost,
		Route:             RouteDTO{From: rt.Route.From, To: rt.Route.To},
		Weekday:           string(rt.Weekday),
		Month:             rt.Month,
		MonthName:         domain.MonthName(rt.Month),
		OriginatingTicket: toTicketDTO(rt.OriginatingTicket),
	}
	if rt.ReturningTicket != nil {
		t := toTicketDTO(*rt.ReturningTicket)
		dto.ReturningTicket = &t
	}
	return dto
}

func toTicketDTO(t domain.Ticket) TicketDTO {
	return TicketDTO{
		Date:     t.Date.String(),
		DateTime: t.DateTime.Format(time.RFC3339),
		Train:    t.Train,
		Cost:     t.Cost,
	}
}
