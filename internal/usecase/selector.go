package usecase

import (
	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

// StrategyName identifies which selection branch produced a result.
type StrategyName string

// Selection strategies, listed in priority order.
const (
	StrategyMore       StrategyName = "more"
	StrategyCeiling    StrategyName = "price_ceiling"
	StrategyEmptyMonth StrategyName = "empty_month"
	StrategyEmptyDate  StrategyName = "empty_date"
	StrategyCheapest   StrategyName = "cheapest"
)

// selection is the state shared by strategies during one call.
type selection struct {
	filter   NormalizedFilter
	filtered []domain.Roundtrip
	more     bool
	segment  int
	timespan domain.Timespan
}

// strategy is one row of the decision table.
type strategy struct {
	name    StrategyName
	applies func(s *selection) bool
	run     func(s *selection) ([]domain.Roundtrip, *domain.Message)
}

// strategies is evaluated top to bottom; the first applicable row wins.
var strategies = []strategy{
	{name: StrategyMore, applies: wantsMore, run: selectMore},
	{name: StrategyCeiling, applies: hasCeiling, run: selectUnderCeiling},
	{name: StrategyEmptyMonth, applies: monthIsEmpty, run: explainEmptyMonth},
	{name: StrategyEmptyDate, applies: dateIsEmpty, run: explainEmptyDate},
	{name: StrategyCheapest, applies: always, run: selectCheapest},
}

// Selector picks roundtrips from a catalog snapshot.
// It is a pure function of (catalog, request) and safe for concurrent use.
type Selector struct {
	settings Settings
}

// NewSelector creates a Selector with the given settings.
// A zero AnyWeekday or nil Timespan falls back to defaults.
func NewSelector(settings Settings) *Selector {
	return &Selector{settings: settings.withDefaults()}
}

// Settings returns the effective settings.
func (s *Selector) Settings() Settings {
	return s.settings
}

// Select filters the catalog and runs the first applicable strategy.
// The catalog slice is never modified.
func (s *Selector) Select(catalog []domain.Roundtrip, req domain.SelectionRequest) (*domain.SelectionResult, StrategyName) {
	filter := Normalize(req.Filter, s.settings)

	sel := &selection{
		filter:   filter,
		filtered: ApplyFilter(catalog, filter.Equality),
		more:     req.More,
		segment:  req.Segment,
		timespan: s.settings.Timespan,
	}

	for _, st := range strategies {
		if !st.applies(sel) {
			continue
		}
		roundtrips, msg := st.run(sel)
		return &domain.SelectionResult{Roundtrips: roundtrips, Message: msg}, st.name
	}

	// Unreachable: the last strategy always applies.
	return &domain.SelectionResult{}, StrategyCheapest
}

func wantsMore(s *selection) bool { return s.more }

func hasCeiling(s *selection) bool { return s.filter.HasCeiling() }

func monthIsEmpty(s *selection) bool {
	return s.filter.ExplicitMonth && len(s.filtered) == 0
}

func dateIsEmpty(s *selection) bool {
	return s.filter.SpecificDate != nil && len(s.filtered) == 0
}

func always(*selection) bool { return true }

// selectMore returns a page of cheap alternatives to the cheapest roundtrip.
func selectMore(s *selection) ([]domain.Roundtrip, *domain.Message) {
	alternatives := ExcludeMin(SortByCostThenDeparture(s.filtered))
	page := Paginate(alternatives, s.segment, domain.PageSize)

	switch {
	case len(page) > 1:
		return page, domain.NewMessage(domain.MsgMoreTicketsCheapestFirst, nil)
	case len(page) == 1:
		return page, domain.NewMessage(domain.MsgLastPairOfTickets, nil)
	case s.filter.SpecificDate != nil:
		return page, domain.NewMessage(domain.MsgOnlyOneCheapestPairPerDay, nil)
	default:
		return page, domain.NewMessage(domain.MsgNoMoreTickets, nil)
	}
}

// selectUnderCeiling returns the nearest departure within budget, or the cheapest overall.
func selectUnderCeiling(s *selection) ([]domain.Roundtrip, *domain.Message) {
	ceiling := *s.filter.Ceiling

	if affordable := FilterByCeiling(s.filtered, ceiling); len(affordable) > 0 {
		return single(Earliest(affordable)), nil
	}

	msg := domain.NewMessage(domain.MsgNoTicketsWithGivenPrice, map[string]any{
		domain.ParamTotalCost: ceiling,
	})
	return single(Cheapest(s.filtered)), msg
}

func explainEmptyMonth(s *selection) ([]domain.Roundtrip, *domain.Message) {
	if s.timespan.Contains(*s.filter.Month) {
		return nil, domain.NewMessage(domain.MsgNoTicketsForGivenMonth, map[string]any{
			domain.ParamMonthName: s.filter.MonthName,
		})
	}
	return nil, s.filter.MonthBeyondTimespan
}

func explainEmptyDate(s *selection) ([]domain.Roundtrip, *domain.Message) {
	if s.timespan.Contains(*s.filter.Month) {
		return nil, domain.NewMessage(domain.MsgNoTicketsForGivenDate, nil)
	}
	return nil, s.filter.MonthBeyondTimespan
}

func selectCheapest(s *selection) ([]domain.Roundtrip, *domain.Message) {
	return single(Cheapest(s.filtered)), nil
}

// single wraps one roundtrip into a list; nil stays nil.
func single(r *domain.Roundtrip) []domain.Roundtrip {
	if r == nil {
		return nil
	}
	return []domain.Roundtrip{*r}
}
