package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

func TestNormalize_NilFilterUsesDefaultRoute(t *testing.T) {
	n := Normalize(nil, testSettings())

	require.NotNil(t, n.Equality.Route)
	assert.Equal(t, testRoute, *n.Equality.Route)
	assert.Nil(t, n.Equality.Weekday)
	assert.Nil(t, n.Equality.Date)
	assert.Nil(t, n.Equality.Month)
	assert.Nil(t, n.Month)
	assert.Empty(t, n.MonthName)
	assert.Nil(t, n.MonthBeyondTimespan)
	assert.False(t, n.HasCeiling())
}

func TestNormalize_CallerRouteWins(t *testing.T) {
	n := Normalize(&domain.Filter{Route: &otherRoute}, testSettings())

	require.NotNil(t, n.Equality.Route)
	assert.Equal(t, otherRoute, *n.Equality.Route)
}

func TestNormalize_Month(t *testing.T) {
	date := domain.Date{Year: 2026, Month: 11, Day: 14}

	tests := []struct {
		name         string
		filter       *domain.Filter
		wantMonth    *int
		wantExplicit bool
		wantName     string
	}{
		{
			name:         "explicit month",
			filter:       &domain.Filter{Month: ptr(11)},
			wantMonth:    ptr(11),
			wantExplicit: true,
			wantName:     "december",
		},
		{
			name:      "derived from date",
			filter:    &domain.Filter{OriginatingTicket: &domain.TicketFilter{Date: domain.OnDate(date)}},
			wantMonth: ptr(10),
			wantName:  "november",
		},
		{
			name: "explicit month beats date",
			filter: &domain.Filter{
				Month:             ptr(0),
				OriginatingTicket: &domain.TicketFilter{Date: domain.OnDate(date)},
			},
			wantMonth:    ptr(0),
			wantExplicit: true,
			wantName:     "january",
		},
		{
			name:   "cleared date derives nothing",
			filter: &domain.Filter{OriginatingTicket: &domain.TicketFilter{Date: domain.ClearedDate()}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(tt.filter, testSettings())

			assert.Equal(t, tt.wantMonth, n.Month)
			assert.Equal(t, tt.wantExplicit, n.ExplicitMonth)
			assert.Equal(t, tt.wantName, n.MonthName)
			if tt.wantExplicit {
				assert.Equal(t, tt.wantMonth, n.Equality.Month)
			} else {
				assert.Nil(t, n.Equality.Month, "a derived month is not an equality constraint")
			}
		})
	}
}

func TestNormalize_MonthBeyondTimespanMessage(t *testing.T) {
	n := Normalize(&domain.Filter{Month: ptr(3)}, testSettings())

	require.NotNil(t, n.MonthBeyondTimespan)
	assert.Equal(t, domain.MsgMonthBeyondTimespan, n.MonthBeyondTimespan.Key)
	assert.Equal(t, "april", n.MonthBeyondTimespan.Params[domain.ParamMonthName])
	assert.Equal(t, "october, november, december", n.MonthBeyondTimespan.Params[domain.ParamTimespan])
}

func TestNormalize_CeilingLeavesEqualityFilter(t *testing.T) {
	n := Normalize(&domain.Filter{TotalCost: ptr(2500.0)}, testSettings())

	require.NotNil(t, n.Ceiling)
	assert.Equal(t, 2500.0, *n.Ceiling)
	assert.True(t, n.HasCeiling())
}

func TestNormalize_ZeroCeilingIsAbsent(t *testing.T) {
	n := Normalize(&domain.Filter{TotalCost: ptr(0.0)}, testSettings())
	assert.False(t, n.HasCeiling())
}

func TestNormalize_Weekday(t *testing.T) {
	t.Run("any sentinel is stripped", func(t *testing.T) {
		n := Normalize(&domain.Filter{Weekday: ptr(DefaultAnyWeekday)}, testSettings())
		assert.Nil(t, n.Equality.Weekday)
	})

	t.Run("custom sentinel is honoured", func(t *testing.T) {
		settings := testSettings()
		settings.AnyWeekday = "whenever"

		n := Normalize(&domain.Filter{Weekday: ptr(domain.Weekday("whenever"))}, settings)
		assert.Nil(t, n.Equality.Weekday)
	})

	t.Run("real weekday is kept", func(t *testing.T) {
		n := Normalize(&domain.Filter{Weekday: ptr(domain.Weekday("friday"))}, testSettings())
		require.NotNil(t, n.Equality.Weekday)
		assert.Equal(t, domain.Weekday("friday"), *n.Equality.Weekday)
	})
}

func TestNormalize_Date(t *testing.T) {
	date := domain.Date{Year: 2026, Month: 10, Day: 2}

	t.Run("set date becomes equality and specific date", func(t *testing.T) {
		n := Normalize(&domain.Filter{OriginatingTicket: &domain.TicketFilter{Date: domain.OnDate(date)}}, testSettings())
		require.NotNil(t, n.Equality.Date)
		require.NotNil(t, n.SpecificDate)
		assert.Equal(t, date, *n.Equality.Date)
		assert.Equal(t, date, *n.SpecificDate)
	})

	t.Run("cleared date is dropped", func(t *testing.T) {
		n := Normalize(&domain.Filter{OriginatingTicket: &domain.TicketFilter{Date: domain.ClearedDate()}}, testSettings())
		assert.Nil(t, n.Equality.Date)
		assert.Nil(t, n.SpecificDate)
	})

	t.Run("ticket filter without date", func(t *testing.T) {
		n := Normalize(&domain.Filter{OriginatingTicket: &domain.TicketFilter{}}, testSettings())
		assert.Nil(t, n.Equality.Date)
		assert.Nil(t, n.SpecificDate)
	})
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	filter := &domain.Filter{
		TotalCost:         ptr(100.0),
		Weekday:           ptr(DefaultAnyWeekday),
		OriginatingTicket: &domain.TicketFilter{Date: domain.ClearedDate()},
	}

	Normalize(filter, testSettings())

	require.NotNil(t, filter.TotalCost)
	require.NotNil(t, filter.Weekday)
	assert.Equal(t, DefaultAnyWeekday, *filter.Weekday)
	assert.True(t, filter.OriginatingTicket.Date.IsCleared())
	assert.Nil(t, filter.Route)
}

func TestNormalize_MissingSettingsFallBack(t *testing.T) {
	n := Normalize(&domain.Filter{Weekday: ptr(DefaultAnyWeekday), Month: ptr(5)}, Settings{DefaultRoute: testRoute})

	assert.Nil(t, n.Equality.Weekday)
	require.NotNil(t, n.MonthBeyondTimespan)
	assert.Equal(t, "all year", n.MonthBeyondTimespan.Params[domain.ParamTimespan])
}
