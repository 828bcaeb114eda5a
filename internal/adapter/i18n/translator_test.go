package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

func TestNew(t *testing.T) {
	t.Run("default locale first", func(t *testing.T) {
		tr, err := New("ru")
		require.NoError(t, err)
		assert.Equal(t, []string{"ru", "en"}, tr.Locales())
	})

	t.Run("empty means english", func(t *testing.T) {
		tr, err := New("")
		require.NoError(t, err)
		assert.Equal(t, "en", tr.Locales()[0])
	})

	t.Run("unsupported default", func(t *testing.T) {
		_, err := New("de")
		assert.ErrorContains(t, err, "unsupported default locale")
		assert.Panics(t, func() { MustNew("de") })
	})
}

func TestTranslator_Match(t *testing.T) {
	tr := MustNew("en")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "en"},
		{input: "ru", want: "ru"},
		{input: "ru-RU,ru;q=0.9,en;q=0.8", want: "ru"},
		{input: "en-GB", want: "en"},
		{input: "de-DE", want: "en"},
		{input: "fr;q=0.9, ru;q=0.5", want: "ru"},
		{input: "!!!", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.input))
		})
	}
}

func TestTranslator_EveryKeyHasPhrase(t *testing.T) {
	tr := MustNew("en")

	for _, locale := range tr.Locales() {
		for _, key := range domain.MessageKeys {
			text := tr.Translate(locale, domain.Message{Key: key})
			assert.NotEqual(t, string(key), text, "%s: %s", locale, key)
			assert.NotEmpty(t, text)
		}
	}
}

func TestTranslator_Translate(t *testing.T) {
	tr := MustNew("en")

	tests := []struct {
		name   string
		locale string
		msg    domain.Message
		want   string
	}{
		{
			name:   "plain phrase",
			locale: "en",
			msg:    domain.Message{Key: domain.MsgNoMoreTickets},
			want:   "There are no more tickets.",
		},
		{
			name:   "month name",
			locale: "en",
			msg: domain.Message{
				Key:    domain.MsgNoTicketsForGivenMonth,
				Params: map[string]any{domain.ParamMonthName: "december"},
			},
			want: "There are no tickets for december.",
		},
		{
			name:   "month name translated",
			locale: "ru",
			msg: domain.Message{
				Key:    domain.MsgNoTicketsForGivenMonth,
				Params: map[string]any{domain.ParamMonthName: "december"},
			},
			want: "На декабрь билетов нет.",
		},
		{
			name:   "timespan translated",
			locale: "ru-RU",
			msg: domain.Message{
				Key: domain.MsgMonthBeyondTimespan,
				Params: map[string]any{
					domain.ParamMonthName: "march",
					domain.ParamTimespan:  "october-december",
				},
			},
			want: "Билеты продаются только на период октябрь-декабрь, поэтому на март их пока нет.",
		},
		{
			name:   "number parameter",
			locale: "en",
			msg: domain.Message{
				Key:    domain.MsgNoTicketsWithGivenPrice,
				Params: map[string]any{domain.ParamTotalCost: 900.0},
			},
			want: "There are no tickets for 900 or less. Here is the cheapest one.",
		},
		{
			name:   "missing parameter is left in place",
			locale: "en",
			msg:    domain.Message{Key: domain.MsgNoTicketsForGivenMonth},
			want:   "There are no tickets for %{monthName}.",
		},
		{
			name:   "unknown key renders the key",
			locale: "en",
			msg:    domain.Message{Key: "somethingElse"},
			want:   "somethingElse",
		},
		{
			name:   "unknown locale falls back",
			locale: "ja",
			msg:    domain.Message{Key: domain.MsgNoTicketsForGivenDate},
			want:   "There are no tickets for this date.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.locale, tt.msg))
		})
	}
}

func TestParsePhrasebook(t *testing.T) {
	t.Run("missing phrase", func(t *testing.T) {
		_, err := parsePhrasebook([]byte(`{"locale":"en","phrases":{"noMoreTickets":"x"}}`))
		assert.ErrorContains(t, err, "missing phrase")
	})

	t.Run("bad locale", func(t *testing.T) {
		_, err := parsePhrasebook([]byte(`{"locale":"not a locale","phrases":{}}`))
		assert.Error(t, err)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := parsePhrasebook([]byte(`{`))
		assert.Error(t, err)
	})
}
