package domain

// MessageKey identifies an explanatory phrase. Rendering is left to a Translator.
type MessageKey string

// Message keys produced by the selector.
const (
	MsgMonthBeyondTimespan       MessageKey = "monthBeyondTimespanMessage"
	MsgMoreTicketsCheapestFirst  MessageKey = "moreTicketsCheapestFirst"
	MsgLastPairOfTickets         MessageKey = "lastPairOfTickets"
	MsgOnlyOneCheapestPairPerDay MessageKey = "onlyOneCheapestPairPerDay"
	MsgNoMoreTickets             MessageKey = "noMoreTickets"
	MsgNoTicketsWithGivenPrice   MessageKey = "noTicketsWithGivenPrice"
	MsgNoTicketsForGivenMonth    MessageKey = "noTicketsForGivenMonth"
	MsgNoTicketsForGivenDate     MessageKey = "noTicketsForGivenDate"
)

// Message parameter names.
const (
	ParamMonthName = "monthName"
	ParamTimespan  = "timespan"
	ParamTotalCost = "totalCost"
)

// MessageKeys lists the full message vocabulary.
var MessageKeys = []MessageKey{
	MsgMonthBeyondTimespan,
	MsgMoreTicketsCheapestFirst,
	MsgLastPairOfTickets,
	MsgOnlyOneCheapestPairPerDay,
	MsgNoMoreTickets,
	MsgNoTicketsWithGivenPrice,
	MsgNoTicketsForGivenMonth,
	MsgNoTicketsForGivenDate,
}

// Message is a translatable outcome explanation.
type Message struct {
	// Key selects the phrase
	Key MessageKey `json:"key"`

	// Params are interpolated into the phrase by the translator
	Params map[string]any `json:"params,omitempty"`
}

// NewMessage creates a message with optional parameters.
func NewMessage(key MessageKey, params map[string]any) *Message {
	return &Message{Key: key, Params: params}
}

// Translator renders messages as display text.
type Translator interface {
	// Translate returns the text for msg in the given locale.
	// Unknown locales fall back to the translator's default locale.
	Translate(locale string, msg Message) string
}
