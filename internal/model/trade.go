package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Instrument distinguishes the traded security type.
type Instrument string

const (
	InstrumentStock Instrument = "Stock"
	InstrumentCall  Instrument = "Call Option"
	InstrumentPut   Instrument = "Put Option"
)

// Action is the classified lifecycle or direction of a trade.
type Action string

const (
	ActionOpen    Action = "OPEN"
	ActionClose   Action = "CLOSE"
	ActionBuy     Action = "BUY"
	ActionSell    Action = "SELL"
	ActionUnknown Action = "UNKNOWN"
)

// TradeRecord is one row of the final ledger.
type TradeRecord struct {
	Date       time.Time
	Symbol     string
	Instrument Instrument
	Action     Action
	Quantity   decimal.NullDecimal // invalid = source value did not parse
	NetCash    decimal.NullDecimal // proceeds + commission/fee; invalid propagates
	Strike     decimal.Decimal     // zero for non-options
	Expiry     *time.Time          // nil for non-options
}
