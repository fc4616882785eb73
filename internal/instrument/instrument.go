// Package instrument parses compact statement descriptions like
// "AMAT 05DEC25 220 C" into structured instrument fields.
package instrument

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/statledger-dev/statledger/internal/model"
)

// Descriptor is the structured form of a position description.
type Descriptor struct {
	Symbol     string
	Instrument model.Instrument
	Strike     decimal.Decimal // zero for non-options
	Expiry     *time.Time      // nil for non-options
}

// optionPattern matches "<TICKER> <DDMMMYY> <STRIKE> <C|P>" anchored at the
// start, single spaces between tokens, right indicator case-insensitive.
var optionPattern = regexp.MustCompile(`^([A-Z]+) (\d{2}[A-Z]{3}\d{2}) (\d+(?:\.\d+)?) ([CPcp])`)

// ParseDescriptor converts a description string into a Descriptor. It is
// total: anything not matching the option grammar is treated as a stock whose
// symbol is the text before the first space.
func ParseDescriptor(desc string) Descriptor {
	desc = strings.TrimSpace(desc)

	if m := optionPattern.FindStringSubmatch(desc); m != nil {
		expiry, err := parseExpiry(m[2])
		if err == nil {
			strike, err := decimal.NewFromString(m[3])
			if err == nil {
				kind := model.InstrumentCall
				if m[4] == "P" || m[4] == "p" {
					kind = model.InstrumentPut
				}
				return Descriptor{
					Symbol:     m[1],
					Instrument: kind,
					Strike:     strike,
					Expiry:     &expiry,
				}
			}
		}
	}

	symbol := desc
	if i := strings.IndexByte(desc, ' '); i >= 0 {
		symbol = desc[:i]
	}
	return Descriptor{
		Symbol:     symbol,
		Instrument: model.InstrumentStock,
		Strike:     decimal.Zero,
	}
}

// parseExpiry reads "05DEC25" as 2025-12-05. The month token arrives in upper
// case, which the time package will not match, so it is re-cased first.
func parseExpiry(raw string) (time.Time, error) {
	month := strings.ToUpper(raw[2:3]) + strings.ToLower(raw[3:5])
	return time.Parse("02Jan06", raw[:2]+month+raw[5:])
}
