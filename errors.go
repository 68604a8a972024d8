package physconst

import (
	"errors"
	"strconv"
)

var (
	// ErrOutOfPhysicalRange is wrapped by every [*RangeError].
	ErrOutOfPhysicalRange = errors.New("out of physical range")

	ErrUnknownUnit   = errors.New("unknown unit")
	ErrUnknownGroup  = errors.New("unknown group")
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// RangeError reports a temperature below absolute zero in the scale it
// was given in.
type RangeError struct {
	Value float64 // offending input
	Bound float64 // absolute zero in Unit
	Unit  Unit
}

func (e *RangeError) Error() string {
	return "temperature " + formatTemp(e.Value, e.Unit) +
		" is below absolute zero (" + formatTemp(e.Bound, e.Unit) + ")"
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfPhysicalRange
}

func formatTemp(v float64, u Unit) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + " " + u.String()
}

// ParseError is returned when a unit, group or symbol name is not recognized.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return e.Err.Error() + " " + strconv.Quote(e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func errUnknownSymbol(symbol string) error {
	return &ParseError{Input: symbol, Err: ErrUnknownSymbol}
}
