package etfnav

import (
	"errors"
	"fmt"
)

var (
	// ErrNumber is returned when a numeric field cannot be parsed.
	ErrNumber = errors.New("invalid number")

	// ErrInsufficientData reports that the last price or the implied shares
	// outstanding are unknown, so no NAV per share can be derived.
	ErrInsufficientData = errors.New("insufficient data to calculate NAV discrepancy")

	// ErrNoHoldings is returned when the source yields no usable holding.
	ErrNoHoldings = errors.New("no holdings found")
)

// StructureError reports that the holdings table could not be located in the
// payload returned by the fund source.
type StructureError struct {
	Path string // where the table was expected
	Err  error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("holdings table not found at %s: %v", e.Path, e.Err)
}

func (e *StructureError) Unwrap() error { return e.Err }

// TransportError reports a failure at a network boundary. Collaborator names
// the remote service involved (e.g. "schwab" or "alpaca").
type TransportError struct {
	Collaborator string
	Op           string // what was attempted, e.g. "GET holdings page"
	Status       string // http status when a response was received
	Err          error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Collaborator, e.Op)
	if e.Status != "" {
		msg += ": " + e.Status
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransportError) Unwrap() error { return e.Err }
