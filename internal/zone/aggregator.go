package zone

import (
	"time"
)

// Aggregator evaluates a list of descriptors against one instant.
type Aggregator struct {
	calc *Calculator
}

// NewAggregator creates an Aggregator on top of calc.
func NewAggregator(calc *Calculator) *Aggregator {
	return &Aggregator{calc: calc}
}

// ListReadings computes one reading per descriptor, in input order, all at
// the same instant. The first zone that fails to resolve aborts the whole
// batch: no rows are returned alongside an error.
func (a *Aggregator) ListReadings(instant time.Time, localZone string, zones []Descriptor) ([]Row, error) {
	// Resolve the local zone once so a bad local id fails even for an empty board.
	if _, err := a.calc.resolver.Resolve(localZone); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(zones))
	for _, d := range zones {
		reading, err := a.calc.Compute(instant, d.TimeZone, localZone)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Title: d.Title, TimeZone: d.TimeZone, Reading: reading})
	}
	return rows, nil
}

// FilterResolvable splits zones into those whose ids resolve and those that
// do not, preserving order within each group. Callers that prefer to drop bad
// rows rather than fail the batch run this before ListReadings.
func (a *Aggregator) FilterResolvable(zones []Descriptor) (valid, invalid []Descriptor) {
	for _, d := range zones {
		if a.calc.resolver.Valid(d.TimeZone) {
			valid = append(valid, d)
		} else {
			invalid = append(invalid, d)
		}
	}
	return valid, invalid
}
