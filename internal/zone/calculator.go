package zone

import (
	"time"

	"github.com/mrz1836/worldclock/internal/clock"
)

// ComputeReading is the pure kernel behind Calculator.Compute.
//
// instant is "now" for the computation and today is the viewer's ambient
// current time; only its calendar date in local matters. The target clock
// face is taken from instant in target, then its civil fields are re-tagged
// as a local-zone time. That re-tagged instant drives both the hour offset
// and the day label.
func ComputeReading(instant, today time.Time, target, local *time.Location) Reading {
	targetWall := instant.In(target)
	reinterpreted := Reinterpret(targetWall, local)

	return Reading{
		FormattedTime: FormatClockFace(targetWall),
		Day:           dayLabelFor(civilDayDiff(reinterpreted, today.In(local))),
		HourOffset:    int(reinterpreted.Sub(instant) / time.Hour),
	}
}

// Reinterpret keeps t's clock-face fields (date, hour, minute, second,
// nanosecond) and rebuilds them under loc's offset rules. When t itself
// already shows that face in loc it is returned unchanged, which keeps a
// repeated hour in a DST overlap on the instant it came from. Faces that fall
// in a DST gap of loc are normalized by time.Date.
func Reinterpret(t time.Time, loc *time.Location) time.Time {
	if same := t.In(loc); sameFace(same, t) {
		return same
	}
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), loc)
}

// sameFace reports whether a and b show the same civil date and time.
func sameFace(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ah, ami, as := a.Clock()
	bh, bmi, bs := b.Clock()
	return ay == by && am == bm && ad == bd && ah == bh && ami == bmi && as == bs
}

// civilDayDiff returns the number of calendar days from b's date to a's date,
// each read in its own location.
func civilDayDiff(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(da.Sub(db).Hours() / 24)
}

// Calculator resolves zone ids and evaluates readings. It holds no state
// beyond the resolver cache and the ambient clock used for "today".
type Calculator struct {
	resolver *Resolver
	clock    clock.Clock
}

// NewCalculator creates a Calculator. A nil clock means the system clock.
func NewCalculator(resolver *Resolver, c clock.Clock) *Calculator {
	if resolver == nil {
		resolver = NewResolver()
	}
	if c == nil {
		c = clock.RealClock{}
	}
	return &Calculator{resolver: resolver, clock: c}
}

// Resolver returns the resolver the calculator uses.
func (c *Calculator) Resolver() *Resolver {
	return c.resolver
}

// Compute returns the reading of targetZone at instant relative to localZone.
// Both ids are resolved before anything is computed; the first one that does
// not resolve is reported as an *errors.InvalidTimeZoneError, target first.
func (c *Calculator) Compute(instant time.Time, targetZone, localZone string) (Reading, error) {
	target, err := c.resolver.Resolve(targetZone)
	if err != nil {
		return Reading{}, err
	}
	local, err := c.resolver.Resolve(localZone)
	if err != nil {
		return Reading{}, err
	}
	return ComputeReading(instant, c.clock.Now(), target, local), nil
}
