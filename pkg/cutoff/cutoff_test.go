package cutoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2026-01-05 as the anchor week: Tue 6th, Wed 7th, Fri 9th, Sat 10th,
// Sun 11th.
func at(day, hour, min int) time.Time {
	return time.Date(2026, time.January, day, hour, min, 0, 0, time.UTC)
}

func date(day int) time.Time {
	return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
}

func TestNextDayCategoryCutoff(t *testing.T) {
	p := Policy{AdvanceDays: 1, CutoffTime: "22:00"}

	tests := []struct {
		name   string
		now    time.Time
		target time.Time
		want   bool
	}{
		{"tomorrow before cutoff", at(5, 21, 59), date(6), true},
		{"tomorrow at cutoff exactly", at(5, 22, 0), date(6), true},
		{"tomorrow after cutoff", at(5, 22, 1), date(6), false},
		{"day after tomorrow late at night", at(5, 23, 45), date(7), true},
		{"today is never orderable", at(5, 10, 0), date(5), false},
		{"the past is never orderable", at(6, 10, 0), date(5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOrderingAllowed(p, tt.now, tt.target))
		})
	}
}

func TestSameDayCategoryCutoff(t *testing.T) {
	p := Policy{AdvanceDays: 0, CutoffTime: "09:30"}

	tests := []struct {
		name   string
		now    time.Time
		target time.Time
		want   bool
	}{
		{"today before cutoff", at(5, 9, 29), date(5), true},
		{"today at cutoff exactly", at(5, 9, 30), date(5), true},
		{"today after cutoff", at(5, 9, 31), date(5), false},
		{"tomorrow any time", at(5, 18, 0), date(6), true},
		{"yesterday", at(6, 8, 0), date(5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOrderingAllowed(p, tt.now, tt.target))
		})
	}
}

func TestWeekendTargetsNeverOrderable(t *testing.T) {
	policies := []Policy{
		{AdvanceDays: 0, CutoffTime: "09:30"},
		{AdvanceDays: 1, CutoffTime: "22:00"},
	}

	for _, p := range policies {
		// Friday the 9th and Saturday the 10th, well before any cutoff and
		// well within any advance window.
		assert.False(t, IsOrderingAllowed(p, at(8, 6, 0), date(9)), "friday, advance=%d", p.AdvanceDays)
		assert.False(t, IsOrderingAllowed(p, at(8, 6, 0), date(10)), "saturday, advance=%d", p.AdvanceDays)
	}
}

func TestWeekendRollOver(t *testing.T) {
	p := Policy{AdvanceDays: 1, CutoffTime: "22:00"}

	// Thursday evening ordering for Sunday: three days out, allowed even
	// though Friday and Saturday in between are not order days.
	assert.True(t, IsOrderingAllowed(p, at(8, 21, 0), date(11)))

	// Friday as "now" is fine as long as the target is a weekday two or more
	// days out.
	assert.True(t, IsOrderingAllowed(p, at(9, 12, 0), date(11)))
}

func TestMalformedCutoffFailsClosed(t *testing.T) {
	p := Policy{AdvanceDays: 0, CutoffTime: "25:99"}
	assert.False(t, IsOrderingAllowed(p, at(5, 9, 0), date(5)))

	_, err := parseClock("noon")
	assert.ErrorIs(t, err, ErrBadCutoffTime)
}

func TestOrderableDates(t *testing.T) {
	p := Policy{AdvanceDays: 1, CutoffTime: "22:00"}

	// Monday morning, 7-day horizon: Tue, Wed, Thu, Sun, Mon. No Mon (today),
	// no Fri/Sat.
	dates := OrderableDates(p, at(5, 9, 0), 7)
	require.Len(t, dates, 5)
	assert.Equal(t, date(6), dates[0])
	assert.Equal(t, date(7), dates[1])
	assert.Equal(t, date(8), dates[2])
	assert.Equal(t, date(11), dates[3])
	assert.Equal(t, date(12), dates[4])

	// After cutoff the same horizon loses tomorrow.
	dates = OrderableDates(p, at(5, 22, 30), 7)
	require.Len(t, dates, 4)
	assert.Equal(t, date(7), dates[0])
}
