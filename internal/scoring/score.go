// Package scoring implements the frecency model used to rank visited directories.
package scoring

import (
	"math"
	"time"
)

const (
	// BaseScore is the score every entry starts from.
	BaseScore = 1.0
	// RecencyWeight is the contribution of a single recorded access.
	RecencyWeight = 0.1
	// MaxRecencyBonus is awarded for an access made today.
	MaxRecencyBonus = 10.0
	// RecencyWindowDays bounds the period in which the recency bonus applies.
	RecencyWindowDays = 30
	// WeeklyDecayRate is subtracted from the multiplier for every full week without access.
	WeeklyDecayRate = 0.05
)

const day = 24 * time.Hour

// Score is an immutable frecency value. The zero value is a valid score of 0.
type Score struct {
	value float64
}

// Default returns the score assigned to a freshly created record.
func Default() Score {
	return Score{value: BaseScore}
}

// FromRaw restores a score from its persisted representation.
func FromRaw(value float64) Score {
	return Score{value: value}
}

// Raw returns the persisted representation of the score.
func (s Score) Raw() float64 {
	return s.value
}

// Less reports whether s ranks below other.
func (s Score) Less(other Score) bool {
	return s.value < other.value
}

// DaysSince returns the number of whole days between lastAccessed (unix seconds)
// and now. Timestamps in the future yield 0.
func DaysSince(lastAccessed int64, now time.Time) int64 {
	elapsed := now.Sub(time.Unix(lastAccessed, 0))
	if elapsed <= 0 {
		return 0
	}
	return int64(elapsed / day)
}

// Recalculate derives a new score from the access statistics as seen at now.
// The previous score does not influence the result; it is kept as the receiver so
// updates read as a transition from one value to the next.
func (s Score) Recalculate(accessCount uint32, lastAccessed int64, now time.Time) Score {
	days := DaysSince(lastAccessed, now)

	bonus := 0.0
	if days < RecencyWindowDays {
		decay := float64(RecencyWindowDays-days) / float64(RecencyWindowDays)
		bonus = MaxRecencyBonus * decay * decay
	}

	base := BaseScore + float64(accessCount)*RecencyWeight
	total := (base + bonus) * weeklyMultiplier(days/7)

	return Score{value: math.Max(total, 0)}
}

// ApplyDecay ages the score by the given number of weeks without a fresh access.
func (s Score) ApplyDecay(weeks uint32) Score {
	return Score{value: math.Max(s.value*weeklyMultiplier(int64(weeks)), 0)}
}

func weeklyMultiplier(weeks int64) float64 {
	if weeks <= 0 {
		return 1
	}
	return math.Max(1-WeeklyDecayRate*float64(weeks), 0)
}
