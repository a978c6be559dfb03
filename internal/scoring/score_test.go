package scoring

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func daysAgo(days int) int64 {
	return testNow.Add(-time.Duration(days) * day).Unix()
}

func TestDefaultScore(t *testing.T) {
	if got := Default().Raw(); got != BaseScore {
		t.Fatalf("expected default %v, got %v", BaseScore, got)
	}
}

func TestRecalculateIncreasesWithAccessCount(t *testing.T) {
	last := testNow.Unix()
	prev := Default().Recalculate(0, last, testNow)
	for count := uint32(1); count <= 50; count++ {
		next := Default().Recalculate(count, last, testNow)
		if next.Less(prev) {
			t.Fatalf("score decreased from %v to %v at access count %d", prev.Raw(), next.Raw(), count)
		}
		prev = next
	}
}

func TestRecalculateDecreasesWithElapsedTime(t *testing.T) {
	prev := Default().Recalculate(5, daysAgo(0), testNow)
	for days := 1; days <= 200; days++ {
		next := Default().Recalculate(5, daysAgo(days), testNow)
		if prev.Less(next) {
			t.Fatalf("score increased from %v to %v at %d days", prev.Raw(), next.Raw(), days)
		}
		prev = next
	}
}

func TestRecalculateRecentBeatsSixtyDaysOld(t *testing.T) {
	recent := Default().Recalculate(5, testNow.Unix(), testNow)
	old := Default().Recalculate(5, daysAgo(60), testNow)
	if !old.Less(recent) {
		t.Fatalf("expected old %v < recent %v", old.Raw(), recent.Raw())
	}
}

func TestRecalculateValues(t *testing.T) {
	tests := []struct {
		name   string
		count  uint32
		days   int
		expect float64
	}{
		{name: "today", count: 0, days: 0, expect: 11.0},
		{name: "ten visits today", count: 10, days: 0, expect: 12.0},
		{name: "fifteen days", count: 0, days: 15, expect: (1.0 + 2.5) * 0.9},
		{name: "outside window", count: 10, days: 35, expect: 2.0 * 0.75},
		{name: "fully decayed", count: 10, days: 7 * 25, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Default().Recalculate(tt.count, daysAgo(tt.days), testNow).Raw()
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestRecalculateClampsFutureTimestamps(t *testing.T) {
	future := testNow.Add(72 * time.Hour).Unix()
	got := Default().Recalculate(3, future, testNow)
	want := Default().Recalculate(3, testNow.Unix(), testNow)
	if got != want {
		t.Fatalf("expected future access to score like today (%v), got %v", want.Raw(), got.Raw())
	}
	if DaysSince(future, testNow) != 0 {
		t.Fatalf("expected 0 days for future timestamp")
	}
}

func TestScoreNeverNegative(t *testing.T) {
	for _, days := range []int{0, 7, 140, 1000, 100000} {
		if s := Default().Recalculate(1, daysAgo(days), testNow); s.Raw() < 0 {
			t.Fatalf("negative score %v at %d days", s.Raw(), days)
		}
	}
	if s := FromRaw(4).ApplyDecay(1000); s.Raw() != 0 {
		t.Fatalf("expected decay floor at 0, got %v", s.Raw())
	}
}

func TestApplyDecay(t *testing.T) {
	s := FromRaw(10)
	if got := s.ApplyDecay(0).Raw(); got != 10 {
		t.Fatalf("expected no decay for 0 weeks, got %v", got)
	}
	if got := s.ApplyDecay(2).Raw(); math.Abs(got-9) > 1e-9 {
		t.Fatalf("expected 9 after two weeks, got %v", got)
	}
	if s.Raw() != 10 {
		t.Fatalf("ApplyDecay mutated the receiver")
	}
}

func TestRawRoundTrip(t *testing.T) {
	values := []float64{0, 1, 42.5, 1e-12, 123456.789, math.MaxFloat64}
	for _, v := range values {
		s := FromRaw(v)
		if FromRaw(s.Raw()) != s {
			t.Fatalf("round trip failed for %v", v)
		}
	}
}
