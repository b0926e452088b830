package ranking

import (
	"math"
	"testing"
	"time"
)

func TestScoreBasic(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	createdAt := now.Add(-1 * time.Hour)

	got := Score(3, createdAt, now, 1.8)
	want := 3 / math.Pow(3, 1.8)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Score = %v, want %v", got, want)
	}
}

func TestScoreZeroLikes(t *testing.T) {
	now := time.Now()
	if got := Score(0, now.Add(-time.Hour), now, 1.8); got != 0 {
		t.Fatalf("Score with zero likes = %v, want 0", got)
	}
	if got := Score(-1, now.Add(-time.Hour), now, 1.8); got != 0 {
		t.Fatalf("Score with negative likes = %v, want 0", got)
	}
}

func TestScoreZeroCreatedAt(t *testing.T) {
	if got := Score(10, time.Time{}, time.Now(), 1.8); got != 0 {
		t.Fatalf("Score with zero createdAt = %v, want 0", got)
	}
}

func TestScoreFutureCreatedAtClamped(t *testing.T) {
	now := time.Now()
	got := Score(5, now.Add(time.Hour), now, 1.8)
	want := 5 / math.Pow(2, 1.8)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Score with future createdAt = %v, want %v", got, want)
	}
}

func TestScoreDecaysMonotonically(t *testing.T) {
	now := time.Now()
	prev := math.Inf(1)
	for _, age := range []time.Duration{0, time.Hour, 6 * time.Hour, 24 * time.Hour, 7 * 24 * time.Hour} {
		s := Score(100, now.Add(-age), now, 1.8)
		if s >= prev {
			t.Fatalf("score did not decay at age %v: %v >= %v", age, s, prev)
		}
		prev = s
	}
}

func TestScoreMoreLikesRankHigher(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-3 * time.Hour)
	if Score(10, createdAt, now, 1.8) <= Score(3, createdAt, now, 1.8) {
		t.Fatal("more likes at same age should score higher")
	}
}
