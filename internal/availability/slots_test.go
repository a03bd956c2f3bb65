package availability_test

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"bookme/internal/availability"
)

func TestGenerateCandidateSlots(t *testing.T) {
	start := at(monday, 9, 0, time.UTC)

	t.Run("Count and spacing", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		for i := 0; i < 200; i++ {
			duration := availability.SupportedDurations[r.Intn(len(availability.SupportedDurations))]
			end := start.Add(time.Duration(1+r.Intn(24*60)) * time.Minute)

			got := slices.Collect(availability.GenerateCandidateSlots(start, end, duration))
			want := int(end.Sub(start) / duration)
			if len(got) != want {
				t.Fatalf("window %s, duration %s: expected %d slots, got %d", end.Sub(start), duration, want, len(got))
			}
			for j, s := range got {
				if !s.Equal(start.Add(time.Duration(j) * duration)) {
					t.Fatalf("slot %d: expected %v, got %v", j, start.Add(time.Duration(j)*duration), s)
				}
			}
		}
	})

	t.Run("Restartable", func(t *testing.T) {
		seq := availability.GenerateCandidateSlots(start, start.Add(2*time.Hour), 30*time.Minute)
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		if !slices.EqualFunc(first, second, time.Time.Equal) || len(first) != 4 {
			t.Errorf("expected two identical passes of 4 slots, got %v and %v", first, second)
		}
	})

	t.Run("Window shorter than duration", func(t *testing.T) {
		got := slices.Collect(availability.GenerateCandidateSlots(start, start.Add(20*time.Minute), 30*time.Minute))
		if len(got) != 0 {
			t.Errorf("expected no slots, got %v", got)
		}
	})

	t.Run("Early stop", func(t *testing.T) {
		n := 0
		for range availability.GenerateCandidateSlots(start, start.Add(8*time.Hour), 15*time.Minute) {
			n++
			if n == 3 {
				break
			}
		}
		if n != 3 {
			t.Errorf("expected to stop after 3, got %d", n)
		}
	})
}

func TestFilterAvailable(t *testing.T) {
	start := at(monday, 9, 0, time.UTC)
	end := at(monday, 17, 0, time.UTC)
	duration := 30 * time.Minute
	candidates := availability.GenerateCandidateSlots(start, end, duration)
	before := start.Add(-time.Hour)

	t.Run("Touching intervals do not overlap", func(t *testing.T) {
		s := at(monday, 10, 0, time.UTC)
		busy := []availability.BusyInterval{{Start: s.Add(30 * time.Minute), End: s.Add(60 * time.Minute)}}
		got := slices.Collect(availability.FilterAvailable(candidates, duration, busy, before))
		if !slices.ContainsFunc(got, s.Equal) {
			t.Errorf("slot ending where busy starts must be kept")
		}
		if !slices.ContainsFunc(got, s.Add(60*time.Minute).Equal) {
			t.Errorf("slot starting where busy ends must be kept")
		}
		if slices.ContainsFunc(got, s.Add(30*time.Minute).Equal) {
			t.Errorf("slot inside busy interval must be dropped")
		}
	})

	t.Run("Partial overlap drops slot", func(t *testing.T) {
		busy := []availability.BusyInterval{{Start: at(monday, 10, 15, time.UTC), End: at(monday, 10, 20, time.UTC)}}
		got := slices.Collect(availability.FilterAvailable(candidates, duration, busy, before))
		if slices.ContainsFunc(got, at(monday, 10, 0, time.UTC).Equal) {
			t.Errorf("10:00 overlaps 10:15-10:20 and must be dropped")
		}
		if len(got) != 15 {
			t.Errorf("expected 15 slots, got %d", len(got))
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		busy := []availability.BusyInterval{
			{Start: at(monday, 9, 45, time.UTC), End: at(monday, 11, 0, time.UTC)},
			{Start: at(monday, 14, 0, time.UTC), End: at(monday, 14, 10, time.UTC)},
		}
		once := slices.Collect(availability.FilterAvailable(candidates, duration, busy, before))
		twice := slices.Collect(availability.FilterAvailable(slices.Values(once), duration, busy, before))
		if !slices.EqualFunc(once, twice, time.Time.Equal) {
			t.Errorf("second pass changed result: %v vs %v", once, twice)
		}
	})

	t.Run("Past exclusion", func(t *testing.T) {
		for now := start.Add(-time.Hour); now.Before(end.Add(time.Hour)); now = now.Add(7 * time.Minute) {
			for _, s := range slices.Collect(availability.FilterAvailable(candidates, duration, nil, now)) {
				if !s.After(now) {
					t.Fatalf("now=%v: slot %v is not in the future", now, s)
				}
			}
		}
	})

	t.Run("Slot starting exactly now is dropped", func(t *testing.T) {
		got := slices.Collect(availability.FilterAvailable(candidates, duration, nil, start))
		if len(got) == 0 || got[0].Equal(start) {
			t.Errorf("expected first slot after %v, got %v", start, got)
		}
	})
}
