// Package busy collects the time ranges the owner cannot be booked.
package busy

import (
	"context"
	"fmt"
	"time"

	"bookme/internal/availability"
)

// Source lists busy intervals overlapping [lower, upper).
type Source interface {
	ListBusy(ctx context.Context, lower, upper time.Time) ([]availability.BusyInterval, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, lower, upper time.Time) ([]availability.BusyInterval, error)

func (f SourceFunc) ListBusy(ctx context.Context, lower, upper time.Time) ([]availability.BusyInterval, error) {
	return f(ctx, lower, upper)
}

type merged struct {
	sources []Source
}

// Merge concatenates the intervals of every non-nil source. Any source error
// fails the whole call.
func Merge(sources ...Source) Source {
	m := merged{}
	for _, s := range sources {
		if s != nil {
			m.sources = append(m.sources, s)
		}
	}
	return m
}

func (m merged) ListBusy(ctx context.Context, lower, upper time.Time) ([]availability.BusyInterval, error) {
	var out []availability.BusyInterval
	for i, s := range m.sources {
		intervals, err := s.ListBusy(ctx, lower, upper)
		if err != nil {
			return nil, fmt.Errorf("busy source %d: %w", i, err)
		}
		out = append(out, intervals...)
	}
	return out, nil
}
