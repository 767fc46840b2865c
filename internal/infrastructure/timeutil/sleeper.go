package timeutil

import (
	"context"
	"time"
)

// Sleeper abstracts the pipeline's deliberate pauses (inter-offer pacing,
// inter-route spacing) so tests run without real delays. All sleeps are
// context-aware: cancellation cuts the wait short.
type Sleeper interface {
	// Sleep waits for d or until the context is done, whichever is first.
	// It returns the context error when the wait was cut short.
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper performs actual timed waits.
type RealSleeper struct{}

// NewRealSleeper creates a new RealSleeper instance.
func NewRealSleeper() *RealSleeper {
	return &RealSleeper{}
}

// Sleep waits for d or context cancellation.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RecordingSleeper captures requested sleeps without waiting. Tests assert
// on the recorded durations to verify pacing behavior.
type RecordingSleeper struct {
	Slept []time.Duration
}

// NewRecordingSleeper creates an empty RecordingSleeper.
func NewRecordingSleeper() *RecordingSleeper {
	return &RecordingSleeper{}
}

// Sleep records the duration and returns immediately.
func (s *RecordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Slept = append(s.Slept, d)
	return nil
}

// Total returns the sum of all recorded sleep durations.
func (s *RecordingSleeper) Total() time.Duration {
	var total time.Duration
	for _, d := range s.Slept {
		total += d
	}
	return total
}

// Ensure interfaces are implemented.
var (
	_ Sleeper = (*RealSleeper)(nil)
	_ Sleeper = (*RecordingSleeper)(nil)
)
