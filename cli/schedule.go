package cli

import (
	"context"
	"fmt"
	"log"
	"time"
)

// runScheduled runs a function at each tick until the context is canceled.
// The next tick is computed after a run has finished, so that runs never overlap.
func runScheduled(ctx context.Context, nextTickAfter func(time.Time) (time.Time, error), run func(context.Context) error) error {
	for {
		if ctx.Err() != nil {
			log.Println("schedule stopped")
			return nil
		}

		next, err := nextTickAfter(time.Now())
		if err != nil {
			return fmt.Errorf("failed to compute next tick: %v", err)
		}

		log.Printf("next run at %s", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("schedule stopped")
			return nil
		case <-timer.C:
		}

		if err := run(ctx); err != nil {
			return err
		}
	}
}
