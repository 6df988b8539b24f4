package cli

import (
	"fmt"
	"time"

	"github.com/adhocore/gronx"
)

// cronValue is a custom flag value for a CRON expression.
type cronValue string

func (v cronValue) IsZero() bool {
	return v == ""
}

func (v *cronValue) Set(s string) error {
	if s != "" && !gronx.IsValid(s) {
		return fmt.Errorf("invalid CRON expression %q", s)
	}

	*v = cronValue(s)
	return nil
}

func (v cronValue) String() string {
	return string(v)
}

func (v cronValue) Type() string {
	return "cron"
}

func (v cronValue) nextTickAfter(t time.Time) (time.Time, error) {
	return gronx.NextTickAfter(string(v), t, false)
}
