package semester

import (
	"fmt"
	"regexp"
	"time"

	"appraisal/internal/errors"
)

var tokenPattern = regexp.MustCompile(`^\d{4}-[12]$`)

// Clock yields the current time. It is swapped out in tests.
type Clock func() time.Time

// For returns the semester token for t: months before July are term 1.
func For(t time.Time) string {
	term := 1
	if t.Month() >= time.July {
		term = 2
	}
	return fmt.Sprintf("%d-%d", t.Year(), term)
}

// Current returns the semester token for now according to clock.
func (c Clock) Current() string {
	if c == nil {
		return For(time.Now())
	}
	return For(c())
}

// Validate checks that token has the form YEAR-1 or YEAR-2.
func Validate(token string) error {
	if !tokenPattern.MatchString(token) {
		return fmt.Errorf("%w: %q", errors.ErrInvalidSemester, token)
	}
	return nil
}
