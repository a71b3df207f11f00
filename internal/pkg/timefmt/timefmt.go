package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the wire format for all booking times. The office runs in a
// single timezone, so values are exchanged as naive local instants with
// minute resolution and never converted to UTC.
const Layout = "2006-01-02T15:04"

func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected %s", s, Layout)
	}
	return t, nil
}

// LocalTime is a time.Time that marshals as the naive local Layout above.
// Used in DTOs so handlers never deal with RFC3339 offsets.
type LocalTime struct {
	time.Time
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(Layout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
