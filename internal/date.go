package internal

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day in UTC. Providers publish it either as ISO
// "2006-01-02" or, like NBU, as "02.01.2006".
type Date struct{ time.Time }

const (
	dateLayout    = "2006-01-02"
	dotDateLayout = "02.01.2006"
)

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(dotDateLayout, s)
		if err != nil {
			return Date{}, fmt.Errorf("parse date %q: %w", s, err)
		}
	}

	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := ParseDate(strings.Trim(string(b), "\""))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", d.Time.Format(dateLayout))), nil
}
