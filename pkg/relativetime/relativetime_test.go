package relativetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Format(t *testing.T) {

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"just now", now.Add(-30 * time.Second), "Vừa xong"},
		{"future timestamp clamps", now.Add(time.Minute), "Vừa xong"},
		{"minutes", now.Add(-59 * time.Minute), "59 phút trước"},
		{"hours", now.Add(-5 * time.Hour), "5 giờ trước"},
		{"one day", now.Add(-25 * time.Hour), "1 ngày trước"},
		{"days", now.Add(-6 * 24 * time.Hour), "6 ngày trước"},
		{"beyond a week is absolute", now.Add(-8 * 24 * time.Hour), "12/05/2024"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Format(c.at, now))
		})
	}
}
