package repositories

import (
	"strings"
	"testing"
)

func TestDateTruncPlaceholdersMatchArgs(t *testing.T) {
	cases := []struct {
		name     string
		interval string
		tz       string
	}{
		{"no timezone", "day", ""},
		{"with timezone", "week", "Europe/Lisbon"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expr, args := dateTrunc(tc.interval, tc.tz, "date")

			if got, want := strings.Count(expr, "?"), len(args); got != want {
				t.Errorf("expr has %d placeholders but %d args: %s", got, want, expr)
			}
			if args[0] != tc.interval {
				t.Errorf("first arg = %v, want interval %q", args[0], tc.interval)
			}
			if tc.tz != "" {
				if !strings.Contains(expr, "timezone(") {
					t.Error("timezone conversion missing from expression")
				}
				if args[1] != tc.tz {
					t.Errorf("second arg = %v, want tz %q", args[1], tc.tz)
				}
			}
		})
	}
}
