package utils

import (
	"testing"
	"time"
)

func TestNowUnixSeconds(t *testing.T) {
	got := NowUnixSeconds()
	now := time.Now().Unix()
	if got < now-2 || got > now+2 {
		t.Errorf("NowUnixSeconds = %d, wall clock = %d", got, now)
	}
}

func TestFromUnixSecondsZeroAndNegative(t *testing.T) {
	if !FromUnixSeconds(0).IsZero() {
		t.Error("0 did not map to the zero time")
	}
	if !FromUnixSeconds(-5).IsZero() {
		t.Error("negative epoch did not map to the zero time")
	}
}

func TestFormatRFC3339(t *testing.T) {
	if got := FormatRFC3339(time.Time{}); got != "" {
		t.Errorf("zero time rendered as %q, want empty", got)
	}
	epoch := int64(1760000000)
	got := FormatRFC3339(FromUnixSeconds(epoch))
	if got != "2025-10-09T08:53:20Z" {
		t.Errorf("rendered %q", got)
	}
}
