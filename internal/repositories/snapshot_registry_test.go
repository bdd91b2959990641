package repositories

import (
	"testing"
)

func TestDefaultSnapshotRegistryShape(t *testing.T) {
	registry := DefaultSnapshotRegistry()

	seen := make(map[string]bool, len(registry))
	for _, table := range registry {
		if table.Name == "" {
			t.Error("registry entry with empty name")
		}
		if seen[table.Name] {
			t.Errorf("duplicate registry entry %q", table.Name)
		}
		seen[table.Name] = true
		if table.Collect == nil || table.Replay == nil {
			t.Errorf("entry %q missing collect or replay", table.Name)
		}
	}

	// Every user-owned domain table must be archived; losing one here
	// silently drops that data from delete/restore.
	want := []string{
		"artists", "musicians", "venues", "musician_venues",
		"musician_instruments", "shows", "locomotion_expenses",
		"subscriptions", "referral_codes",
		"referrals_as_referrer", "referrals_as_referred",
		"support_tickets", "support_responses",
	}
	for _, name := range want {
		if !seen[name] {
			t.Errorf("registry missing table %q", name)
		}
	}
	if len(registry) != len(want) {
		t.Errorf("registry has %d entries, want %d", len(registry), len(want))
	}
}
