package testutil

import (
	"testing"

	"planning-bot/internal/domain"
)

// Week is a Monday used across tests.
const Week = domain.WeekKey("2025-06-30")

// Span activates employee on day from the slot starting at from up to the
// slot ending at to, e.g. Span(p, "ALICE", domain.Monday, "9:00", "12:00").
func Span(t *testing.T, p domain.Planning, employee string, day domain.Day, from, to string) {
	t.Helper()
	start, err := domain.ClockMinutes(from)
	if err != nil {
		t.Fatalf("bad start %q: %v", from, err)
	}
	end, err := domain.ClockMinutes(to)
	if err != nil {
		t.Fatalf("bad end %q: %v", to, err)
	}
	n := 0
	for _, s := range domain.Slots() {
		if s.StartMinutes() >= start && s.EndMinutes() <= end {
			p.Set(domain.Cell{Day: day, Slot: s, Employee: employee})
			n++
		}
	}
	if n == 0 {
		t.Fatalf("span %s-%s covers no slot", from, to)
	}
}

// MustSlot resolves a slot label or fails the test.
func MustSlot(t *testing.T, label string) domain.Slot {
	t.Helper()
	s, err := domain.ParseSlot(label)
	if err != nil {
		t.Fatalf("%v", err)
	}
	return s
}
