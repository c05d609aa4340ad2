package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Day is one of the seven weekday labels of a planning week.
type Day string

const (
	Monday    Day = "Lundi"
	Tuesday   Day = "Mardi"
	Wednesday Day = "Mercredi"
	Thursday  Day = "Jeudi"
	Friday    Day = "Vendredi"
	Saturday  Day = "Samedi"
	Sunday    Day = "Dimanche"
)

var days = [...]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

const (
	// SlotMinutes is the width of one grid cell.
	SlotMinutes = 30
	// SlotHours is what one active cell contributes to hour totals.
	SlotHours = 0.5

	firstHour = 9
	lastHour  = 24
)

var (
	ErrUnknownDay  = errors.New("jour inconnu")
	ErrUnknownSlot = errors.New("créneau inconnu")
	ErrBadClock    = errors.New("heure invalide")
)

// Days returns the weekdays in canonical order, Monday first.
func Days() []Day {
	out := make([]Day, len(days))
	copy(out, days[:])
	return out
}

// Index returns the position of d in the week, or -1.
func (d Day) Index() int {
	for i, x := range days {
		if x == d {
			return i
		}
	}
	return -1
}

func (d Day) Valid() bool { return d.Index() >= 0 }

// ParseDay accepts a weekday label in any case.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	for _, d := range days {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// Slot is a half-hour interval labelled by its bounds, e.g. "9:00-9:30".
type Slot struct {
	Start string
	End   string
}

func (s Slot) Label() string { return s.Start + "-" + s.End }

func (s Slot) String() string { return s.Label() }

// StartMinutes returns the slot start as minutes since midnight.
func (s Slot) StartMinutes() int {
	m, _ := ClockMinutes(s.Start)
	return m
}

// EndMinutes returns the slot end as minutes since midnight.
func (s Slot) EndMinutes() int {
	m, _ := ClockMinutes(s.End)
	return m
}

// Index returns the position of s in the day grid, or -1.
func (s Slot) Index() int {
	for i, x := range slots {
		if x == s {
			return i
		}
	}
	return -1
}

var slots = buildSlots()

func buildSlots() []Slot {
	out := make([]Slot, 0, (lastHour-firstHour)*60/SlotMinutes)
	for h := firstHour; h < lastHour; h++ {
		out = append(out,
			Slot{Start: fmt.Sprintf("%d:00", h), End: fmt.Sprintf("%d:30", h)},
			Slot{Start: fmt.Sprintf("%d:30", h), End: fmt.Sprintf("%d:00", h+1)},
		)
	}
	return out
}

// Slots returns the 30 slots of a working day, 9:00 to 24:00, in order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// SlotAt returns the i-th slot of the day.
func SlotAt(i int) (Slot, bool) {
	if i < 0 || i >= len(slots) {
		return Slot{}, false
	}
	return slots[i], true
}

// ParseSlot resolves a "H:MM-H:MM" label to a grid slot.
func ParseSlot(label string) (Slot, error) {
	label = strings.TrimSpace(label)
	for _, s := range slots {
		if s.Label() == label {
			return s, nil
		}
	}
	return Slot{}, fmt.Errorf("%w: %q", ErrUnknownSlot, label)
}

func parseClock(s string) (h, m int, err error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	h, err = strconv.Atoi(hh)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	m, err = strconv.Atoi(mm)
	if err != nil || len(mm) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	return h, m, nil
}

// ClockValue encodes "HH:MM" as HH*100+MM. The result orders correctly
// but differences between two values are not durations.
func ClockValue(s string) (int, error) {
	h, m, err := parseClock(s)
	if err != nil {
		return 0, err
	}
	return h*100 + m, nil
}

// ClockMinutes converts "HH:MM" to minutes since midnight.
func ClockMinutes(s string) (int, error) {
	h, m, err := parseClock(s)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}
