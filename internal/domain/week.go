package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const weekKeyLayout = "2006-01-02"

var (
	ErrInvalidWeek = errors.New("date de semaine invalide")
	ErrNotMonday   = errors.New("la semaine doit commencer un lundi")
)

// WeekKey is the ISO date of the Monday that opens a planning week.
type WeekKey string

// ParseWeekKey validates s as an ISO date falling on a Monday.
func ParseWeekKey(s string) (WeekKey, error) {
	t, err := time.Parse(weekKeyLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidWeek, s)
	}
	if t.Weekday() != time.Monday {
		return "", fmt.Errorf("%w: %s est un %s", ErrNotMonday, t.Format(weekKeyLayout), frenchWeekday(t.Weekday()))
	}
	return WeekKey(t.Format(weekKeyLayout)), nil
}

// WeekOf returns the key of the week containing t.
func WeekOf(t time.Time) WeekKey {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) + 6) % 7
	return WeekKey(t.AddDate(0, 0, -offset).Format(weekKeyLayout))
}

func (w WeekKey) String() string { return string(w) }

func (w WeekKey) Valid() bool {
	_, err := ParseWeekKey(string(w))
	return err == nil
}

// Time returns the Monday at midnight UTC. Zero for invalid keys.
func (w WeekKey) Time() time.Time {
	t, err := time.Parse(weekKeyLayout, string(w))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Date returns the calendar date of d within the week.
func (w WeekKey) Date(d Day) time.Time {
	return w.Time().AddDate(0, 0, d.Index())
}

func (w WeekKey) Prev() WeekKey { return WeekKey(w.Time().AddDate(0, 0, -7).Format(weekKeyLayout)) }

func (w WeekKey) Next() WeekKey { return WeekKey(w.Time().AddDate(0, 0, 7).Format(weekKeyLayout)) }

var frenchMonths = [...]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"}

func frenchWeekday(wd time.Weekday) string {
	return strings.ToLower(string(days[(int(wd)+6)%7]))
}

// FrenchDate renders t as "lundi 30 juin".
func FrenchDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s", frenchWeekday(t.Weekday()), t.Day(), frenchMonths[t.Month()-1])
}

// Range renders the week as "lundi 30 juin au dimanche 6 juillet".
func (w WeekKey) Range() string {
	start := w.Time()
	if start.IsZero() {
		return "Semaine non sélectionnée"
	}
	return FrenchDate(start) + " au " + FrenchDate(start.AddDate(0, 0, 6))
}
