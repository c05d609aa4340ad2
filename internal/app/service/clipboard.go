package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"planning-bot/internal/domain"
)

var (
	ErrNoDay            = errors.New("aucun jour sélectionné")
	ErrNoSourceEmployee = errors.New("choisissez un employé source")
	ErrNoTargetEmployee = errors.New("choisissez un employé cible")
	ErrNothingCopied    = errors.New("aucun créneau à copier")
	ErrEmptyWeek        = errors.New("aucun planning pour cette semaine")
	ErrNothingToPaste   = errors.New("rien à coller")
	ErrNoTargetDays     = errors.New("aucun jour cible")
	ErrNoStagedPaste    = errors.New("aucun collage en attente de confirmation")
)

// Clipboard holds what was copied in one chat until it is pasted. The
// buffer is single use: once a paste is saved the caller Consumes it.
type Clipboard struct {
	mode     domain.CopyMode
	buffer   domain.Planning
	source   string
	staged   string
	newToken func() string
}

func NewClipboard() *Clipboard {
	return &Clipboard{mode: domain.AllEmployees(), newToken: uuid.NewString}
}

func (c *Clipboard) Mode() domain.CopyMode { return c.mode }

// SetMode changes how the next copy filters and the next paste re-keys.
// The buffer is kept.
func (c *Clipboard) SetMode(m domain.CopyMode) error {
	m.Source = domain.NormalizeName(m.Source)
	m.Target = domain.NormalizeName(m.Target)
	if m.Kind != domain.CopyAll && m.Source == "" {
		return ErrNoSourceEmployee
	}
	c.mode = m
	return nil
}

// Buffered returns the number of cells waiting to be pasted.
func (c *Clipboard) Buffered() int { return c.buffer.Len() }

// Source describes where the buffer came from, for the UI.
func (c *Clipboard) Source() string { return c.source }

func (c *Clipboard) Reset() {
	c.buffer = nil
	c.source = ""
	c.staged = ""
}

// Consume empties the buffer after its paste was persisted.
func (c *Clipboard) Consume() { c.Reset() }

// CopyDay captures the cells of day, restricted to the source employee
// unless the mode is CopyAll. Cells keep their original addressing.
func (c *Clipboard) CopyDay(p domain.Planning, day domain.Day) (string, error) {
	if day == "" {
		return "", ErrNoDay
	}
	if !day.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownDay, day)
	}
	if c.mode.Kind != domain.CopyAll && c.mode.Source == "" {
		return "", ErrNoSourceEmployee
	}
	mode := c.mode
	buf := p.Filter(func(cell domain.Cell) bool {
		if cell.Day != day {
			return false
		}
		return mode.Kind == domain.CopyAll || cell.Employee == mode.Source
	})
	c.staged = ""
	if buf.Len() == 0 {
		c.buffer = nil
		c.source = ""
		return "", ErrNothingCopied
	}
	c.buffer = buf
	c.source = string(day)
	return fmt.Sprintf("Copié pour %s (%s)", day, mode.Describe()), nil
}

// CopyWeek captures a whole stored week, unfiltered.
func (c *Clipboard) CopyWeek(p domain.Planning, week domain.WeekKey) (string, error) {
	c.staged = ""
	if p.Len() == 0 {
		c.buffer = nil
		c.source = ""
		return "", fmt.Errorf("%w (%s)", ErrEmptyWeek, week)
	}
	c.buffer = p.Clone()
	c.source = "semaine du " + string(week)
	return fmt.Sprintf("Semaine du %s copiée (%d créneaux)", week, p.Len()), nil
}

// PasteDays re-keys every buffered cell onto each target day and, in
// employee-to-employee mode, onto the target employee, then unions the
// result with a copy of p. Cells of p that are not addressed stay as
// they are. On error p is returned untouched. The buffer is kept until
// Consume.
func (c *Clipboard) PasteDays(p domain.Planning, targets []domain.Day, targetEmployee string) (domain.Planning, string, error) {
	if c.buffer.Len() == 0 {
		return p, "", ErrNothingToPaste
	}
	if len(targets) == 0 {
		return p, "", ErrNoTargetDays
	}
	for _, d := range targets {
		if !d.Valid() {
			return p, "", fmt.Errorf("%w: %q", domain.ErrUnknownDay, d)
		}
	}
	target := ""
	if c.mode.Kind == domain.CopyEmployeeToEmployee {
		target = domain.NormalizeName(targetEmployee)
		if target == "" {
			target = c.mode.Target
		}
		if target == "" {
			return p, "", ErrNoTargetEmployee
		}
	}

	out := p.Clone()
	for cell := range c.buffer {
		for _, d := range targets {
			moved := cell
			moved.Day = d
			if target != "" {
				moved.Employee = target
			}
			out.Set(moved)
		}
	}

	names := make([]string, len(targets))
	for i, d := range targets {
		names[i] = string(d)
	}
	msg := "Collé sur " + strings.Join(names, ", ")
	if target != "" {
		msg += " pour " + target
	}
	return out, msg, nil
}

// StageWeek prepares a whole-week paste and returns the token that
// CommitWeek expects.
func (c *Clipboard) StageWeek() (string, error) {
	if c.buffer.Len() == 0 {
		return "", ErrNothingToPaste
	}
	c.staged = c.newToken()
	return c.staged, nil
}

// Staged reports whether a whole-week paste waits for confirmation.
func (c *Clipboard) Staged() bool { return c.staged != "" }

func (c *Clipboard) CancelStaged() { c.staged = "" }

// CommitWeek unions the buffer into a copy of p with its addressing
// unchanged. token must come from the last StageWeek. The buffer is
// kept until Consume.
func (c *Clipboard) CommitWeek(p domain.Planning, token string) (domain.Planning, string, error) {
	if c.staged == "" || token != c.staged {
		return p, "", ErrNoStagedPaste
	}
	if c.buffer.Len() == 0 {
		c.staged = ""
		return p, "", ErrNothingToPaste
	}
	out := p.Clone()
	out.Merge(c.buffer)
	n := c.buffer.Len()
	return out, fmt.Sprintf("Semaine collée (%d créneaux)", n), nil
}
