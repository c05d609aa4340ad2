package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planning-bot/internal/domain"
	"planning-bot/internal/testutil"
)

func dayCells(p domain.Planning, employee string, day domain.Day) []domain.Slot {
	var out []domain.Slot
	for _, c := range p.Cells() {
		if c.Employee == employee && c.Day == day {
			out = append(out, c.Slot)
		}
	}
	return out
}

func TestCopyAllPasteDays(t *testing.T) {
	p := domain.NewPlanning()
	testutil.Span(t, p, "ALICE", domain.Monday, "9:00", "12:00")
	testutil.Span(t, p, "BOB", domain.Monday, "14:00", "18:00")
	before := p.Clone()

	cb := NewClipboard()
	msg, err := cb.CopyDay(p, domain.Monday)
	require.NoError(t, err)
	assert.Contains(t, msg, "Lundi")
	assert.Equal(t, p.Len(), cb.Buffered())

	out, msg, err := cb.PasteDays(p, []domain.Day{domain.Tuesday, domain.Wednesday}, "")
	require.NoError(t, err)
	assert.Equal(t, "Collé sur Mardi, Mercredi", msg)

	for _, e := range []string{"ALICE", "BOB"} {
		monday := dayCells(out, e, domain.Monday)
		assert.Equal(t, monday, dayCells(out, e, domain.Tuesday), e)
		assert.Equal(t, monday, dayCells(out, e, domain.Wednesday), e)
		assert.Equal(t, dayCells(before, e, domain.Monday), monday, e)
	}
	assert.True(t, p.Equal(before), "paste works on a copy")
	assert.Equal(t, before.Len(), cb.Buffered(), "buffer stays until consumed")
	cb.Consume()
	assert.Equal(t, 0, cb.Buffered())
}

func TestPasteKeepsUnaddressedCells(t *testing.T) {
	p := domain.NewPlanning()
	testutil.Span(t, p, "ALICE", domain.Monday, "9:00", "10:00")
	testutil.Span(t, p, "ALICE", domain.Tuesday, "20:00", "21:00")

	cb := NewClipboard()
	_, err := cb.CopyDay(p, domain.Monday)
	require.NoError(t, err)
	out, _, err := cb.PasteDays(p, []domain.Day{domain.Tuesday}, "")
	require.NoError(t, err)
	assert.Equal(t, 2.0, DailyHours(out, "ALICE", domain.Tuesday))
}

func TestCopyIndividual(t *testing.T) {
	p := domain.NewPlanning()
	testutil.Span(t, p, "ALICE", domain.Monday, "9:00", "12:00")
	testutil.Span(t, p, "BOB", domain.Monday, "14:00", "18:00")

	cb := NewClipboard()
	require.NoError(t, cb.SetMode(domain.Individual("alice")))
	_, err := cb.CopyDay(p, domain.Monday)
	require.NoError(t, err)
	assert.Equal(t, 6, cb.Buffered())

	// The target argument is ignored outside employee-to-employee mode.
	out, msg, err := cb.PasteDays(p, []domain.Day{domain.Friday}, "BOB")
	require.NoError(t, err)
	assert.Equal(t, "Collé sur Vendredi", msg)
	assert.Equal(t, 3.0, DailyHours(out, "ALICE", domain.Friday))
	assert.Equal(t, 0.0, DailyHours(out, "BOB", domain.Friday))
}

func TestCopyEmployeeToEmployee(t *testing.T) {
	p := domain.NewPlanning()
	testutil.Span(t, p, "ALICE", domain.Monday, "9:00", "12:00")

	cb := NewClipboard()
	require.NoError(t, cb.SetMode(domain.EmployeeToEmployee("ALICE", "")))
	_, err := cb.CopyDay(p, domain.Monday)
	require.NoError(t, err)

	_, _, err = cb.PasteDays(p, []domain.Day{domain.Monday}, "")
	assert.ErrorIs(t, err, ErrNoTargetEmployee)
	assert.Equal(t, 6, cb.Buffered(), "failed paste keeps the buffer")

	out, msg, err := cb.PasteDays(p, []domain.Day{domain.Monday, domain.Tuesday}, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Collé sur Lundi, Mardi pour BOB", msg)
	assert.Equal(t, dayCells(p, "ALICE", domain.Monday), dayCells(out, "BOB", domain.Monday))
	assert.Equal(t, dayCells(p, "ALICE", domain.Monday), dayCells(out, "BOB", domain.Tuesday))
	assert.Equal(t, 0.0, DailyHours(out, "ALICE", domain.Tuesday))
}

func TestEmployeeToEmployeeModeTarget(t *testing.T) {
	p := domain.NewPlanning()
	testutil.Span(t, p, "ALICE", domain.Monday, "9:00", "10:00")

	cb := NewClipboard()
	require.NoError(t, cb.SetMode(domain.EmployeeToEmployee("ALICE", "BOB")))
	_, err := cb.CopyDay(p, domain.Monday)
	require.NoError(t, err)
	out, _, err := cb.PasteDays(p, []domain.Day{domain.Sunday}, "")
	require.NoError(t, err)
	assert.Equal(t, 1.0, DailyHours(out, "BOB", domain.Sunday))
}

func TestSetModeRequiresSource(t *testing.T) {
	cb := NewClipboard()
	assert.ErrorIs(t, cb.SetMode(domain.Individual("  ")), ErrNoSourceEmployee)
	assert.Equal(t, domain.CopyAll, cb.Mode().Kind)
}

func TestCopyDayErrors(t *testing.T) {
	cb := NewClipboard()
	p := domain.NewPlanning()

	_, err := cb.CopyDay(p, "")
	assert.ErrorIs(t, err, ErrNoDay)
	_, err = cb.CopyDay(p, "Funday")
	assert.ErrorIs(t, err, domain.ErrUnknownDay)
	_, err = cb.CopyDay(p, domain.Monday)
	assert.ErrorIs(t, err, ErrNothingCopied)
}

func TestPasteErrorsLeavePlanningUntouched(t *testing.T) {
	p := domain.NewPlanning()
	testutil.Span(t, p, "ALICE", domain.Monday, "9:00", "10:00")

	cb := NewClipboard()
	out, _, err := cb.PasteDays(p, []domain.Day{domain.Tuesday}, "")
	assert.ErrorIs(t, err, ErrNothingToPaste)
	assert.True(t, out.Equal(p))

	_, err = cb.CopyDay(p, domain.Monday)
	require.NoError(t, err)
	out, _, err = cb.PasteDays(p, nil, "")
	assert.ErrorIs(t, err, ErrNoTargetDays)
	assert.True(t, out.Equal(p))

	_, _, err = cb.PasteDays(p, []domain.Day{"Funday"}, "")
	assert.ErrorIs(t, err, domain.ErrUnknownDay)
	assert.Equal(t, 2, cb.Buffered())
}

func TestCopyWeekEmpty(t *testing.T) {
	cb := NewClipboard()
	_, err := cb.CopyWeek(domain.NewPlanning(), testutil.Week)
	assert.ErrorIs(t, err, ErrEmptyWeek)
	assert.Equal(t, 0, cb.Buffered())

	_, err = cb.StageWeek()
	assert.ErrorIs(t, err, ErrNothingToPaste)
}

func TestWeekPasteNeedsToken(t *testing.T) {
	src := domain.NewPlanning()
	testutil.Span(t, src, "ALICE", domain.Monday, "9:00", "12:00")
	testutil.Span(t, src, "BOB", domain.Saturday, "15:00", "16:00")
	dst := domain.NewPlanning()
	testutil.Span(t, dst, "ALICE", domain.Monday, "20:00", "21:00")

	cb := NewClipboard()
	cb.newToken = func() string { return "tok" }
	_, err := cb.CopyWeek(src, "2025-06-23")
	require.NoError(t, err)
	assert.Equal(t, "semaine du 2025-06-23", cb.Source())

	_, _, err = cb.CommitWeek(dst, "tok")
	assert.ErrorIs(t, err, ErrNoStagedPaste, "commit without staging")

	token, err := cb.StageWeek()
	require.NoError(t, err)
	assert.True(t, cb.Staged())

	_, _, err = cb.CommitWeek(dst, "other")
	assert.ErrorIs(t, err, ErrNoStagedPaste)

	out, msg, err := cb.CommitWeek(dst, token)
	require.NoError(t, err)
	assert.Equal(t, "Semaine collée (8 créneaux)", msg)
	assert.Equal(t, 4.0, DailyHours(out, "ALICE", domain.Monday))
	assert.Equal(t, 1.0, DailyHours(out, "BOB", domain.Saturday))

	cb.Consume()
	assert.Equal(t, 0, cb.Buffered())
	assert.False(t, cb.Staged())
}

func TestCancelStaged(t *testing.T) {
	src := domain.NewPlanning()
	testutil.Span(t, src, "ALICE", domain.Monday, "9:00", "10:00")

	cb := NewClipboard()
	_, err := cb.CopyWeek(src, testutil.Week)
	require.NoError(t, err)
	token, err := cb.StageWeek()
	require.NoError(t, err)
	cb.CancelStaged()

	_, _, err = cb.CommitWeek(domain.NewPlanning(), token)
	assert.ErrorIs(t, err, ErrNoStagedPaste)
	assert.Equal(t, 2, cb.Buffered(), "cancel keeps the buffer")
}
