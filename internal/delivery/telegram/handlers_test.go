package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planning-bot/internal/app/service"
	"planning-bot/internal/domain"
)

func TestParseMode(t *testing.T) {
	m, err := parseMode("tous")
	require.NoError(t, err)
	assert.Equal(t, domain.CopyAll, m.Kind)

	m, err = parseMode("individuel  jean pierre")
	require.NoError(t, err)
	assert.Equal(t, domain.Individual("jean pierre"), m)

	m, err = parseMode("employe jean pierre > marie claire")
	require.NoError(t, err)
	assert.Equal(t, domain.EmployeeToEmployee("jean pierre", "marie claire"), m)

	m, err = parseMode("employé alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", m.Source)
	assert.Equal(t, "", m.Target, "target may come with the paste")

	_, err = parseMode("individuel")
	assert.ErrorIs(t, err, service.ErrNoSourceEmployee)
	_, err = parseMode("employe > bob")
	assert.ErrorIs(t, err, service.ErrNoSourceEmployee)
	_, err = parseMode("n'importe")
	assert.ErrorIs(t, err, errModeUsage)
}

func TestParsePasteArgs(t *testing.T) {
	tests := []struct {
		in     string
		days   []domain.Day
		target string
	}{
		{"Mardi", []domain.Day{domain.Tuesday}, ""},
		{"Mardi, Mercredi", []domain.Day{domain.Tuesday, domain.Wednesday}, ""},
		{"mardi,mercredi jeudi", []domain.Day{domain.Tuesday, domain.Wednesday, domain.Thursday}, ""},
		{"Mardi , Mercredi", []domain.Day{domain.Tuesday, domain.Wednesday}, ""},
		{"Mardi,Mercredi bob", []domain.Day{domain.Tuesday, domain.Wednesday}, "bob"},
		{"Mardi Mercredi jean pierre", []domain.Day{domain.Tuesday, domain.Wednesday}, "jean pierre"},
		{"", nil, ""},
	}
	for _, tt := range tests {
		days, target, err := parsePasteArgs(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.days, days, tt.in)
		assert.Equal(t, tt.target, target, tt.in)
	}

	for _, bad := range []string{"mardi,funday", "bob", "funday mardi"} {
		_, _, err := parsePasteArgs(bad)
		assert.ErrorIs(t, err, domain.ErrUnknownDay, bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-07-03")
	require.NoError(t, err)
	assert.Equal(t, domain.WeekKey("2025-06-30"), domain.WeekOf(d))

	d, err = parseDate("03/07/2025")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Day())

	_, err = parseDate("demain")
	assert.ErrorIs(t, err, domain.ErrInvalidWeek)
}
