package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planning-bot/internal/domain"
)

func TestStoreGet(t *testing.T) {
	st := NewStore()
	s := st.Get(1)
	require.NotNil(t, s.Clipboard)
	assert.Equal(t, domain.Monday, s.Day)
	assert.Same(t, s, st.Get(1))
	assert.NotSame(t, s, st.Get(2))
}

func TestSelectShopResetsWeek(t *testing.T) {
	s := NewStore().Get(1)
	s.SelectShop("NORD")
	s.SelectWeek("2025-06-30")
	s.EmployeeIdx = 3

	s.SelectShop("NORD")
	assert.Equal(t, domain.WeekKey("2025-06-30"), s.Week, "same shop keeps the week")

	s.SelectShop("SUD")
	assert.Equal(t, domain.WeekKey(""), s.Week)
	assert.Equal(t, 0, s.EmployeeIdx)
}

func TestEmployeeClampsCursor(t *testing.T) {
	s := NewStore().Get(1)
	_, ok := s.Employee(nil)
	assert.False(t, ok)

	s.EmployeeIdx = 5
	e, ok := s.Employee([]string{"ALICE", "BOB"})
	require.True(t, ok)
	assert.Equal(t, "ALICE", e)
	assert.Equal(t, 0, s.EmployeeIdx)

	s.EmployeeIdx = 1
	e, _ = s.Employee([]string{"ALICE", "BOB"})
	assert.Equal(t, "BOB", e)
}
