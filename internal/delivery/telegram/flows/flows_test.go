package flows

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"planning-bot/internal/app/service"
	"planning-bot/internal/delivery/telegram/keyboards"
	"planning-bot/internal/domain"
)

func TestIsUserError(t *testing.T) {
	assert.True(t, IsUserError(ErrNeedShop))
	assert.True(t, IsUserError(fmt.Errorf("%w: %q", domain.ErrUnknownDay, "x")))
	assert.True(t, IsUserError(fmt.Errorf("%w (2025-06-23)", service.ErrEmptyWeek)))
	assert.False(t, IsUserError(errors.New("database is locked")))
}

func TestParseInts(t *testing.T) {
	v, ok := parseInts("1|29|3", 3)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 29, 3}, v)

	_, ok = parseInts("1|29", 3)
	assert.False(t, ok)
	_, ok = parseInts("1|x|3", 3)
	assert.False(t, ok)
}

func TestDayAt(t *testing.T) {
	d, ok := dayAt(4)
	assert.True(t, ok)
	assert.Equal(t, domain.Friday, d)
	_, ok = dayAt(7)
	assert.False(t, ok)
}

func TestToggleButtonMustMatchCurrentGrid(t *testing.T) {
	week := domain.WeekKey("2025-06-30")
	employees := []string{"ALICE", "BOB"}
	ref, ok := keyboards.ParseToggle(keyboards.TogglePayload(week, 0, 0, 1, "BOB"))
	assert.True(t, ok)

	assert.True(t, current(ref, week, employees))
	assert.False(t, current(ref, week.Next(), employees), "button from another week")
	assert.False(t, current(ref, week, []string{"BOB", "ALICE"}), "list reordered")
	assert.False(t, current(ref, week, []string{"ALICE"}), "employee removed")
}
