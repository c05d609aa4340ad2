package flows

import (
	"time"

	"gopkg.in/telebot.v3"

	"planning-bot/internal/delivery/telegram/keyboards"
	"planning-bot/internal/delivery/telegram/router"
	"planning-bot/internal/domain"
)

const (
	ActionSwitchWeek = "sw"
	ActionCopyWeek   = "cw"
)

// SelectWeek makes week the week being edited and shows its grid.
func (e *Env) SelectWeek(c telebot.Context, week domain.WeekKey) error {
	s := e.Session(c)
	if s.Shop == "" {
		return Reply(c, "", ErrNeedShop)
	}
	s.SelectWeek(week)
	return e.ShowGrid(c, s)
}

// OnCalendarWeek adapts SelectWeek to the calendar picker.
func (e *Env) OnCalendarWeek(monday time.Time, c telebot.Context) error {
	return e.SelectWeek(c, domain.WeekOf(monday))
}

// ShowWeeks lists the stored weeks of the shop with action buttons.
func (e *Env) ShowWeeks(c telebot.Context, title, action string, excludeCurrent bool) error {
	s := e.Session(c)
	if s.Shop == "" {
		return Reply(c, "", ErrNeedShop)
	}
	var exclude domain.WeekKey
	if excludeCurrent {
		exclude = s.Week
	}
	weeks, err := e.Planning.ListAvailableWeeks(s.Shop, exclude)
	if err != nil {
		return Reply(c, "", err)
	}
	text, markup := keyboards.BuildWeeksKeyboard(title, weeks, action)
	return c.Send(text, markup)
}

// CopyWeek fills the chat clipboard with a stored week of the shop.
func (e *Env) CopyWeek(c telebot.Context, week domain.WeekKey) error {
	s := e.Session(c)
	if s.Shop == "" {
		return Reply(c, "", ErrNeedShop)
	}
	msg, err := e.Planning.CopyWeek(s.Clipboard, s.Shop, week)
	if err == nil {
		msg += "\nCollez-la avec /pasteweek."
	}
	return Reply(c, msg, err)
}

func RegisterWeeks(r *router.CallbackRouter, env *Env) {
	r.Register(ActionSwitchWeek, func(c telebot.Context, payload string) error {
		week, err := domain.ParseWeekKey(payload)
		if err != nil {
			return Reply(c, "", err)
		}
		return env.SelectWeek(c, week)
	})
	r.Register(ActionCopyWeek, func(c telebot.Context, payload string) error {
		week, err := domain.ParseWeekKey(payload)
		if err != nil {
			return Reply(c, "", err)
		}
		return env.CopyWeek(c, week)
	})
}
