package flows

import (
	"gopkg.in/telebot.v3"

	"planning-bot/internal/delivery/telegram/keyboards"
	"planning-bot/internal/delivery/telegram/router"
)

const (
	ActionPasteWeek = "pw"
	ActionClear     = "clr"
)

// AskPasteWeek stages the clipboard for a whole-week paste and asks for
// confirmation.
func (e *Env) AskPasteWeek(c telebot.Context) error {
	s, err := e.Scope(c)
	if err != nil {
		return Reply(c, "", err)
	}
	token, err := s.Clipboard.StageWeek()
	if err != nil {
		return Reply(c, "", err)
	}
	text := "Coller " + s.Clipboard.Source() + " sur la semaine du " + string(s.Week) + " ?\n" +
		"Les créneaux existants sont conservés."
	return c.Send(text, keyboards.BuildConfirmKeyboard(ActionPasteWeek, token))
}

func (e *Env) AskClear(c telebot.Context) error {
	s, err := e.Scope(c)
	if err != nil {
		return Reply(c, "", err)
	}
	return c.Send("Voulez-vous vraiment réinitialiser tous les créneaux de la semaine du "+string(s.Week)+" ?",
		keyboards.BuildConfirmKeyboard(ActionClear, string(s.Week)))
}

func RegisterConfirmations(r *router.CallbackRouter, env *Env) {
	r.Register(ActionPasteWeek, func(c telebot.Context, token string) error {
		s, err := env.Scope(c)
		if err != nil {
			return Reply(c, "", err)
		}
		msg, err := env.Planning.CommitWeek(s.Clipboard, s.Shop, s.Week, token)
		return Reply(c, msg, err)
	})
	r.Register(ActionPasteWeek+"x", func(c telebot.Context, _ string) error {
		env.Session(c).Clipboard.CancelStaged()
		return Reply(c, "Collage annulé.", nil)
	})

	r.Register(ActionClear, func(c telebot.Context, week string) error {
		s, err := env.Scope(c)
		if err != nil {
			return Reply(c, "", err)
		}
		// The button belongs to the week shown when it was sent.
		if week != string(s.Week) {
			return Reply(c, "Cette confirmation concerne une autre semaine.", nil)
		}
		if err := env.Planning.Clear(s.Shop, s.Week); err != nil {
			return Reply(c, "", err)
		}
		s.Clipboard.Reset()
		return Reply(c, "Planning réinitialisé.", nil)
	})
	r.Register(ActionClear+"x", func(c telebot.Context, _ string) error {
		return Reply(c, "Réinitialisation annulée.", nil)
	})
}
