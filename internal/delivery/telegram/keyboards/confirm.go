package keyboards

import "gopkg.in/telebot.v3"

// BuildConfirmKeyboard asks a yes/no question; "yes" sends action with
// payload, "no" sends action+"x".
func BuildConfirmKeyboard(action, payload string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	yes := markup.Data("✅ Confirmer", action, payload)
	no := markup.Data("✖ Annuler", action+"x")
	markup.Inline(markup.Row(yes, no))
	return markup
}
