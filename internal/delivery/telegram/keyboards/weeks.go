package keyboards

import (
	"planning-bot/internal/domain"

	"gopkg.in/telebot.v3"
)

const maxWeekButtons = 12

// BuildWeeksKeyboard lists stored weeks, newest first, as buttons sending
// action with the week key.
func BuildWeeksKeyboard(title string, weeks []domain.WeekKey, action string) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	if len(weeks) == 0 {
		return title + "\nAucune semaine enregistrée.", markup
	}
	if len(weeks) > maxWeekButtons {
		weeks = weeks[:maxWeekButtons]
	}
	rows := make([]telebot.Row, 0, len(weeks))
	for _, w := range weeks {
		rows = append(rows, markup.Row(markup.Data("Semaine du "+domain.FrenchDate(w.Time()), action, string(w))))
	}
	markup.Inline(rows...)
	return title, markup
}
