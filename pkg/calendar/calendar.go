package calendar

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

const dateLayout = "2006-01-02"

var frMonths = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// CalendarController is an inline month view that only offers Mondays,
// the first day of a planning week.
type CalendarController struct {
	OnWeek func(monday time.Time, c telebot.Context) error
	Now    func() time.Time
}

// ShowCalendar sends or edits the picker for the current month.
func (cc *CalendarController) ShowCalendar(c telebot.Context) error {
	now := time.Now()
	if cc.Now != nil {
		now = cc.Now()
	}
	return SendCalendar(c, now.Year(), int(now.Month()))
}

// MondaysOf returns the Mondays of the month, in order.
func MondaysOf(year, month int) []time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(first.Weekday()) + 7) % 7
	var out []time.Time
	for d := first.AddDate(0, 0, offset); d.Month() == first.Month(); d = d.AddDate(0, 0, 7) {
		out = append(out, d)
	}
	return out
}

// Build returns the title and keyboard for the month.
func Build(year, month int) (string, *telebot.ReplyMarkup) {
	year, month = normalize(year, month)
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	for _, d := range MondaysOf(year, month) {
		btn := markup.Data("Lundi "+strconv.Itoa(d.Day()), "cal_week", d.Format(dateLayout))
		rows = append(rows, telebot.Row{btn})
	}
	prev := markup.Data("<", "cal_prev", strconv.Itoa(month-1)+"-"+strconv.Itoa(year))
	next := markup.Data(">", "cal_next", strconv.Itoa(month+1)+"-"+strconv.Itoa(year))
	rows = append(rows, telebot.Row{prev, next})
	markup.Inline(rows...)
	title := "Choisissez un lundi : " + frMonths[month-1] + " " + strconv.Itoa(year)
	return title, markup
}

// SendCalendar edits the picker in place when answering a callback.
func SendCalendar(c telebot.Context, year, month int) error {
	title, markup := Build(year, month)
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// HandleCallback serves the cal_* buttons produced by Build.
func (cc *CalendarController) HandleCallback(c telebot.Context) error {
	raw := strings.TrimPrefix(c.Data(), "\f")
	key, payload, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	switch key {
	case "cal_week":
		monday, err := time.Parse(dateLayout, payload)
		if err != nil || monday.Weekday() != time.Monday {
			return c.Send("Date invalide")
		}
		if cc.OnWeek != nil {
			return cc.OnWeek(monday, c)
		}
		return nil
	case "cal_prev", "cal_next":
		parts := SplitDateData(payload)
		if len(parts) != 2 {
			return c.Send("Mois invalide")
		}
		month, err1 := strconv.Atoi(parts[0])
		year, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return c.Send("Mois invalide")
		}
		year, month = normalize(year, month)
		return SendCalendar(c, year, month)
	}
	return nil
}

func normalize(year, month int) (int, int) {
	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}
	return year, month
}

// SplitDateData splits "M-YYYY" payloads.
func SplitDateData(data string) []string {
	return strings.Split(data, "-")
}
