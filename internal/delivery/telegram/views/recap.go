package views

import (
	"fmt"
	"html"
	"strings"

	"planning-bot/internal/app/service"
	"planning-bot/internal/domain"
)

// Recaps are sent with telebot.ModeHTML; tables go in <pre> blocks so
// the columns line up.

const footer = "Klick Planning"

func header(shop string, week domain.WeekKey) string {
	return fmt.Sprintf("<b>Boutique : %s</b>\nSemaine : %s\n", html.EscapeString(shop), week.Range())
}

func pad(s string, n int) string {
	if r := []rune(s); len(r) < n {
		return s + strings.Repeat(" ", n-len(r))
	}
	return s
}

func summaryRow(b *strings.Builder, first string, width int, s domain.DailyShiftSummary) {
	fmt.Fprintf(b, "%s %-6s %-6s %-6s %-6s %s\n",
		pad(first, width), s.Arrival, s.BreakStart, s.BreakEnd, s.End, s.TotalHours)
}

// EmployeeRecap renders the week of one employee, one line per day.
func EmployeeRecap(shop string, week domain.WeekKey, employee string, schedule []domain.DailyShiftSummary, weekly float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Récapitulatif de %s (%s h)</b>\n", html.EscapeString(employee), service.FormatHours(weekly))
	b.WriteString(header(shop, week))
	b.WriteString("<pre>")
	fmt.Fprintf(&b, "%s %-6s %-6s %-6s %-6s %s\n", pad("Jour", 9), "Arr.", "Sortie", "Retour", "Fin", "Heures")
	for _, s := range schedule {
		summaryRow(&b, string(s.Day), 9, s)
	}
	b.WriteString("</pre>\n")
	b.WriteString(footer)
	return b.String()
}

// HoursTable renders weekly totals per employee.
func HoursTable(employees []string, p domain.Planning, d service.Deriver) string {
	var b strings.Builder
	b.WriteString("<pre>")
	width := 8
	for _, e := range employees {
		if n := len([]rune(e)); n > width {
			width = n
		}
	}
	for _, e := range employees {
		fmt.Fprintf(&b, "%s %6s h\n", pad(html.EscapeString(e), width), service.FormatHours(d.WeeklyHours(p, e)))
	}
	b.WriteString("</pre>")
	return b.String()
}

// ShopRecap renders weekly totals then one table per day.
func ShopRecap(shop string, week domain.WeekKey, employees []string, p domain.Planning, d service.Deriver, schedule []domain.DaySchedule) string {
	var b strings.Builder
	b.WriteString(header(shop, week))
	b.WriteString("Cumul horaire hebdomadaire :\n")
	b.WriteString(HoursTable(employees, p, d))
	b.WriteString("\n")
	width := 8
	for _, e := range employees {
		if n := len([]rune(e)); n > width {
			width = n
		}
	}
	for _, day := range schedule {
		fmt.Fprintf(&b, "<b>%s</b> (%s h)\n<pre>", day.Day, service.FormatHours(d.TotalDailyHours(p, employees, day.Day)))
		for _, s := range day.Employees {
			summaryRow(&b, html.EscapeString(s.Employee), width, s)
		}
		b.WriteString("</pre>\n")
	}
	b.WriteString(footer)
	return b.String()
}

// DayRecap renders the shop schedule of a single day.
func DayRecap(shop string, week domain.WeekKey, day domain.Day, summaries []domain.DailyShiftSummary) string {
	var b strings.Builder
	b.WriteString(header(shop, week))
	fmt.Fprintf(&b, "<b>%s %s</b>\n<pre>", day, domain.FrenchDate(week.Date(day)))
	for _, s := range summaries {
		summaryRow(&b, html.EscapeString(s.Employee), 10, s)
	}
	b.WriteString("</pre>")
	return b.String()
}
