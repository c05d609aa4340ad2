package keyboards

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"planning-bot/internal/app/service"
	"planning-bot/internal/domain"

	"gopkg.in/telebot.v3"
)

const (
	ActionToggle   = "tg"
	ActionDay      = "gd"
	ActionEmployee = "ge"

	slotsPerRow = 3
)

var dayShort = [...]string{"Lu", "Ma", "Me", "Je", "Ve", "Sa", "Di"}

// GridView is what one grid screen shows: one day of one employee.
type GridView struct {
	Shop        string
	Week        domain.WeekKey
	Day         domain.Day
	Employees   []string
	EmployeeIdx int
	Planning    domain.Planning
	Deriver     service.Deriver
}

// ToggleRef is the cell a grid button points at, as drawn: the week, the
// day and slot indexes, the employee index and a tag of the employee name.
type ToggleRef struct {
	Week     domain.WeekKey
	Day      int
	Slot     int
	Employee int
	Tag      string
}

// EmployeeTag is a short digest of an employee name, enough to notice
// that the list changed since a grid was drawn.
func EmployeeTag(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return strconv.FormatUint(uint64(h.Sum32()), 36)
}

// TogglePayload encodes a cell as week|day|slot|employee|tag so the
// callback stays within Telegram's 64 byte limit.
func TogglePayload(week domain.WeekKey, day, slot, employeeIdx int, employee string) string {
	return fmt.Sprintf("%s|%d|%d|%d|%s", week, day, slot, employeeIdx, EmployeeTag(employee))
}

func ParseToggle(payload string) (ToggleRef, bool) {
	parts := strings.Split(payload, "|")
	if len(parts) != 5 {
		return ToggleRef{}, false
	}
	week, err := domain.ParseWeekKey(parts[0])
	if err != nil {
		return ToggleRef{}, false
	}
	ref := ToggleRef{Week: week, Tag: parts[4]}
	for i, dst := range []*int{&ref.Day, &ref.Slot, &ref.Employee} {
		v, err := strconv.Atoi(parts[i+1])
		if err != nil {
			return ToggleRef{}, false
		}
		*dst = v
	}
	return ref, true
}

func BuildGridKeyboard(v GridView) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	if len(v.Employees) == 0 {
		return "Aucun employé pour " + v.Shop + ". Ajoutez-en avec /employee NOM.", markup
	}
	idx := v.EmployeeIdx
	if idx < 0 || idx >= len(v.Employees) {
		idx = 0
	}
	employee := v.Employees[idx]
	dayIdx := v.Day.Index()

	var rows []telebot.Row
	var row telebot.Row
	for i, s := range domain.Slots() {
		label := s.Start
		if v.Planning.IsActive(domain.Cell{Day: v.Day, Slot: s, Employee: employee}) {
			label = "✔ " + s.Start
		}
		row = append(row, markup.Data(label, ActionToggle, TogglePayload(v.Week, dayIdx, i, idx, employee)))
		if len(row) == slotsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	var days telebot.Row
	for i, short := range dayShort {
		if i == dayIdx {
			short = "•" + short
		}
		days = append(days, markup.Data(short, ActionDay, strconv.Itoa(i)+"|"+strconv.Itoa(idx)))
	}
	rows = append(rows, days)

	if len(v.Employees) > 1 {
		prev := (idx - 1 + len(v.Employees)) % len(v.Employees)
		next := (idx + 1) % len(v.Employees)
		rows = append(rows, markup.Row(
			markup.Data("◀ "+v.Employees[prev], ActionEmployee, strconv.Itoa(dayIdx)+"|"+strconv.Itoa(prev)),
			markup.Data(v.Employees[next]+" ▶", ActionEmployee, strconv.Itoa(dayIdx)+"|"+strconv.Itoa(next)),
		))
	}
	markup.Inline(rows...)

	title := fmt.Sprintf("%s, %s %s\n%s : %sh (semaine %sh) · total boutique %sh",
		v.Shop,
		v.Day,
		domain.FrenchDate(v.Week.Date(v.Day)),
		employee,
		service.FormatHours(v.Deriver.DailyHours(v.Planning, employee, v.Day)),
		service.FormatHours(v.Deriver.WeeklyHours(v.Planning, employee)),
		service.FormatHours(v.Deriver.TotalDailyHours(v.Planning, v.Employees, v.Day)),
	)
	return title, markup
}
