package flows

import (
	"strconv"
	"strings"

	"gopkg.in/telebot.v3"

	"planning-bot/internal/delivery/telegram/keyboards"
	"planning-bot/internal/delivery/telegram/router"
	"planning-bot/internal/domain"
)

func parseInts(payload string, n int) ([]int, bool) {
	parts := strings.Split(payload, "|")
	if len(parts) != n {
		return nil, false
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func dayAt(i int) (domain.Day, bool) {
	days := domain.Days()
	if i < 0 || i >= len(days) {
		return "", false
	}
	return days[i], true
}

const staleGrid = "Cette grille n'est plus à jour, voici la grille actuelle."

// current reports whether ref was drawn for week and the employee list
// as it is now.
func current(ref keyboards.ToggleRef, week domain.WeekKey, employees []string) bool {
	if ref.Week != week || ref.Employee < 0 || ref.Employee >= len(employees) {
		return false
	}
	return keyboards.EmployeeTag(employees[ref.Employee]) == ref.Tag
}

// RegisterGrid wires the grid buttons: toggling a slot and moving the
// cursor between days and employees.
func RegisterGrid(r *router.CallbackRouter, env *Env) {
	r.Register(keyboards.ActionToggle, func(c telebot.Context, payload string) error {
		s, err := env.Scope(c)
		if err != nil {
			return Reply(c, "", err)
		}
		ref, ok := keyboards.ParseToggle(payload)
		if !ok {
			return nil
		}
		day, ok := dayAt(ref.Day)
		if !ok {
			return nil
		}
		slot, ok := domain.SlotAt(ref.Slot)
		if !ok {
			return nil
		}
		employees, err := env.Shops.GetEmployees(s.Shop)
		if err != nil {
			return Reply(c, "", err)
		}
		if !current(ref, s.Week, employees) {
			if err := c.Send(staleGrid); err != nil {
				return err
			}
			return env.ShowGrid(c, s)
		}
		if _, err := env.Planning.Toggle(s.Shop, s.Week, day, slot, employees[ref.Employee]); err != nil {
			return Reply(c, "", err)
		}
		s.Day, s.EmployeeIdx = day, ref.Employee
		return env.ShowGrid(c, s)
	})

	move := func(c telebot.Context, payload string) error {
		s, err := env.Scope(c)
		if err != nil {
			return Reply(c, "", err)
		}
		idx, ok := parseInts(payload, 2)
		if !ok {
			return nil
		}
		if day, ok := dayAt(idx[0]); ok {
			s.Day = day
		}
		s.EmployeeIdx = idx[1]
		return env.ShowGrid(c, s)
	}
	r.Register(keyboards.ActionDay, move)
	r.Register(keyboards.ActionEmployee, move)
}
