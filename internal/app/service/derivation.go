package service

import (
	"sort"
	"strconv"

	"planning-bot/internal/domain"
)

// DefaultBreakThreshold is the smallest gap, in minutes, between two
// active slots that counts as a break.
const DefaultBreakThreshold = 60

// Deriver computes hour totals and shift summaries from a planning.
// Every method is a pure function of its arguments.
type Deriver struct {
	BreakThreshold int
}

type DeriverOption func(*Deriver)

func WithBreakThreshold(minutes int) DeriverOption {
	return func(d *Deriver) {
		if minutes > 0 {
			d.BreakThreshold = minutes
		}
	}
}

func NewDeriver(opts ...DeriverOption) Deriver {
	d := Deriver{BreakThreshold: DefaultBreakThreshold}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

var defaultDeriver = NewDeriver()

// FormatHours renders hours with one decimal, "7.5".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64)
}

// activeSlots returns the active slots of employee on day, earliest first.
func activeSlots(p domain.Planning, employee string, day domain.Day) []domain.Slot {
	var out []domain.Slot
	for _, s := range domain.Slots() {
		if p.IsActive(domain.Cell{Day: day, Slot: s, Employee: employee}) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartMinutes() < out[j].StartMinutes() })
	return out
}

func (Deriver) DailyHours(p domain.Planning, employee string, day domain.Day) float64 {
	return float64(len(activeSlots(p, employee, day))) * domain.SlotHours
}

func (d Deriver) WeeklyHours(p domain.Planning, employee string) float64 {
	var total float64
	for _, day := range domain.Days() {
		total += d.DailyHours(p, employee, day)
	}
	return total
}

// TotalDailyHours sums DailyHours over employees.
func (d Deriver) TotalDailyHours(p domain.Planning, employees []string, day domain.Day) float64 {
	var total float64
	for _, e := range employees {
		total += d.DailyHours(p, e, day)
	}
	return total
}

func (d Deriver) DailySummary(p domain.Planning, employee string, day domain.Day) domain.DailyShiftSummary {
	slots := activeSlots(p, employee, day)
	sum := domain.DailyShiftSummary{Employee: employee, Day: day}
	if len(slots) == 0 {
		sum.Arrival = domain.RestLabel
		sum.BreakStart = domain.EmptyLabel
		sum.BreakEnd = domain.EmptyLabel
		sum.End = domain.EmptyLabel
		sum.TotalHours = FormatHours(0)
		return sum
	}

	sum.Arrival = slots[0].Start
	sum.End = slots[len(slots)-1].End
	sum.BreakStart = sum.End
	sum.BreakEnd = domain.EmptyLabel
	// Only the first gap long enough is a break.
	for i := 0; i+1 < len(slots); i++ {
		if slots[i+1].StartMinutes()-slots[i].EndMinutes() >= d.BreakThreshold {
			sum.BreakStart = slots[i].End
			sum.BreakEnd = slots[i+1].Start
			break
		}
	}
	sum.Hours = float64(len(slots)) * domain.SlotHours
	sum.TotalHours = FormatHours(sum.Hours)
	return sum
}

// WeeklySchedule returns one summary per day, Monday first.
func (d Deriver) WeeklySchedule(p domain.Planning, employee string) []domain.DailyShiftSummary {
	out := make([]domain.DailyShiftSummary, 0, 7)
	for _, day := range domain.Days() {
		out = append(out, d.DailySummary(p, employee, day))
	}
	return out
}

// ShopDailySchedule returns the summaries of day in employees order.
func (d Deriver) ShopDailySchedule(p domain.Planning, employees []string, day domain.Day) []domain.DailyShiftSummary {
	out := make([]domain.DailyShiftSummary, 0, len(employees))
	for _, e := range employees {
		out = append(out, d.DailySummary(p, e, day))
	}
	return out
}

func (d Deriver) ShopWeeklySchedule(p domain.Planning, employees []string) []domain.DaySchedule {
	out := make([]domain.DaySchedule, 0, 7)
	for _, day := range domain.Days() {
		out = append(out, domain.DaySchedule{Day: day, Employees: d.ShopDailySchedule(p, employees, day)})
	}
	return out
}

func DailyHours(p domain.Planning, employee string, day domain.Day) float64 {
	return defaultDeriver.DailyHours(p, employee, day)
}

func WeeklyHours(p domain.Planning, employee string) float64 {
	return defaultDeriver.WeeklyHours(p, employee)
}

func DailySummary(p domain.Planning, employee string, day domain.Day) domain.DailyShiftSummary {
	return defaultDeriver.DailySummary(p, employee, day)
}

func ShopDailySchedule(p domain.Planning, employees []string, day domain.Day) []domain.DailyShiftSummary {
	return defaultDeriver.ShopDailySchedule(p, employees, day)
}
