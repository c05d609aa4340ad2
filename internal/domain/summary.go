package domain

const (
	RestLabel  = "Repos"
	EmptyLabel = "-"
)

// DailyShiftSummary is derived from a Planning and never stored.
type DailyShiftSummary struct {
	Employee   string
	Day        Day
	Arrival    string
	BreakStart string
	BreakEnd   string
	End        string
	TotalHours string
	Hours      float64
}

// Resting reports a day without any active slot.
func (s DailyShiftSummary) Resting() bool { return s.Arrival == RestLabel }

// DaySchedule groups the summaries of every employee for one day.
type DaySchedule struct {
	Day       Day
	Employees []DailyShiftSummary
}
