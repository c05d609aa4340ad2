package model

import "time"

// PlanningRecord is one row of the planning_snapshots table.
type PlanningRecord struct {
	Shop      string
	WeekKey   string
	RecordKey string
	Payload   string
	Revision  int64
	UpdatedAt time.Time
}

// EmployeeRecord is one row of the employees table.
type EmployeeRecord struct {
	ID       int
	Shop     string
	Name     string
	Position int
}
