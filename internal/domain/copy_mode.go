package domain

import "fmt"

type CopyModeKind int

const (
	CopyAll CopyModeKind = iota
	CopyIndividual
	CopyEmployeeToEmployee
)

// CopyMode selects which cells a day copy captures and how a paste
// re-keys them.
type CopyMode struct {
	Kind   CopyModeKind
	Source string
	Target string
}

func AllEmployees() CopyMode { return CopyMode{Kind: CopyAll} }

func Individual(employee string) CopyMode {
	return CopyMode{Kind: CopyIndividual, Source: employee}
}

func EmployeeToEmployee(source, target string) CopyMode {
	return CopyMode{Kind: CopyEmployeeToEmployee, Source: source, Target: target}
}

func (m CopyMode) String() string {
	switch m.Kind {
	case CopyIndividual:
		return "individuel"
	case CopyEmployeeToEmployee:
		return "employé vers employé"
	default:
		return "tous"
	}
}

// Describe adds the employees involved, for feedback messages.
func (m CopyMode) Describe() string {
	switch m.Kind {
	case CopyIndividual:
		return fmt.Sprintf("%s, %s", m, m.Source)
	case CopyEmployeeToEmployee:
		return fmt.Sprintf("%s, %s → %s", m, m.Source, m.Target)
	default:
		return m.String()
	}
}
