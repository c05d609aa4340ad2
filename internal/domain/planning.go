package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Cell addresses one half-hour of one employee on one day.
type Cell struct {
	Day      Day
	Slot     Slot
	Employee string
}

func (c Cell) Valid() bool {
	return c.Day.Valid() && c.Slot.Index() >= 0 && strings.TrimSpace(c.Employee) != ""
}

// CompositeKey renders the cell as "{day}_{slot}_{employee}".
func (c Cell) CompositeKey() string {
	return string(c.Day) + "_" + c.Slot.Label() + "_" + c.Employee
}

var ErrBadCompositeKey = errors.New("clé de planning invalide")

// ParseCompositeKey is the inverse of Cell.CompositeKey. Day and slot
// labels never contain '_' so the employee keeps any underscores.
func ParseCompositeKey(key string) (Cell, error) {
	parts := strings.SplitN(key, "_", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCompositeKey, key)
	}
	day, err := ParseDay(parts[0])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCompositeKey, key)
	}
	slot, err := ParseSlot(parts[1])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCompositeKey, key)
	}
	return Cell{Day: day, Slot: slot, Employee: parts[2]}, nil
}

func cellLess(a, b Cell) bool {
	if a.Day != b.Day {
		return a.Day.Index() < b.Day.Index()
	}
	if a.Slot != b.Slot {
		return a.Slot.Index() < b.Slot.Index()
	}
	return a.Employee < b.Employee
}

// Planning is the set of active cells of one shop week. A cell that is
// not in the set is inactive; nothing is ever stored as false.
type Planning map[Cell]struct{}

func NewPlanning(cells ...Cell) Planning {
	p := make(Planning, len(cells))
	for _, c := range cells {
		p.Set(c)
	}
	return p
}

// Toggle flips c and reports whether it is now active.
func (p Planning) Toggle(c Cell) bool {
	if _, ok := p[c]; ok {
		delete(p, c)
		return false
	}
	p[c] = struct{}{}
	return true
}

func (p Planning) Set(c Cell) { p[c] = struct{}{} }

func (p Planning) Unset(c Cell) { delete(p, c) }

func (p Planning) IsActive(c Cell) bool {
	_, ok := p[c]
	return ok
}

func (p Planning) Len() int { return len(p) }

func (p Planning) Clear() {
	for c := range p {
		delete(p, c)
	}
}

func (p Planning) Clone() Planning {
	out := make(Planning, len(p))
	for c := range p {
		out[c] = struct{}{}
	}
	return out
}

// Merge adds every cell of other to p.
func (p Planning) Merge(other Planning) {
	for c := range other {
		p[c] = struct{}{}
	}
}

// Filter returns the cells of p accepted by keep.
func (p Planning) Filter(keep func(Cell) bool) Planning {
	out := make(Planning)
	for c := range p {
		if keep(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

func (p Planning) Equal(other Planning) bool {
	if len(p) != len(other) {
		return false
	}
	for c := range p {
		if _, ok := other[c]; !ok {
			return false
		}
	}
	return true
}

// Cells returns the active cells ordered by day, slot, then employee.
func (p Planning) Cells() []Cell {
	out := make([]Cell, 0, len(p))
	for c := range p {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return cellLess(out[i], out[j]) })
	return out
}

// Employees lists every employee with at least one active cell.
func (p Planning) Employees() []string {
	seen := make(map[string]struct{})
	for c := range p {
		seen[c.Employee] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON writes the nested day -> slot -> employees layout.
func (p Planning) MarshalJSON() ([]byte, error) {
	nested := make(map[string]map[string][]string)
	for _, c := range p.Cells() {
		bySlot, ok := nested[string(c.Day)]
		if !ok {
			bySlot = make(map[string][]string)
			nested[string(c.Day)] = bySlot
		}
		bySlot[c.Slot.Label()] = append(bySlot[c.Slot.Label()], c.Employee)
	}
	return json.Marshal(nested)
}

// UnmarshalJSON reads the nested layout and also the flat
// {"Lundi_9:00-9:30_ALICE": true} layout of the browser version. Unknown
// days and slots are skipped in either layout.
func (p *Planning) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Planning)
	for k, v := range raw {
		var flag bool
		if err := json.Unmarshal(v, &flag); err == nil {
			if !flag {
				continue
			}
			// Other grid variants of the browser app used slots this
			// grid does not have; those keys are dropped.
			if c, err := ParseCompositeKey(k); err == nil {
				out.Set(c)
			}
			continue
		}
		// Unknown days and slots are dropped here too.
		day, err := ParseDay(k)
		if err != nil {
			continue
		}
		var bySlot map[string][]string
		if err := json.Unmarshal(v, &bySlot); err != nil {
			return fmt.Errorf("jour %s: %w", day, err)
		}
		for label, employees := range bySlot {
			slot, err := ParseSlot(label)
			if err != nil {
				continue
			}
			for _, e := range employees {
				if strings.TrimSpace(e) == "" {
					continue
				}
				out.Set(Cell{Day: day, Slot: slot, Employee: e})
			}
		}
	}
	*p = out
	return nil
}

// LegacyMap renders p in the flat composite-key layout.
func (p Planning) LegacyMap() map[string]bool {
	out := make(map[string]bool, len(p))
	for c := range p {
		out[c.CompositeKey()] = true
	}
	return out
}
