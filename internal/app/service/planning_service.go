package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"planning-bot/internal/domain"
)

var (
	ErrNoShop     = errors.New("aucune boutique sélectionnée")
	ErrNoEmployee = errors.New("aucun employé sélectionné")
)

// PlanningService is the planning store of every (shop, week) pair. Each
// mutation loads the stored planning, changes it and writes it back in
// full; callers serialise calls (see AsyncService).
type PlanningService struct {
	Repo    domain.SnapshotRepo
	Deriver Deriver
}

func NewPlanningService(repo domain.SnapshotRepo, deriver Deriver) *PlanningService {
	return &PlanningService{Repo: repo, Deriver: deriver}
}

func checkScope(shop string, week domain.WeekKey) error {
	if strings.TrimSpace(shop) == "" {
		return ErrNoShop
	}
	if _, err := domain.ParseWeekKey(string(week)); err != nil {
		return err
	}
	return nil
}

func checkCell(c domain.Cell) error {
	if !c.Day.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownDay, c.Day)
	}
	if c.Slot.Index() < 0 {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSlot, c.Slot.Label())
	}
	if strings.TrimSpace(c.Employee) == "" {
		return ErrNoEmployee
	}
	return nil
}

func scopeLog(shop string, week domain.WeekKey) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"shop": shop, "week": string(week)})
}

// Snapshot returns the stored week. A missing or unreadable week is an
// empty planning; only storage failures are errors.
func (s *PlanningService) Snapshot(shop string, week domain.WeekKey) (domain.Snapshot, error) {
	if err := checkScope(shop, week); err != nil {
		return domain.Snapshot{}, err
	}
	snap, err := s.Repo.Read(shop, week)
	switch {
	case err == nil:
		return snap, nil
	case errors.Is(err, domain.ErrSnapshotNotFound):
		return domain.Snapshot{Shop: shop, Week: week, Planning: domain.NewPlanning()}, nil
	case errors.Is(err, domain.ErrCorruptSnapshot):
		scopeLog(shop, week).WithError(err).Warn("unreadable planning, starting from an empty week")
		snap.Shop, snap.Week, snap.Planning = shop, week, domain.NewPlanning()
		return snap, nil
	default:
		return domain.Snapshot{}, fmt.Errorf("load planning %s: %w", domain.RecordKey(shop, week), err)
	}
}

func (s *PlanningService) Load(shop string, week domain.WeekKey) (domain.Planning, error) {
	snap, err := s.Snapshot(shop, week)
	if err != nil {
		return nil, err
	}
	return snap.Planning, nil
}

func (s *PlanningService) write(snap domain.Snapshot) error {
	res, err := s.Repo.Write(snap)
	if err != nil {
		return fmt.Errorf("save planning %s: %w", domain.RecordKey(snap.Shop, snap.Week), err)
	}
	if res.Stale {
		scopeLog(snap.Shop, snap.Week).
			WithFields(logrus.Fields{"expected_revision": snap.Revision, "overwritten_revision": res.Previous}).
			Warn("planning changed by another writer, last write wins")
	}
	return nil
}

// Save replaces the stored week with p.
func (s *PlanningService) Save(shop string, week domain.WeekKey, p domain.Planning) error {
	snap, err := s.Snapshot(shop, week)
	if err != nil {
		return err
	}
	snap.Planning = p
	return s.write(snap)
}

func (s *PlanningService) update(shop string, week domain.WeekKey, fn func(domain.Planning) (domain.Planning, error)) error {
	snap, err := s.Snapshot(shop, week)
	if err != nil {
		return err
	}
	next, err := fn(snap.Planning)
	if err != nil {
		return err
	}
	snap.Planning = next
	return s.write(snap)
}

// Toggle flips one cell, persists the week and returns the new state.
func (s *PlanningService) Toggle(shop string, week domain.WeekKey, day domain.Day, slot domain.Slot, employee string) (bool, error) {
	cell := domain.Cell{Day: day, Slot: slot, Employee: employee}
	if err := checkCell(cell); err != nil {
		return false, err
	}
	var active bool
	err := s.update(shop, week, func(p domain.Planning) (domain.Planning, error) {
		active = p.Toggle(cell)
		return p, nil
	})
	if err != nil {
		return false, err
	}
	scopeLog(shop, week).WithFields(logrus.Fields{"cell": cell.CompositeKey(), "active": active}).Debug("toggled")
	return active, nil
}

func (s *PlanningService) IsActive(shop string, week domain.WeekKey, day domain.Day, slot domain.Slot, employee string) (bool, error) {
	p, err := s.Load(shop, week)
	if err != nil {
		return false, err
	}
	return p.IsActive(domain.Cell{Day: day, Slot: slot, Employee: employee}), nil
}

// Clear empties the week. The snapshot row stays so the week remains
// listed among the available weeks.
func (s *PlanningService) Clear(shop string, week domain.WeekKey) error {
	return s.update(shop, week, func(domain.Planning) (domain.Planning, error) {
		return domain.NewPlanning(), nil
	})
}

func (s *PlanningService) CopyDay(cb *Clipboard, shop string, week domain.WeekKey, day domain.Day) (string, error) {
	p, err := s.Load(shop, week)
	if err != nil {
		return "", err
	}
	return cb.CopyDay(p, day)
}

// CopyWeek fills the clipboard with another stored week, read only.
func (s *PlanningService) CopyWeek(cb *Clipboard, shop string, week domain.WeekKey) (string, error) {
	p, err := s.Load(shop, week)
	if err != nil {
		return "", err
	}
	return cb.CopyWeek(p, week)
}

// PasteDays pastes the clipboard onto targets and saves the week. The
// clipboard is consumed only once the week is saved.
func (s *PlanningService) PasteDays(cb *Clipboard, shop string, week domain.WeekKey, targets []domain.Day, targetEmployee string) (string, error) {
	var msg string
	err := s.update(shop, week, func(p domain.Planning) (domain.Planning, error) {
		out, m, err := cb.PasteDays(p, targets, targetEmployee)
		msg = m
		return out, err
	})
	if err != nil {
		return "", err
	}
	cb.Consume()
	return msg, nil
}

func (s *PlanningService) CommitWeek(cb *Clipboard, shop string, week domain.WeekKey, token string) (string, error) {
	var msg string
	err := s.update(shop, week, func(p domain.Planning) (domain.Planning, error) {
		out, m, err := cb.CommitWeek(p, token)
		msg = m
		return out, err
	})
	if err != nil {
		return "", err
	}
	cb.Consume()
	return msg, nil
}

// ListAvailableWeeks returns the stored weeks of shop, newest first,
// without exclude.
func (s *PlanningService) ListAvailableWeeks(shop string, exclude domain.WeekKey) ([]domain.WeekKey, error) {
	if strings.TrimSpace(shop) == "" {
		return nil, ErrNoShop
	}
	keys, err := s.Repo.Keys(shop)
	if err != nil {
		return nil, err
	}
	out := keys[:0]
	for _, k := range keys {
		if k != exclude {
			out = append(out, k)
		}
	}
	return out, nil
}
