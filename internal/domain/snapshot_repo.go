package domain

import (
	"errors"
	"time"
)

var (
	ErrSnapshotNotFound = errors.New("aucun planning pour cette semaine")
	ErrCorruptSnapshot  = errors.New("planning enregistré illisible")
)

// Snapshot is the stored planning of one shop week.
type Snapshot struct {
	Shop      string
	Week      WeekKey
	Planning  Planning
	Revision  int64
	UpdatedAt time.Time
}

// RecordKey is the storage key of the browser version, kept for exports.
func RecordKey(shop string, week WeekKey) string {
	return "planning_" + shop + "_" + string(week)
}

// SnapshotRepo persists one planning per (shop, week).
//
// Read returns ErrSnapshotNotFound when nothing was saved and an error
// wrapping ErrCorruptSnapshot, together with the stored revision, when
// the payload cannot be decoded. Write replaces the stored planning and
// returns the snapshot with its new revision; Stale reports that the
// stored revision differed from snap.Revision and was overwritten.
type SnapshotRepo interface {
	Keys(shop string) ([]WeekKey, error)
	Read(shop string, week WeekKey) (Snapshot, error)
	Write(snap Snapshot) (WriteResult, error)
}

type WriteResult struct {
	Snapshot Snapshot
	Stale    bool
	Previous int64
}
