package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"planning-bot/internal/domain"
	"planning-bot/internal/model"
)

type SqliteSnapshotRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewSqliteSnapshotRepo(db *sql.DB) *SqliteSnapshotRepo {
	return &SqliteSnapshotRepo{db: db, now: time.Now}
}

func (r *SqliteSnapshotRepo) Keys(shop string) ([]domain.WeekKey, error) {
	rows, err := r.db.Query(
		`SELECT week_key FROM planning_snapshots WHERE shop = ? ORDER BY week_key DESC`,
		shop,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []domain.WeekKey
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		week, err := domain.ParseWeekKey(raw)
		if err != nil {
			continue
		}
		keys = append(keys, week)
	}
	return keys, rows.Err()
}

func (r *SqliteSnapshotRepo) Read(shop string, week domain.WeekKey) (domain.Snapshot, error) {
	rec, err := r.readRecord(r.db, shop, week)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap := domain.Snapshot{
		Shop:      rec.Shop,
		Week:      week,
		Revision:  rec.Revision,
		UpdatedAt: rec.UpdatedAt,
	}
	var p domain.Planning
	if err := json.Unmarshal([]byte(rec.Payload), &p); err != nil {
		snap.Planning = domain.NewPlanning()
		return snap, fmt.Errorf("%s: %w (%v)", rec.RecordKey, domain.ErrCorruptSnapshot, err)
	}
	if p == nil {
		p = domain.NewPlanning()
	}
	snap.Planning = p
	return snap, nil
}

type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func (r *SqliteSnapshotRepo) readRecord(q queryRower, shop string, week domain.WeekKey) (model.PlanningRecord, error) {
	var rec model.PlanningRecord
	var updated string
	err := q.QueryRow(
		`SELECT shop, week_key, record_key, payload, revision, updated_at FROM planning_snapshots WHERE shop = ? AND week_key = ?`,
		shop, string(week),
	).Scan(&rec.Shop, &rec.WeekKey, &rec.RecordKey, &rec.Payload, &rec.Revision, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return rec, err
	}
	rec.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return rec, nil
}

// Write stores snap.Planning as the whole planning of the week. The write
// always lands; a revision mismatch is reported through Stale.
func (r *SqliteSnapshotRepo) Write(snap domain.Snapshot) (domain.WriteResult, error) {
	base := snap.Revision
	p := snap.Planning
	if p == nil {
		p = domain.NewPlanning()
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return domain.WriteResult{}, err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return domain.WriteResult{}, err
	}
	defer tx.Rollback()

	var current int64
	rec, err := r.readRecord(tx, snap.Shop, snap.Week)
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		// first save of this week
	case err != nil:
		return domain.WriteResult{}, err
	default:
		current = rec.Revision
	}

	now := r.now().UTC()
	next := current + 1
	_, err = tx.Exec(
		`INSERT INTO planning_snapshots (shop, week_key, record_key, payload, revision, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (shop, week_key) DO UPDATE SET payload = excluded.payload, revision = excluded.revision, updated_at = excluded.updated_at`,
		snap.Shop,
		string(snap.Week),
		domain.RecordKey(snap.Shop, snap.Week),
		string(payload),
		next,
		now.Format(time.RFC3339),
	)
	if err != nil {
		return domain.WriteResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.WriteResult{}, err
	}

	snap.Planning = p
	snap.Revision = next
	snap.UpdatedAt = now.Truncate(time.Second)
	return domain.WriteResult{
		Snapshot: snap,
		Stale:    current != base,
		Previous: current,
	}, nil
}
