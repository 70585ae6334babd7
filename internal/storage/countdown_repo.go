package storage

import (
	"database/sql"

	"github.com/espian/ticktock/internal/errors"
	"github.com/espian/ticktock/internal/logging"
	"github.com/espian/ticktock/internal/model"
)

// Filter selects which countdown rows an operation applies to: either every
// row, or the single row with a matching id.
type Filter struct {
	byID bool
	id   int64
}

// All matches every row.
func All() Filter {
	return Filter{}
}

// ByID matches the row with the given id.
func ByID(id int64) Filter {
	return Filter{byID: true, id: id}
}

// where returns the WHERE clause and arguments for the filter.
func (f Filter) where() (string, []any) {
	if f.byID {
		return " WHERE id = ?", []any{f.id}
	}
	return "", nil
}

// CountdownRepo handles persistence of countdown rows.
//
// "Not found" is never an error here: mutations report how many rows they
// touched and callers decide what a zero means. Only storage engine faults
// come back as errors.
type CountdownRepo struct {
	db *DB
}

// NewCountdownRepo creates a new countdown repository.
func NewCountdownRepo(db *DB) *CountdownRepo {
	return &CountdownRepo{db: db}
}

// Create inserts a new countdown and returns its assigned id.
// No validation happens here; empty labels are the caller's problem.
func (r *CountdownRepo) Create(label, date string) (int64, error) {
	res, err := r.db.db.Exec(
		"INSERT INTO countdowns (label, date) VALUES (?, ?)", label, date)
	if err != nil {
		return 0, errors.NewSystemErrorWithOp("create", "insert failed", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.NewSystemErrorWithOp("create", "cannot read new id", err)
	}

	logging.Debug("countdown created",
		logging.KeyOperation, "create",
		logging.KeyCountdownID, id,
		logging.KeyLabel, label)
	return id, nil
}

// Query returns the countdowns matching the filter in storage-native order.
// The returned slice is a snapshot: it does not track later mutations.
func (r *CountdownRepo) Query(f Filter) ([]model.Countdown, error) {
	clause, args := f.where()
	rows, err := r.db.db.Query("SELECT id, label, date, notify FROM countdowns"+clause, args...)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("query", "select failed", err)
	}
	defer rows.Close()

	var out []model.Countdown
	for rows.Next() {
		var c model.Countdown
		var label, date, notify sql.NullString
		if err := rows.Scan(&c.ID, &label, &date, &notify); err != nil {
			return nil, errors.NewSystemErrorWithOp("query", "scan failed", err)
		}
		c.Label = label.String
		c.Date = date.String
		c.Notify = notify.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewSystemErrorWithOp("query", "row iteration failed", err)
	}

	logging.Debug("countdowns queried",
		logging.KeyOperation, "query",
		logging.KeyCount, len(out))
	return out, nil
}

// Update rewrites the label and date of matching rows and returns how many
// rows changed. Zero means no matching row, not a failure.
func (r *CountdownRepo) Update(id int64, label, date string) (int64, error) {
	res, err := r.db.db.Exec(
		"UPDATE countdowns SET label = ?, date = ? WHERE id = ?", label, date, id)
	if err != nil {
		return 0, errors.NewSystemErrorWithOp("update", "update failed", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.NewSystemErrorWithOp("update", "cannot read affected rows", err)
	}

	logging.Debug("countdown updated",
		logging.KeyOperation, "update",
		logging.KeyCountdownID, id,
		logging.KeyCount, n)
	return n, nil
}

// Delete removes matching rows and returns how many were removed.
// Zero means no matching row, not a failure.
func (r *CountdownRepo) Delete(id int64) (int64, error) {
	res, err := r.db.db.Exec("DELETE FROM countdowns WHERE id = ?", id)
	if err != nil {
		return 0, errors.NewSystemErrorWithOp("delete", "delete failed", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.NewSystemErrorWithOp("delete", "cannot read affected rows", err)
	}

	logging.Debug("countdown deleted",
		logging.KeyOperation, "delete",
		logging.KeyCountdownID, id,
		logging.KeyCount, n)
	return n, nil
}

// Get returns a single countdown by id. It is a convenience over Query for
// callers that want the not-found condition as a sentinel error.
func (r *CountdownRepo) Get(id int64) (model.Countdown, error) {
	matches, err := r.Query(ByID(id))
	if err != nil {
		return model.Countdown{}, err
	}
	if len(matches) == 0 {
		return model.Countdown{}, errors.ErrNotFound
	}
	return matches[0], nil
}
