package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// World is a saved world seed entry.
type World struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Seed        string `json:"seed"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// WorldUpdate carries the fields of a partial world update; nil means
// leave unchanged.
type WorldUpdate struct {
	Name        *string
	Seed        *string
	Description *string
}

func scanWorld(row interface{ Scan(...any) error }) (World, error) {
	var w World
	var desc sql.NullString
	var active int
	err := row.Scan(&w.ID, &w.Name, &w.Seed, &desc, &active, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return World{}, err
	}
	w.Description = desc.String
	w.IsActive = active != 0
	return w, nil
}

const worldCols = "id, name, seed, description, is_active, created_at, updated_at"

// CreateWorld inserts a new world and returns the stored row.
func (s *Store) CreateWorld(ctx context.Context, name, seed, description string) (World, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO worlds (name, seed, description) VALUES (?, ?, ?)",
		name, seed, nullable(description))
	if err != nil {
		return World{}, fmt.Errorf("insert world: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return World{}, err
	}
	return s.World(ctx, id)
}

// Worlds returns all worlds, active first, then most recently updated.
func (s *Store) Worlds(ctx context.Context) ([]World, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+worldCols+" FROM worlds ORDER BY is_active DESC, updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("query worlds: %w", err)
	}
	defer rows.Close()

	var out []World
	for rows.Next() {
		w, err := scanWorld(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// World returns the world with the given id, or ErrNotFound.
func (s *Store) World(ctx context.Context, id int64) (World, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+worldCols+" FROM worlds WHERE id = ?", id)
	w, err := scanWorld(row)
	if err == sql.ErrNoRows {
		return World{}, ErrNotFound
	}
	return w, err
}

// ActiveWorld returns the currently active world, or ErrNotFound.
func (s *Store) ActiveWorld(ctx context.Context) (World, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+worldCols+" FROM worlds WHERE is_active = 1 LIMIT 1")
	w, err := scanWorld(row)
	if err == sql.ErrNoRows {
		return World{}, ErrNotFound
	}
	return w, err
}

// SetActiveWorld makes the given world the single active one.
func (s *Store) SetActiveWorld(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "UPDATE worlds SET is_active = 0"); err != nil {
		return fmt.Errorf("clear active: %w", err)
	}
	res, err := tx.ExecContext(ctx, "UPDATE worlds SET is_active = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// UpdateWorld applies a partial update. ErrNotFound if the id is unknown.
func (s *Store) UpdateWorld(ctx context.Context, id int64, upd WorldUpdate) error {
	var sets []string
	var args []any
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Seed != nil {
		sets = append(sets, "seed = ?")
		args = append(args, *upd.Seed)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE worlds SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update world: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWorld removes a world. ErrNotFound if the id is unknown.
func (s *Store) DeleteWorld(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM worlds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete world: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// nullable maps the empty string to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
