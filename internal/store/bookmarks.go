package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Bookmark is a saved coordinate within a world.
type Bookmark struct {
	ID        int64  `json:"id"`
	WorldID   int64  `json:"world_id"`
	Name      string `json:"name"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Z         int    `json:"z"`
	Dimension string `json:"dimension"`
	Category  string `json:"category,omitempty"`
	Icon      string `json:"icon"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// BookmarkUpdate carries the fields of a partial bookmark update; nil
// means leave unchanged.
type BookmarkUpdate struct {
	Name      *string
	X         *int
	Y         *int
	Z         *int
	Dimension *string
	Category  *string
	Icon      *string
	Notes     *string
}

const bookmarkCols = "id, world_id, name, x, y, z, dimension, category, icon, notes, created_at, updated_at"

func scanBookmark(row interface{ Scan(...any) error }) (Bookmark, error) {
	var b Bookmark
	var category, notes sql.NullString
	err := row.Scan(&b.ID, &b.WorldID, &b.Name, &b.X, &b.Y, &b.Z,
		&b.Dimension, &category, &b.Icon, &notes, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return Bookmark{}, err
	}
	b.Category = category.String
	b.Notes = notes.String
	return b, nil
}

// CreateBookmark inserts a bookmark and returns the stored row.
func (s *Store) CreateBookmark(ctx context.Context, b Bookmark) (Bookmark, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO bookmarks (world_id, name, x, y, z, dimension, category, icon, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.WorldID, b.Name, b.X, b.Y, b.Z, b.Dimension, nullable(b.Category), b.Icon, nullable(b.Notes))
	if err != nil {
		return Bookmark{}, fmt.Errorf("insert bookmark: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Bookmark{}, err
	}
	return s.Bookmark(ctx, id)
}

// BookmarksByWorld returns a world's bookmarks grouped by category.
func (s *Store) BookmarksByWorld(ctx context.Context, worldID int64) ([]Bookmark, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+bookmarkCols+" FROM bookmarks WHERE world_id = ? ORDER BY category, name", worldID)
	if err != nil {
		return nil, fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	var out []Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Bookmark returns the bookmark with the given id, or ErrNotFound.
func (s *Store) Bookmark(ctx context.Context, id int64) (Bookmark, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+bookmarkCols+" FROM bookmarks WHERE id = ?", id)
	b, err := scanBookmark(row)
	if err == sql.ErrNoRows {
		return Bookmark{}, ErrNotFound
	}
	return b, err
}

// UpdateBookmark applies a partial update. ErrNotFound if the id is unknown.
func (s *Store) UpdateBookmark(ctx context.Context, id int64, upd BookmarkUpdate) error {
	var sets []string
	var args []any
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.X != nil {
		add("x", *upd.X)
	}
	if upd.Y != nil {
		add("y", *upd.Y)
	}
	if upd.Z != nil {
		add("z", *upd.Z)
	}
	if upd.Dimension != nil {
		add("dimension", *upd.Dimension)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Icon != nil {
		add("icon", *upd.Icon)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE bookmarks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update bookmark: %w", err)
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

// DeleteBookmark removes a bookmark. ErrNotFound if the id is unknown.
func (s *Store) DeleteBookmark(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
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
