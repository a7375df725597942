package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Job statuses, in lifecycle order.
const (
	JobPending   = "pending"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// Job is an asynchronous search computation tracked in the database.
type Job struct {
	ID           int64  `json:"id"`
	WorldID      int64  `json:"world_id"`
	Type         string `json:"job_type"`
	Parameters   string `json:"parameters,omitempty"`
	Status       string `json:"status"`
	Progress     int    `json:"progress"`
	Result       string `json:"result,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	CreatedAt    string `json:"created_at"`
	StartedAt    string `json:"started_at,omitempty"`
	CompletedAt  string `json:"completed_at,omitempty"`
}

const jobCols = "id, world_id, job_type, parameters, status, progress, result, error_message, created_at, started_at, completed_at"

func (s *Store) scanJob(row interface{ Scan(...any) error }) (Job, error) {
	var j Job
	var params, errMsg, startedAt, completedAt sql.NullString
	var blob []byte
	err := row.Scan(&j.ID, &j.WorldID, &j.Type, &params, &j.Status, &j.Progress,
		&blob, &errMsg, &j.CreatedAt, &startedAt, &completedAt)
	if err != nil {
		return Job{}, err
	}
	j.Parameters = params.String
	j.ErrorMessage = errMsg.String
	j.StartedAt = startedAt.String
	j.CompletedAt = completedAt.String

	if len(blob) > 0 {
		raw, err := s.dec.DecodeAll(blob, nil)
		if err != nil {
			return Job{}, fmt.Errorf("decompress job result: %w", err)
		}
		j.Result = string(raw)
	}
	return j, nil
}

// CreateJob inserts a pending job and returns the stored row.
func (s *Store) CreateJob(ctx context.Context, worldID int64, jobType, parameters string) (Job, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO jobs (world_id, job_type, parameters) VALUES (?, ?, ?)",
		worldID, jobType, nullable(parameters))
	if err != nil {
		return Job{}, fmt.Errorf("insert job: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Job{}, err
	}
	return s.Job(ctx, id)
}

// Job returns the job with the given id, result decompressed, or
// ErrNotFound.
func (s *Store) Job(ctx context.Context, id int64) (Job, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+jobCols+" FROM jobs WHERE id = ?", id)
	j, err := s.scanJob(row)
	if err == sql.ErrNoRows {
		return Job{}, ErrNotFound
	}
	return j, err
}

// JobsByWorld returns a world's jobs, newest first, optionally filtered by
// status.
func (s *Store) JobsByWorld(ctx context.Context, worldID int64, status string) ([]Job, error) {
	query := "SELECT " + jobCols + " FROM jobs WHERE world_id = ? ORDER BY created_at DESC, id DESC"
	args := []any{worldID}
	if status != "" {
		query = "SELECT " + jobCols + " FROM jobs WHERE world_id = ? AND status = ? ORDER BY created_at DESC, id DESC"
		args = append(args, status)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		j, err := s.scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// MarkJobRunning transitions a job to running and stamps started_at.
func (s *Store) MarkJobRunning(ctx context.Context, id int64) error {
	return s.execJob(ctx,
		"UPDATE jobs SET status = ?, progress = 0, started_at = CURRENT_TIMESTAMP WHERE id = ?",
		JobRunning, id)
}

// SetJobProgress records completion progress in percent.
func (s *Store) SetJobProgress(ctx context.Context, id int64, progress int) error {
	return s.execJob(ctx, "UPDATE jobs SET progress = ? WHERE id = ?", progress, id)
}

// CompleteJob stores the zstd-compressed result and finishes the job.
func (s *Store) CompleteJob(ctx context.Context, id int64, result []byte) error {
	blob := s.enc.EncodeAll(result, nil)
	return s.execJob(ctx,
		"UPDATE jobs SET status = ?, progress = 100, result = ?, completed_at = CURRENT_TIMESTAMP WHERE id = ?",
		JobCompleted, blob, id)
}

// FailJob records an error message and finishes the job.
func (s *Store) FailJob(ctx context.Context, id int64, message string) error {
	return s.execJob(ctx,
		"UPDATE jobs SET status = ?, error_message = ?, completed_at = CURRENT_TIMESTAMP WHERE id = ?",
		JobFailed, message, id)
}

// DeleteJob removes a job. ErrNotFound if the id is unknown.
func (s *Store) DeleteJob(ctx context.Context, id int64) error {
	return s.execJob(ctx, "DELETE FROM jobs WHERE id = ?", id)
}

func (s *Store) execJob(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("job update: %w", err)
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
