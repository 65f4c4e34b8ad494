package main

import (
	"context"
	"database/sql"
	"errors"
)

type taskFilters struct {
	priority  priority
	completed sql.NullBool
	page      int
	limit     int
}

func (s *storage) insertTask(t *task) error {
	query := `INSERT INTO tasks (id, name, priority, user_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING created_at, updated_at, completed`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, query, t.ID, t.Name, t.Priority, t.UserID)
	return row.Scan(&t.CreatedAt, &t.UpdatedAt, &t.Completed)
}

func (s *storage) getTaskByID(id string) (*task, error) {
	query := `SELECT id, created_at, updated_at, name, priority, completed, user_id
			  FROM tasks
			  WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	row := s.db.QueryRowContext(ctx, query, id)
	var t task
	err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.Name, &t.Priority, &t.Completed, &t.UserID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, nil
		default:
			return nil, err
		}
	}
	return &t, nil
}

func (s *storage) updateTask(t *task) error {
	query := `UPDATE tasks SET name = $1, priority = $2, completed = $3, updated_at = now()
			  WHERE id = $4
			  RETURNING updated_at`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, query, t.Name, t.Priority, t.Completed, t.ID)
	return row.Scan(&t.UpdatedAt)
}

// deleteTask removes the task and reports whether a row was actually deleted,
// so a concurrent delete surfaces as not-found rather than silent success.
func (s *storage) deleteTask(id string) (bool, error) {
	query := `DELETE FROM tasks
			  WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// getTasks returns one page of the user's tasks plus the total row count for
// the filter. The total comes from its own count query so a page past the end
// of the result set still reports the true total. Scoping by user_id happens
// in the queries themselves, so rows owned by other users are never fetched.
func (s *storage) getTasks(userID string, f taskFilters) ([]*task, int, error) {
	countQuery := `SELECT count(*)
			  FROM tasks
			  WHERE user_id = $1
			  AND ($2 = '' OR priority = $2)
			  AND ($3::boolean IS NULL OR completed = $3::boolean)`
	query := `SELECT id, created_at, updated_at, name, priority, completed, user_id
			  FROM tasks
			  WHERE user_id = $1
			  AND ($2 = '' OR priority = $2)
			  AND ($3::boolean IS NULL OR completed = $3::boolean)
			  ORDER BY created_at DESC, id
			  LIMIT $4 OFFSET $5`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	total := 0
	row := s.db.QueryRowContext(ctx, countQuery, userID, string(f.priority), f.completed)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (f.page - 1) * f.limit
	rows, err := s.db.QueryContext(ctx, query, userID, string(f.priority), f.completed, f.limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tasks := []*task{}
	for rows.Next() {
		var t task
		err := rows.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.Name, &t.Priority, &t.Completed, &t.UserID)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (s *storage) getTaskStats(userID string) (*taskStats, error) {
	query := `SELECT count(*),
				     count(*) FILTER (WHERE NOT completed),
				     count(*) FILTER (WHERE completed),
				     count(*) FILTER (WHERE priority = 'HIGH'),
				     count(*) FILTER (WHERE priority = 'MEDIUM'),
				     count(*) FILTER (WHERE priority = 'LOW')
			  FROM tasks
			  WHERE user_id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, query, userID)
	var st taskStats
	err := row.Scan(&st.Total, &st.Pending, &st.Completed, &st.High, &st.Medium, &st.Low)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
