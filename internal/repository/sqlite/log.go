package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/supportlog/internal/domain"
)

// LogRepository implements domain.LogRepository using SQLite.
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new SQLite-backed LogRepository.
func NewLogRepository(db *DB) *LogRepository {
	return &LogRepository{db: db.SqlDB}
}

func (r *LogRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO customer_logs (user_id, customer_name, customer_email, event_type,
		 message, severity, follow_up_required, assigned_owner, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.CustomerName, entry.CustomerEmail, entry.EventType,
		entry.Message, entry.Severity, entry.FollowUpRequired, entry.AssignedOwner, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = createdAt
	return nil
}

// ListByUser returns the user's log entries matching the filter, newest
// first. The owner scope is part of the query itself, never appended from
// client input.
func (r *LogRepository) ListByUser(ctx context.Context, userID int64, filter domain.LogFilter) ([]domain.LogEntry, error) {
	query := `SELECT id, user_id, customer_name, customer_email, event_type,
	          message, severity, follow_up_required, assigned_owner, created_at
	          FROM customer_logs WHERE user_id = ?`
	args := []any{userID}

	if filter.FollowUpOnly {
		query += " AND follow_up_required = 1"
	}
	if domain.ValidSeverity(filter.Severity) {
		query += " AND severity = ?"
		args = append(args, filter.Severity)
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		query += ` AND (LOWER(customer_name) LIKE ? OR LOWER(customer_email) LIKE ? OR LOWER(message) LIKE ?)`
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query log entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LogEntry
	for rows.Next() {
		var e domain.LogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.CustomerName, &e.CustomerEmail, &e.EventType,
			&e.Message, &e.Severity, &e.FollowUpRequired, &e.AssignedOwner, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *LogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customer_logs").Scan(&count); err != nil {
		return 0, fmt.Errorf("count log entries: %w", err)
	}
	return count, nil
}
