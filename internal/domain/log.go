package domain

import (
	"context"
	"time"
)

// LogEntry is a single customer event in the support log. Every entry is
// owned by exactly one user; queries are always scoped to that owner.
type LogEntry struct {
	ID               int64
	UserID           int64
	CustomerName     string
	CustomerEmail    string
	EventType        string
	Message          string
	Severity         string
	FollowUpRequired bool
	AssignedOwner    string
	CreatedAt        time.Time
}

// Valid severities, lowest to highest.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// ValidSeverity reports whether s is one of the known severity levels.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// LogFilter narrows a log listing. Zero values mean "no restriction":
// an empty Search matches everything, an unrecognized Severity means all
// severities, and FollowUpOnly=false includes entries without follow-up.
type LogFilter struct {
	Search       string
	Severity     string
	FollowUpOnly bool
}

// LogRepository defines persistence operations for customer log entries.
type LogRepository interface {
	Create(ctx context.Context, entry *LogEntry) error
	// ListByUser returns the user's entries matching the filter, newest
	// first.
	ListByUser(ctx context.Context, userID int64, filter LogFilter) ([]LogEntry, error)
	// Count returns the total number of entries across all users.
	Count(ctx context.Context) (int, error)
}
