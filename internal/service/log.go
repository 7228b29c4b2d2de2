package service

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/supportlog/internal/domain"
)

// LogService serves owner-scoped customer log queries.
type LogService struct {
	logs domain.LogRepository
}

// NewLogService creates a new LogService.
func NewLogService(logs domain.LogRepository) *LogService {
	return &LogService{logs: logs}
}

// List returns the given user's log entries matching the filter, newest
// first. The user id must come from a resolved session, never from client
// input.
func (s *LogService) List(ctx context.Context, userID int64, filter domain.LogFilter) ([]domain.LogEntry, error) {
	entries, err := s.logs.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	return entries, nil
}

// SeedDemo inserts sample log entries owned by the given user. It is
// idempotent across restarts: nothing is inserted unless the table is
// empty.
func (s *LogService) SeedDemo(ctx context.Context, ownerID int64) error {
	count, err := s.logs.Count(ctx)
	if err != nil {
		return fmt.Errorf("count log entries: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, entry := range demoEntries(ownerID) {
		if err := s.logs.Create(ctx, &entry); err != nil {
			return fmt.Errorf("seed log entry: %w", err)
		}
	}
	return nil
}

func demoEntries(ownerID int64) []domain.LogEntry {
	day := func(d, h, m int) time.Time {
		return time.Date(2026, 2, d, h, m, 0, 0, time.UTC)
	}
	return []domain.LogEntry{
		{UserID: ownerID, CustomerName: "Ava Johnson", CustomerEmail: "ava@northline.com", EventType: "Payment Failed", Message: "Card declined on renewal plan", Severity: domain.SeverityHigh, FollowUpRequired: true, AssignedOwner: "Mia Chen", CreatedAt: day(20, 8, 41)},
		{UserID: ownerID, CustomerName: "Noah Patel", CustomerEmail: "noah@westbay.io", EventType: "Feature Request", Message: "Asked for CSV export in dashboard", Severity: domain.SeverityLow, CreatedAt: day(21, 11, 15)},
		{UserID: ownerID, CustomerName: "Sophia Martinez", CustomerEmail: "sophia@suncrest.org", EventType: "Escalation", Message: "Could not access account after SSO update", Severity: domain.SeverityCritical, FollowUpRequired: true, AssignedOwner: "Liam Davis", CreatedAt: day(22, 9, 33)},
		{UserID: ownerID, CustomerName: "Ethan Kim", CustomerEmail: "ethan@brookfield.app", EventType: "Support", Message: "Needs invoice correction before audit", Severity: domain.SeverityMedium, FollowUpRequired: true, AssignedOwner: "Amelia Ross", CreatedAt: day(22, 16, 8)},
		{UserID: ownerID, CustomerName: "Olivia Brown", CustomerEmail: "olivia@hightide.dev", EventType: "Bug Report", Message: "Intermittent timeout while generating reports", Severity: domain.SeverityMedium, CreatedAt: day(23, 13, 5)},
	}
}
