package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/msomdec/supportlog/internal/domain"
	"github.com/msomdec/supportlog/internal/repository/sqlite"
)

func seedLogEntries(t *testing.T, db *sqlite.DB, userID int64) {
	t.Helper()
	repo := sqlite.NewLogRepository(db)
	base := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)
	entries := []domain.LogEntry{
		{UserID: userID, CustomerName: "Ava Johnson", CustomerEmail: "ava@northline.com", EventType: "Payment Failed", Message: "Card declined on renewal plan", Severity: "high", FollowUpRequired: true, AssignedOwner: "Mia Chen", CreatedAt: base},
		{UserID: userID, CustomerName: "Noah Patel", CustomerEmail: "noah@westbay.io", EventType: "Feature Request", Message: "Asked for CSV export", Severity: "low", CreatedAt: base.Add(time.Hour)},
		{UserID: userID, CustomerName: "Sophia Martinez", CustomerEmail: "sophia@suncrest.org", EventType: "Escalation", Message: "Could not access account", Severity: "critical", FollowUpRequired: true, AssignedOwner: "Liam Davis", CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range entries {
		if err := repo.Create(context.Background(), &entries[i]); err != nil {
			t.Fatalf("seed entry %d: %v", i, err)
		}
	}
}

func TestLogRepository_ListByUser_OwnerScoped(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	seedLogEntries(t, db, alice.ID)

	got, err := repo.ListByUser(ctx, alice.ID, domain.LogFilter{})
	if err != nil {
		t.Fatalf("ListByUser alice: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries for alice, got %d", len(got))
	}

	// Bob owns nothing; alice's rows must not leak.
	got, err = repo.ListByUser(ctx, bob.ID, domain.LogFilter{})
	if err != nil {
		t.Fatalf("ListByUser bob: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 entries for bob, got %d", len(got))
	}
}

func TestLogRepository_ListByUser_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewLogRepository(db)
	owner := createTestUser(t, db, "order@example.com")
	seedLogEntries(t, db, owner.ID)

	got, err := repo.ListByUser(context.Background(), owner.ID, domain.LogFilter{})
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("entries not ordered newest first: %v before %v", got[i-1].CreatedAt, got[i].CreatedAt)
		}
	}
}

func TestLogRepository_ListByUser_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "filters@example.com")
	seedLogEntries(t, db, owner.ID)

	tests := []struct {
		name   string
		filter domain.LogFilter
		want   int
	}{
		{"severity critical", domain.LogFilter{Severity: "critical"}, 1},
		{"severity unknown means all", domain.LogFilter{Severity: "bogus"}, 3},
		{"follow up only", domain.LogFilter{FollowUpOnly: true}, 2},
		{"search by name", domain.LogFilter{Search: "noah"}, 1},
		{"search by message", domain.LogFilter{Search: "csv export"}, 1},
		{"search with no match", domain.LogFilter{Search: "zzz"}, 0},
		{"combined", domain.LogFilter{Severity: "high", FollowUpOnly: true}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.ListByUser(ctx, owner.ID, tc.filter)
			if err != nil {
				t.Fatalf("ListByUser: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d entries, got %d", tc.want, len(got))
			}
		})
	}
}

func TestLogRepository_Count(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d", count)
	}

	owner := createTestUser(t, db, "count@example.com")
	seedLogEntries(t, db, owner.ID)

	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count after seed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 entries, got %d", count)
	}
}
