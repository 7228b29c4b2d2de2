package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/msomdec/supportlog/internal/domain"
	"github.com/msomdec/supportlog/internal/service"
)

// LogHandler serves the customer log listing.
type LogHandler struct {
	logs *service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logs *service.LogService) *LogHandler {
	return &LogHandler{logs: logs}
}

// HandleList returns the authenticated user's log entries. The owner scope
// comes from the resolved session; client-supplied ids are never trusted.
// GET /api/logs?search=&severity=&follow_up_only=
// Response: 200 {"logs":[...],"generated_at":"..."}
func (h *LogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	q := r.URL.Query()
	filter := domain.LogFilter{
		Search:       q.Get("search"),
		Severity:     strings.ToLower(q.Get("severity")),
		FollowUpOnly: strings.EqualFold(q.Get("follow_up_only"), "true"),
	}

	entries, err := h.logs.List(r.Context(), user.ID, filter)
	if err != nil {
		slog.Error("list logs", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"logs":         toLogEntryDTOs(entries),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}
