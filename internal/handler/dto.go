package handler

import (
	"time"

	"github.com/msomdec/supportlog/internal/domain"
)

// UserDTO is the public JSON representation of a user. It never carries
// the password salt or hash.
type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// LogEntryDTO is the JSON representation of a customer log entry.
type LogEntryDTO struct {
	ID               int64  `json:"id"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	EventType        string `json:"event_type"`
	Message          string `json:"message"`
	Severity         string `json:"severity"`
	FollowUpRequired bool   `json:"follow_up_required"`
	AssignedOwner    string `json:"assigned_owner"`
	CreatedAt        string `json:"created_at"`
}

func toLogEntryDTO(e domain.LogEntry) LogEntryDTO {
	return LogEntryDTO{
		ID:               e.ID,
		CustomerName:     e.CustomerName,
		CustomerEmail:    e.CustomerEmail,
		EventType:        e.EventType,
		Message:          e.Message,
		Severity:         e.Severity,
		FollowUpRequired: e.FollowUpRequired,
		AssignedOwner:    e.AssignedOwner,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

func toLogEntryDTOs(entries []domain.LogEntry) []LogEntryDTO {
	dtos := make([]LogEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toLogEntryDTO(e)
	}
	return dtos
}
