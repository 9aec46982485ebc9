package audit

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for audit events.
//
// It MUST be append-only.
// No Update/Delete methods are provided by design.

type Repository interface {
	Append(ctx context.Context, e Event) error
}

// Service records what admins did through the console. Treat it as
// best-effort: a broken audit store must never fail the admin's action.

type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

var ErrInvalidEvent = errors.New("audit: invalid event")

func (s *Service) Append(ctx context.Context, e Event) error {
	if s == nil || s.repo == nil {
		return errors.New("audit: repository not configured")
	}
	if e.Action == "" {
		return ErrInvalidEvent
	}
	if e.ActorUsername == "" {
		return ErrInvalidEvent
	}

	now := s.clock().UTC()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	return s.repo.Append(ctx, e)
}

// Record appends an admin action and swallows failures into the log.
// Handlers call this after a mutation has already succeeded upstream.
func (s *Service) Record(ctx context.Context, log *slog.Logger, e Event) {
	if err := s.Append(ctx, e); err != nil {
		if log == nil {
			log = slog.Default()
		}
		log.Error("audit append failed", "action", e.Action, "resource", e.Resource, "err", err)
	}
}
