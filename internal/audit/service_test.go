package audit

import (
	"context"
	"testing"
	"time"
)

func TestAppend_RejectsInvalidEvents(t *testing.T) {
	s := NewService(NewMemoryRepo())

	if err := s.Append(context.Background(), Event{ActorUserID: "u"}); err != ErrInvalidEvent {
		t.Fatalf("expected ErrInvalidEvent for missing type, got %v", err)
	}
	if err := s.Append(context.Background(), Event{Type: EventTypeLogin}); err != ErrInvalidEvent {
		t.Fatalf("expected ErrInvalidEvent for missing actor, got %v", err)
	}
}

func TestAppend_AssignsIDAndTimestamp(t *testing.T) {
	repo := NewMemoryRepo()
	s := NewService(repo)
	s.clock = func() time.Time { return time.Unix(1700000000, 0) }

	if err := s.LogTokenExchange(context.Background(), "user-1", "admin@acme.com", "acme-uuid", "admin"); err != nil {
		t.Fatalf("append: %v", err)
	}

	events := repo.Events()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	e := events[0]
	if e.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !e.CreatedAt.Equal(time.Unix(1700000000, 0).UTC()) {
		t.Fatalf("unexpected created_at %v", e.CreatedAt)
	}
	if e.Type != EventTypeTokenExchange || e.TenantID != "acme-uuid" || e.Role != "admin" {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestLogLogin_RecordsActor(t *testing.T) {
	repo := NewMemoryRepo()
	s := NewService(repo)

	if err := s.LogLogin(context.Background(), "user-1", "admin@acme.com"); err != nil {
		t.Fatalf("append: %v", err)
	}

	events := repo.EventsOfType(EventTypeLogin)
	if len(events) != 1 {
		t.Fatalf("expected one login event, got %d", len(events))
	}
	if events[0].ActorUserID != "user-1" || events[0].Email != "admin@acme.com" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestLogTenantMismatch_CitesRequestedTenant(t *testing.T) {
	repo := NewMemoryRepo()
	s := NewService(repo)

	if err := s.LogTenantMismatch(context.Background(), "user-1", "acme-uuid", "beta-uuid"); err != nil {
		t.Fatalf("append: %v", err)
	}

	e := repo.Events()[0]
	if e.TenantID != "acme-uuid" {
		t.Fatalf("expected token tenant recorded, got %q", e.TenantID)
	}
	if e.Message != "requested tenant beta-uuid" {
		t.Fatalf("unexpected message %q", e.Message)
	}
}
