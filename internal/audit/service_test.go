package audit

import (
	"context"
	"testing"
)

func TestService_AppendRequiresActionAndActor(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if err := svc.Append(context.Background(), Event{Action: ActionTopUpApprove}); err == nil {
		t.Fatalf("expected error for missing actor")
	}
	if err := svc.Append(context.Background(), Event{ActorUsername: "admin"}); err == nil {
		t.Fatalf("expected error for missing action")
	}
}

func TestService_AppendsImmutableEvents(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	err := svc.Append(context.Background(), Event{
		Action:        ActionTopUpApprove,
		ActorUsername: "admin",
		IPAddress:     "1.2.3.4",
		Resource:      "topup",
		ResourceID:    42,
		Message:       "Top-up approved successfully",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	evs := repo.Events()
	if len(evs) != 1 {
		t.Fatalf("expected 1 event")
	}
	if evs[0].ID == "" || evs[0].CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp filled in")
	}
	if evs[0].IPAddress != "1.2.3.4" {
		t.Fatalf("expected ip captured")
	}
	if evs[0].ResourceID != 42 {
		t.Fatalf("expected resource id captured")
	}
}

func TestService_RecordSwallowsFailures(t *testing.T) {
	svc := NewService(nil)
	// Must not panic or propagate; failures land in the log only.
	svc.Record(context.Background(), nil, Event{Action: ActionLogout, ActorUsername: "admin"})
}
