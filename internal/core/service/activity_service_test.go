package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
)

func TestActivityService_RecordFillsTimestamp(t *testing.T) {
	db := newMemDB()
	svc := NewActivityService(stubActivityRepo{db}, zerolog.Nop())

	if err := svc.Record(context.Background(), domain.Activity{Username: "dora123", Kind: domain.ActivityLogin}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(db.activity) != 1 || db.activity[0].OccurredAt.IsZero() {
		t.Fatalf("unexpected stored activity: %+v", db.activity)
	}
}

func TestActivityService_List(t *testing.T) {
	db := newMemDB()
	svc := NewActivityService(stubActivityRepo{db}, zerolog.Nop())
	for i := 0; i < 60; i++ {
		username := "dora123"
		if i%2 == 1 {
			username = "marin"
		}
		_ = svc.Record(context.Background(), domain.Activity{Username: username, Kind: domain.ActivityRSVPSaved})
	}

	got, err := svc.List(context.Background(), testAdmin, ports.ActivityFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != defaultActivityLimit {
		t.Fatalf("expected default limit %d, got %d", defaultActivityLimit, len(got))
	}

	got, err = svc.List(context.Background(), testAdmin, ports.ActivityFilter{Username: "marin", Limit: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	for _, a := range got {
		if a.Username != "marin" {
			t.Fatalf("filter leaked %q", a.Username)
		}
	}
}
