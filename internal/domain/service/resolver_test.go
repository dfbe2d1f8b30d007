package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lite-lake/cf-empty-email/internal/domain"
	"github.com/lite-lake/cf-empty-email/internal/domain/entity"
)

type fakeZoneLister struct {
	zones []entity.Zone
	err   error
	calls int
}

func (f *fakeZoneLister) ListZones(ctx context.Context) ([]entity.Zone, error) {
	f.calls++
	return f.zones, f.err
}

func TestZoneResolver_Resolve(t *testing.T) {
	zones := []entity.Zone{
		{ID: "z1", Name: "example.com"},
		{ID: "z2", Name: "example.org"},
	}

	t.Run("exact match", func(t *testing.T) {
		lister := &fakeZoneLister{zones: zones}
		resolver := NewZoneResolver(lister)

		zone, err := resolver.Resolve(context.Background(), "example.org")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if zone.ID != "z2" {
			t.Errorf("zone.ID = %q, want z2", zone.ID)
		}
		if lister.calls != 1 {
			t.Errorf("expected 1 listing call, got %d", lister.calls)
		}
	})

	t.Run("case insensitive match", func(t *testing.T) {
		resolver := NewZoneResolver(&fakeZoneLister{zones: zones})

		zone, err := resolver.Resolve(context.Background(), "Example.COM.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if zone.ID != "z1" {
			t.Errorf("zone.ID = %q, want z1", zone.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		resolver := NewZoneResolver(&fakeZoneLister{zones: zones})

		_, err := resolver.Resolve(context.Background(), "missing.net")
		if !errors.Is(err, domain.ErrZoneNotFound) {
			t.Fatalf("error = %v, want ErrZoneNotFound", err)
		}

		var notFound *ZoneNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatal("expected *ZoneNotFoundError")
		}
		if notFound.Name != "missing.net" {
			t.Errorf("Name = %q, want missing.net", notFound.Name)
		}
		if len(notFound.Available) != 2 {
			t.Errorf("Available = %d zones, want 2", len(notFound.Available))
		}
	})

	t.Run("empty name skips the network", func(t *testing.T) {
		lister := &fakeZoneLister{zones: zones}
		resolver := NewZoneResolver(lister)

		_, err := resolver.Resolve(context.Background(), "")
		if !errors.Is(err, domain.ErrNoZoneSpecified) {
			t.Fatalf("error = %v, want ErrNoZoneSpecified", err)
		}
		if lister.calls != 0 {
			t.Errorf("expected no listing call, got %d", lister.calls)
		}
	})

	t.Run("listing failure is wrapped", func(t *testing.T) {
		listErr := errors.New("gateway timeout")
		resolver := NewZoneResolver(&fakeZoneLister{err: listErr})

		_, err := resolver.Resolve(context.Background(), "example.com")
		if !errors.Is(err, listErr) {
			t.Fatalf("error = %v, want wrapped %v", err, listErr)
		}
	})
}

func TestZoneResolver_Available(t *testing.T) {
	zones := []entity.Zone{{ID: "z1", Name: "example.com"}}
	resolver := NewZoneResolver(&fakeZoneLister{zones: zones})

	got, err := resolver.Available(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "example.com" {
		t.Errorf("Available() = %v, want the single example.com zone", got)
	}
}
