package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven/mocks"
)

func TestIdentityService_CreatesOnFirstSight(t *testing.T) {
	store := mocks.NewMockUserStore()
	svc := NewIdentityService(store, nil)

	principal := domain.Principal{
		Email:  "jane@example.com",
		Name:   "Jane",
		Avatar: "https://example.com/jane.png",
	}

	user, err := svc.Resolve(context.Background(), principal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected a generated user ID")
	}
	if user.Email != principal.Email {
		t.Errorf("expected email %s, got %s", principal.Email, user.Email)
	}
	if user.Name != "Jane" {
		t.Errorf("expected name Jane, got %s", user.Name)
	}
	if store.Saves() != 1 {
		t.Errorf("expected 1 save, got %d", store.Saves())
	}
}

func TestIdentityService_Idempotent(t *testing.T) {
	store := mocks.NewMockUserStore()
	svc := NewIdentityService(store, nil)

	principal := domain.Principal{Email: "jane@example.com", Name: "Jane"}

	first, err := svc.Resolve(context.Background(), principal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same principal again: no write, same record
	second, err := svc.Resolve(context.Background(), principal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected stable user ID %s, got %s", first.ID, second.ID)
	}
	if store.Saves() != 1 {
		t.Errorf("expected no write-back for unchanged principal, saves=%d", store.Saves())
	}
	if store.Count() != 1 {
		t.Errorf("expected 1 stored user, got %d", store.Count())
	}
}

func TestIdentityService_RefreshesChangedAttributes(t *testing.T) {
	store := mocks.NewMockUserStore()
	svc := NewIdentityService(store, nil)

	first, err := svc.Resolve(context.Background(), domain.Principal{Email: "jane@example.com", Name: "Jane"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Resolve(context.Background(), domain.Principal{Email: "jane@example.com", Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.ID != first.ID {
		t.Errorf("name change must not change identity: %s vs %s", updated.ID, first.ID)
	}
	if updated.Name != "Jane Doe" {
		t.Errorf("expected refreshed name, got %s", updated.Name)
	}
	if !updated.CreatedAt.Equal(first.CreatedAt) {
		t.Error("created_at must survive a refresh")
	}
	if store.Saves() != 2 {
		t.Errorf("expected 2 saves, got %d", store.Saves())
	}
}

func TestIdentityService_EmptyClaimsDoNotClobber(t *testing.T) {
	store := mocks.NewMockUserStore()
	svc := NewIdentityService(store, nil)

	_, err := svc.Resolve(context.Background(), domain.Principal{
		Email:  "jane@example.com",
		Name:   "Jane",
		Avatar: "https://example.com/jane.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A token with no optional claims leaves the stored attributes alone
	user, err := svc.Resolve(context.Background(), domain.Principal{Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Jane" {
		t.Errorf("expected name preserved, got %q", user.Name)
	}
	if user.Avatar == "" {
		t.Error("expected avatar preserved")
	}
	if store.Saves() != 1 {
		t.Errorf("expected no write-back, saves=%d", store.Saves())
	}
}

func TestIdentityService_MissingEmail(t *testing.T) {
	svc := NewIdentityService(mocks.NewMockUserStore(), nil)

	_, err := svc.Resolve(context.Background(), domain.Principal{Name: "No Email"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
