package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driving"
)

// Ensure identityService implements IdentityService
var _ driving.IdentityService = (*identityService)(nil)

// identityService maps authenticated principals to durable user records.
//
// Resolve is read-then-conditionally-write, not a single atomic upsert: two
// concurrent first-time requests for the same email can both observe "absent"
// and both insert. The store's unique email constraint merges the loser
// instead of duplicating, so the invariant of one record per email holds.
type identityService struct {
	userStore driven.UserStore
	logger    *slog.Logger
}

// NewIdentityService creates a new identity resolver.
func NewIdentityService(userStore driven.UserStore, logger *slog.Logger) driving.IdentityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &identityService{
		userStore: userStore,
		logger:    logger,
	}
}

// Resolve returns the user record for the principal, creating or refreshing
// it. Unchanged attributes perform no write.
func (s *identityService) Resolve(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	if principal.Email == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.userStore.GetByEmail(ctx, principal.Email)
	if errors.Is(err, domain.ErrNotFound) {
		now := time.Now()
		user = &domain.User{
			ID:        uuid.NewString(),
			Email:     principal.Email,
			Name:      principal.Name,
			Avatar:    principal.Avatar,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.userStore.Save(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("created new user", "email", principal.Email)
		return user, nil
	}
	if err != nil {
		return nil, err
	}

	// Write back only when a mutable attribute actually changed
	changed := false
	if principal.Name != "" && user.Name != principal.Name {
		user.Name = principal.Name
		changed = true
	}
	if principal.Avatar != "" && user.Avatar != principal.Avatar {
		user.Avatar = principal.Avatar
		changed = true
	}

	if changed {
		user.UpdatedAt = time.Now()
		if err := s.userStore.Save(ctx, user); err != nil {
			return nil, err
		}
	}

	return user, nil
}
