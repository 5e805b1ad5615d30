package http

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/internal/scheduler/service"
	"github.com/aussiebroadwan/huddle/pkg/httpx"
	"github.com/aussiebroadwan/huddle/pkg/schedsdk"
	"github.com/aussiebroadwan/huddle/pkg/slogx"
)

// currentPerson resolves the token subject to a household member.
func currentPerson(ctx context.Context, dir *service.DirectoryService) (domain.Person, *schedsdk.APIError) {
	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok || userID == "" {
		return domain.Person{}, schedsdk.ErrInvalidToken
	}

	p, err := dir.GetPerson(ctx, userID)
	if errors.Is(err, service.ErrPersonNotFound) {
		return domain.Person{}, schedsdk.ErrPersonNotRegistered
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load person", "user_id", userID, "err", err)
		return domain.Person{}, schedsdk.ErrServerError
	}
	return p, nil
}
