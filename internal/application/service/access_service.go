package service

import (
	"context"

	"github.com/dukaops/enterprise-api/internal/domain/enum"
	"github.com/dukaops/enterprise-api/internal/domain/repository"
	"github.com/dukaops/enterprise-api/pkg/apperror"
)

// AccessService is the authorization gate: it answers whether a caller may
// perform an operation requiring a given permission tag.
type AccessService struct {
	userRepo repository.UserRepository
}

// NewAccessService creates a new access service
func NewAccessService(userRepo repository.UserRepository) *AccessService {
	return &AccessService{userRepo: userRepo}
}

// Authorize checks the caller's role capabilities against the required
// permission. A request without a caller identity passes unchecked. A
// caller id that resolves to no account fails as unauthenticated; a
// resolvable caller without the capability is forbidden. The check is
// read-only.
func (s *AccessService) Authorize(ctx context.Context, callerID *uint, required enum.Permission) error {
	if callerID == nil {
		return nil
	}

	user, err := s.userRepo.GetWithRole(ctx, *callerID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrUnauthenticated
	}

	if user.Permissions().Has(required) {
		return nil
	}
	return apperror.ErrForbidden
}
