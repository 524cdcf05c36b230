// File: internal/repository/volunteer/interface.go
package volunteer

import (
	"context"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

type VolunteerRepository interface {
	CreateNeed(ctx context.Context, need *domain.VolunteerNeed) (*domain.VolunteerNeed, error)
	// OpenNeedsByBranch lists a branch's open needs with signup counts,
	// soonest event first.
	OpenNeedsByBranch(ctx context.Context, branchID uint) ([]dtos.VolunteerNeedResponse, error)
	CreateSignup(ctx context.Context, signup *domain.VolunteerSignup) (*domain.VolunteerSignup, error)
	FindUserSignups(ctx context.Context, userID uint) ([]dtos.VolunteerSignupResponse, error)
}
