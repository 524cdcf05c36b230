// File: internal/repository/stats/interface.go
package stats

import (
	"context"

	"github.com/graceworks/churchos/internal/dtos"
)

// StatsRepository computes the dashboard counters. A nil branchID means
// unrestricted (elevated requester); otherwise every counter is
// filtered to that branch.
type StatsRepository interface {
	Overview(ctx context.Context, branchID *uint) (*dtos.StatsResponse, error)
}
