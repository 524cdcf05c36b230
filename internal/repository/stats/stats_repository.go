// File: internal/repository/stats/stats_repository.go
package stats

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

type gormStatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &gormStatsRepository{db: db}
}

func (r *gormStatsRepository) Overview(ctx context.Context, branchID *uint) (*dtos.StatsResponse, error) {
	out := &dtos.StatsResponse{}

	counts := []struct {
		model  interface{}
		column string
		dest   *int64
	}{
		{&domain.User{}, "branch_id", &out.Members},
		{&domain.Group{}, "branch_id", &out.Groups},
		{&domain.Event{}, "branch_id", &out.Events},
		{&domain.Branch{}, "id", &out.Branches},
	}

	for _, c := range counts {
		query := r.db.WithContext(ctx).Model(c.model)
		if branchID != nil {
			query = query.Where(c.column+" = ?", *branchID)
		}
		if err := query.Count(c.dest).Error; err != nil {
			log.Printf("[StatsRepository] Database error counting %T: %v", c.model, err)
			return nil, errors.New("database error computing stats")
		}
	}

	return out, nil
}
