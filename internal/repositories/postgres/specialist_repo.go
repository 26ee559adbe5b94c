package postgres

import (
	"context"
	"errors"

	"github.com/jobmate/engine-service/internal/models"
	"github.com/jobmate/engine-service/internal/utils"
	"gorm.io/gorm"
)

type SpecialistRepository interface {
	GetByID(ctx context.Context, id string) (*models.Specialist, error)
	List(ctx context.Context, limit int) ([]*models.Specialist, error)
}

type specialistRepo struct {
	db *gorm.DB
}

func NewSpecialistRepo(db *gorm.DB) SpecialistRepository {
	return &specialistRepo{db: db}
}

func (r *specialistRepo) GetByID(ctx context.Context, id string) (*models.Specialist, error) {
	var sp models.Specialist
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&sp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &sp, err
}

func (r *specialistRepo) List(ctx context.Context, limit int) ([]*models.Specialist, error) {
	var sps []*models.Specialist
	q := r.db.WithContext(ctx).Order("rating DESC, completed_jobs DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&sps).Error
	return sps, err
}
