package postgres

import (
	"context"
	"errors"

	"github.com/jobmate/engine-service/internal/models"
	"github.com/jobmate/engine-service/internal/utils"
	"gorm.io/gorm"
)

type JobRepository interface {
	GetByID(ctx context.Context, id string) (*models.Job, error)
	ListByIDs(ctx context.Context, ids []string) ([]*models.Job, error)
	ListOpen(ctx context.Context, limit int) ([]*models.Job, error)
	CountByCustomerAndStatus(ctx context.Context, customerID string, status models.JobStatus) (int64, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) ListByIDs(ctx context.Context, ids []string) ([]*models.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) ListOpen(ctx context.Context, limit int) ([]*models.Job, error) {
	var jobs []*models.Job
	q := r.db.WithContext(ctx).
		Where("status = ?", models.JobStatusOpen).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) CountByCustomerAndStatus(ctx context.Context, customerID string, status models.JobStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("customer_id = ? AND status = ?", customerID, status).
		Count(&n).Error
	return n, err
}
