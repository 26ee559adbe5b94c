package postgres

import (
	"context"

	"gorm.io/gorm"
)

// PaymentRepository reads the payment bookkeeping owned by the platform's
// billing stack. This service only ever needs two aggregate facts for
// suggestion generation, so no payment model is mapped here.
type PaymentRepository interface {
	CountPendingByUser(ctx context.Context, userID string) (int64, error)
	HasPaymentMethod(ctx context.Context, userID string) (bool, error)
}

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) CountPendingByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("payments").
		Where("user_id = ? AND status = ?", userID, "pending").
		Count(&n).Error
	return n, err
}

func (r *paymentRepo) HasPaymentMethod(ctx context.Context, userID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("payment_methods").
		Where("user_id = ?", userID).
		Count(&n).Error
	return n > 0, err
}
