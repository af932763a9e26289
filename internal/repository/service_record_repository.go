package repository

import (
	"context"
	"errors"
	"fmt"

	"medequip-backend/internal/model"

	"gorm.io/gorm"
)

// ErrStoreUnavailable means the service-record store could not be read.
// Either the full set comes back or the read fails; no partial results.
var ErrStoreUnavailable = errors.New("service record store unavailable")

type ServiceRecordRepository interface {
	GetAll(ctx context.Context) ([]model.ServiceRecord, error)
}

type serviceRecordRepository struct {
	db *gorm.DB
}

func NewServiceRecordRepository(db *gorm.DB) ServiceRecordRepository {
	return &serviceRecordRepository{db}
}

// GetAll loads the entire collection per request. No pagination or filtering
// is pushed to the store; matching happens in the normalizer. Known
// scalability ceiling, kept deliberately.
func (r *serviceRecordRepository) GetAll(ctx context.Context) ([]model.ServiceRecord, error) {
	var records []model.ServiceRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return records, nil
}
