package scene

import (
	"context"
	"errors"

	"github.com/eleven-am/streetscene/internal/shared"
	"gorm.io/gorm"
)

const defaultListLimit = 50

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Record{})
}

func (s *Store) Create(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = shared.NewID("scn_")
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *Store) GetByID(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns the newest records first, optionally filtered by vehicle.
func (s *Store) List(ctx context.Context, vehicleID string, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	query := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}

	var recs []*Record
	err := query.Find(&recs).Error
	return recs, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&Record{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Record{}).Count(&n).Error
	return n, err
}
