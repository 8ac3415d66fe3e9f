package repository

import (
	"context"
	"errors"

	"bizindustry/cmd/internal/domain/entity"
	"bizindustry/cmd/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultHandoffRepository struct {
	db *gorm.DB
}

func NewHandoffRepository(db *gorm.DB) *DefaultHandoffRepository {
	return &DefaultHandoffRepository{db: db}
}

// Put stores value under (sessionID, key), replacing any previous value.
func (r *DefaultHandoffRepository) Put(ctx context.Context, sessionID, key, value string) error {
	entry := &entity.HandoffEntry{
		SessionID: sessionID,
		Key:       key,
		Value:     value,
		UpdatedAt: utils.NowUTC(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(entry).Error
}

// Get returns the stored value and whether it exists.
func (r *DefaultHandoffRepository) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	entry, err := r.FindByKey(ctx, sessionID, key)
	if err != nil || entry == nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *DefaultHandoffRepository) FindByKey(ctx context.Context, sessionID, key string) (*entity.HandoffEntry, error) {
	var entry entity.HandoffEntry
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND handoff_key = ?", sessionID, key).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *DefaultHandoffRepository) DeleteExpired(before int64) error {
	return r.db.
		Where("updated_at < ?", before).
		Delete(&entity.HandoffEntry{}).Error
}
