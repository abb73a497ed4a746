package kvstore

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted key for one user.
type Record struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_kv_records_user_key"`
	Key       string         `gorm:"not null;uniqueIndex:idx_kv_records_user_key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Record) TableName() string { return "kv_records" }

type gormStore struct {
	db     *gorm.DB
	userID uint
}

// ForUser returns a Store scoped to a single user's rows.
func ForUser(db *gorm.DB, userID uint) Store {
	return &gormStore{db: db, userID: userID}
}

func (s *gormStore) Get(key string, out any) (bool, error) {
	var rec Record
	err := s.db.Where("user_id = ? AND key = ?", s.userID, key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, &StorageError{Op: "get", Key: key, Err: err}
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		return false, &StorageError{Op: "decode", Key: key, Err: err}
	}
	return true, nil
}

func (s *gormStore) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	rec := Record{UserID: s.userID, Key: key, Value: datatypes.JSON(raw)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return &StorageError{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *gormStore) Delete(key string) error {
	err := s.db.Where("user_id = ? AND key = ?", s.userID, key).Delete(&Record{}).Error
	if err != nil {
		return &StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}
