package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// Store keeps the latest serialized game of every room.
type Store interface {
	Save(roomID int64, data []byte) error
	Load(roomID int64) ([]byte, error)
	Delete(roomID int64) error
	List() ([]Snapshot, error)
}

type Snapshot struct {
	RoomID    int64 `gorm:"primaryKey;autoIncrement:false"`
	Data      []byte
	UpdatedAt time.Time
}

type SQLStore struct {
	db *gorm.DB
}

// OpenStore opens (or creates) the sqlite database at dsn.
func OpenStore(dsn string) (*SQLStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot store: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Save(roomID int64, data []byte) error {
	snapshot := Snapshot{RoomID: roomID, Data: data, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snapshot).Error
}

func (s *SQLStore) Load(roomID int64) ([]byte, error) {
	var snapshot Snapshot
	err := s.db.First(&snapshot, "room_id = ?", roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return snapshot.Data, nil
}

func (s *SQLStore) Delete(roomID int64) error {
	return s.db.Delete(&Snapshot{}, "room_id = ?", roomID).Error
}

func (s *SQLStore) List() ([]Snapshot, error) {
	var snapshots []Snapshot
	err := s.db.Order("room_id").Find(&snapshots).Error
	return snapshots, err
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
