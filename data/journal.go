package data

import (
	"time"

	"github.com/baowuhe/go-btime/util"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ChangeRecord represents one applied birth time change
type ChangeRecord struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Key       string     `gorm:"type:varchar(64);not null;index"`
	Path      string     `gorm:"type:text;not null;index"`
	OldTime   *time.Time `gorm:"column:old_time"` // nil when the previous value could not be read
	NewTime   time.Time  `gorm:"column:new_time;not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for ChangeRecord
func (ChangeRecord) TableName() string {
	return "tb_change_records"
}

// DB is a wrapper around gorm.DB
type DB struct {
	*gorm.DB
}

// GetDBPath returns the path to the database file
func GetDBPath() (string, error) {
	return util.GetDBPath()
}

// Connect connects to the SQLite journal database
func Connect() (*DB, error) {
	dbPath, err := GetDBPath()
	if err != nil {
		return nil, err
	}

	// Configure SQLite for better concurrent access
	dsn := dbPath + "?_busy_timeout=30000&_journal_mode=WAL&_sync=0&_cache_size=10000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Silent by default
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Limit to 1 connection to avoid locking issues
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	// Auto-migrate the schema
	if err := db.AutoMigrate(&ChangeRecord{}); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// Close closes the underlying database connection
func (db *DB) Close() {
	sqlDB, _ := db.DB.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// AddChange appends a change record to the journal
func (db *DB) AddChange(record *ChangeRecord) error {
	return db.Create(record).Error
}

// GetChangesByPath retrieves the journal entries for a path, newest first.
// A limit of 0 or less means no limit.
func (db *DB) GetChangesByPath(path string, limit int) ([]*ChangeRecord, error) {
	var records []*ChangeRecord
	query := db.Where("path = ?", path).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return records, query.Find(&records).Error
}

// GetAllChanges retrieves all journal entries, newest first.
// A limit of 0 or less means no limit.
func (db *DB) GetAllChanges(limit int) ([]*ChangeRecord, error) {
	var records []*ChangeRecord
	query := db.Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return records, query.Find(&records).Error
}

// GetLatestRestorable retrieves the most recent journal entry for a path
// that recorded the previous birth time
func (db *DB) GetLatestRestorable(path string) (*ChangeRecord, error) {
	var record ChangeRecord
	result := db.Where("path = ? AND old_time IS NOT NULL", path).Order("id DESC").First(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}
