package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLite-friendly schemas only for tests (no ENUM columns).

type loanSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	UID         string         `gorm:"size:36;column:uid"`
	BorrowerUID string         `gorm:"size:36;column:borrower_uid"`
	Amount      float64        `gorm:"column:amount"`
	Term        int            `gorm:"column:term"`
	Status      string         `gorm:"type:text;column:status"` // ← no enum
	StartDate   *time.Time     `gorm:"column:start_date"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type participationSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	UID       string         `gorm:"size:36;column:uid"`
	LoanID    uint64         `gorm:"column:loan_id"`
	Amount    float64        `gorm:"column:amount"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (participationSQLite) TableName() string { return "loan_participations" }

type movementSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	UID       string         `gorm:"size:36;column:uid"`
	LoanID    uint64         `gorm:"column:loan_id"`
	Type      string         `gorm:"type:text;column:type"` // ← no enum
	Amount    float64        `gorm:"column:amount"`
	Interest  float64        `gorm:"column:interest"`
	Principal float64        `gorm:"column:principal"`
	DueDate   time.Time      `gorm:"column:due_date"`
	Paid      bool           `gorm:"column:paid"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (movementSQLite) TableName() string { return "movements" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, not the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &participationSQLite{}, &movementSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
