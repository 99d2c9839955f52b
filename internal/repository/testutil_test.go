package repository

import (
	"testing"
	"time"

	"workshophub/internal/database"
	"workshophub/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB returns an isolated in-memory SQLite database. The pool is
// capped at one connection so concurrent transactions serialize instead of
// hitting SQLITE_BUSY, which is what the reservation tests rely on.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) *domain.Customer {
	t.Helper()
	c := &domain.Customer{Name: name, Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedWorkshop(t *testing.T, db *gorm.DB, title string, capacity, spots int) *domain.Workshop {
	t.Helper()
	w := &domain.Workshop{
		Title:       title,
		Description: "test workshop",
		Date:        time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		MaxCapacity: capacity,
		TimeSlots: []domain.TimeSlot{
			{StartTime: "10:00 AM", EndTime: "12:00 PM", AvailableSpots: spots},
		},
	}
	require.NoError(t, db.Create(w).Error)
	return w
}

func slotSpots(t *testing.T, db *gorm.DB, slotID string) int {
	t.Helper()
	var slot domain.TimeSlot
	require.NoError(t, db.First(&slot, "id = ?", slotID).Error)
	return slot.AvailableSpots
}

func bookingCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&n).Error)
	return n
}
