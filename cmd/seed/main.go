package main

import (
	"log"
	"os"
	"time"

	"workshophub/internal/database"
	"workshophub/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "workshops.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// cleanup in FK-safe order
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM time_slots")
	db.Exec("DELETE FROM workshops")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM admins")

	log.Println("Creating users...")

	admin := domain.Admin{
		Email:        "admin@example.com",
		PasswordHash: hash("admin123"),
	}
	mustCreate(db, &admin)

	alice := domain.Customer{
		Name:         "Alice Smith",
		Email:        "alice@example.com",
		PasswordHash: hash("password1"),
	}
	mustCreate(db, &alice)

	bob := domain.Customer{
		Name:         "Bob Johnson",
		Email:        "bob@example.com",
		PasswordHash: hash("password2"),
	}
	mustCreate(db, &bob)

	log.Println("Creating workshops...")

	python := domain.Workshop{
		Title:       "Python 101",
		Description: "Intro to Python",
		Date:        mustDate("2025-07-10"),
		MaxCapacity: 15,
		TimeSlots: []domain.TimeSlot{
			{StartTime: "10:00 AM", EndTime: "12:00 PM", AvailableSpots: 15},
			{StartTime: "1:00 PM", EndTime: "3:00 PM", AvailableSpots: 15},
		},
	}
	mustCreate(db, &python)

	yoga := domain.Workshop{
		Title:       "Yoga Basics",
		Description: "Beginner Yoga Workshop",
		Date:        mustDate("2025-07-11"),
		MaxCapacity: 20,
		TimeSlots: []domain.TimeSlot{
			{StartTime: "9:00 AM", EndTime: "11:00 AM", AvailableSpots: 20},
			{StartTime: "2:00 PM", EndTime: "4:00 PM", AvailableSpots: 20},
		},
	}
	mustCreate(db, &yoga)

	log.Println("Creating bookings...")

	seedBooking(db, alice.ID, python.ID, python.TimeSlots[0].ID, domain.BookingConfirmed)
	seedBooking(db, bob.ID, python.ID, python.TimeSlots[1].ID, domain.BookingPending)
	seedBooking(db, alice.ID, yoga.ID, yoga.TimeSlots[0].ID, domain.BookingConfirmed)
	seedBooking(db, bob.ID, yoga.ID, yoga.TimeSlots[1].ID, domain.BookingCancelled)

	log.Println("Seeding complete.")
}

// seedBooking inserts a booking directly and keeps the capacity invariant:
// availableSpots = capacity - live bookings.
func seedBooking(db *gorm.DB, customerID, workshopID, slotID string, status domain.BookingStatus) {
	mustCreate(db, &domain.Booking{
		CustomerID: customerID,
		WorkshopID: workshopID,
		TimeSlotID: slotID,
		Status:     status,
	})
	if err := db.Model(&domain.TimeSlot{}).
		Where("id = ? AND available_spots > 0", slotID).
		UpdateColumn("available_spots", gorm.Expr("available_spots - 1")).Error; err != nil {
		log.Fatal("seed decrement failed:", err)
	}
}

func mustCreate(db *gorm.DB, v any) {
	if err := db.Create(v).Error; err != nil {
		log.Fatalf("seed create %T failed: %v", v, err)
	}
}

func mustDate(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		log.Fatal("bad seed date:", err)
	}
	return t
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}
	return string(h)
}
