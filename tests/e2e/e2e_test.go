package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workshophub/internal/database"
	"workshophub/internal/domain"
	"workshophub/internal/middleware"
	"workshophub/internal/modules/auth"
	"workshophub/internal/modules/booking"
	"workshophub/internal/modules/stats"
	"workshophub/internal/modules/workshop"
	jwtsvc "workshophub/internal/pkg/jwt"
	"workshophub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	customerRepo := repository.NewCustomerRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(customerRepo, adminRepo, j))
	workshopHandler := workshop.NewHandler(workshop.NewService(workshopRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo))
	statsHandler := stats.NewHandler(stats.NewService(statsRepo))

	r := gin.New()
	api := r.Group("/api")

	authHandler.RegisterRoutes(api)
	workshopHandler.RegisterRoutes(api)
	bookingHandler.RegisterRoutes(api)

	admin := api.Group("/", middleware.RequireAuth(j), middleware.AdminOnly())
	workshopHandler.RegisterAdminRoutes(admin)
	statsHandler.RegisterRoutes(admin)

	customers := api.Group("/", middleware.RequireAuth(j), middleware.CustomerOnly())
	bookingHandler.RegisterCustomerRoutes(customers)

	return &testSuite{router: r, db: db}
}

func (s *testSuite) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func (s *testSuite) seedAdmin(t *testing.T) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, s.db.Create(&domain.Admin{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}).Error)
}

func (s *testSuite) registerCustomer(t *testing.T, name, email string) (token, id string) {
	t.Helper()
	w := s.do(t, "POST", "/api/customers/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode[auth.CustomerAuthResponse](t, w)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.ID
}

func (s *testSuite) adminToken(t *testing.T) string {
	t.Helper()
	w := s.do(t, "POST", "/api/admin/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[auth.AdminAuthResponse](t, w).Token
}

func (s *testSuite) createWorkshop(t *testing.T, adminToken string, capacity, spots int) *domain.Workshop {
	t.Helper()
	w := s.do(t, "POST", "/api/workshops", adminToken, gin.H{
		"title":       "Python 101",
		"description": "Introductory programming",
		"date":        "2025-07-10",
		"maxCapacity": capacity,
		"timeSlots": []gin.H{
			{"startTime": "10:00 AM", "endTime": "12:00 PM", "availableSpots": spots},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[domain.Workshop](t, w)
	require.NotEmpty(t, created.ID)
	require.Len(t, created.TimeSlots, 1)
	return &created
}

func TestAuthFlow(t *testing.T) {
	s := setupSuite(t)
	s.seedAdmin(t)

	token, id := s.registerCustomer(t, "Alice", "alice@example.com")
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, id)

	// duplicate email
	w := s.do(t, "POST", "/api/customers/register", "", gin.H{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_TAKEN", decode[errorEnvelope](t, w).Error.Code)

	// short password
	w = s.do(t, "POST", "/api/customers/register", "", gin.H{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// login wrong password
	w = s.do(t, "POST", "/api/customers/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[errorEnvelope](t, w).Error.Code)

	// login ok
	w = s.do(t, "POST", "/api/customers/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// admin login
	assert.NotEmpty(t, s.adminToken(t))
}

func TestWorkshopAdminFlow(t *testing.T) {
	s := setupSuite(t)
	s.seedAdmin(t)
	adminToken := s.adminToken(t)
	customerToken, _ := s.registerCustomer(t, "Alice", "alice@example.com")

	// customers may not create workshops
	w := s.do(t, "POST", "/api/workshops", customerToken, gin.H{})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// anonymous may not either
	w = s.do(t, "POST", "/api/workshops", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	created := s.createWorkshop(t, adminToken, 15, 15)

	// public listing and detail
	w = s.do(t, "GET", "/api/workshops", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]domain.Workshop](t, w)
	require.Len(t, list, 1)

	w = s.do(t, "GET", "/api/workshops/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// update
	w = s.do(t, "PUT", "/api/workshops/"+created.ID, adminToken, gin.H{"title": "Python 102"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Python 102", decode[domain.Workshop](t, w).Title)

	// delete, then gone from reads
	w = s.do(t, "DELETE", "/api/workshops/"+created.ID, adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, "GET", "/api/workshops/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, "GET", "/api/workshops", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]domain.Workshop](t, w))
}

func TestBookingFlow(t *testing.T) {
	s := setupSuite(t)
	s.seedAdmin(t)
	adminToken := s.adminToken(t)

	aliceToken, aliceID := s.registerCustomer(t, "Alice", "alice@example.com")
	_, bobID := s.registerCustomer(t, "Bob", "bob@example.com")

	ws := s.createWorkshop(t, adminToken, 15, 2)
	slotID := ws.TimeSlots[0].ID

	book := func(customerID string) *httptest.ResponseRecorder {
		return s.do(t, "POST", "/api/bookings", "", gin.H{
			"customerId": customerID,
			"workshopId": ws.ID,
			"timeSlotId": slotID,
		})
	}

	// first booking succeeds
	w := book(aliceID)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	bookingID, _ := created["id"].(string)
	require.NotEmpty(t, bookingID)
	assert.Equal(t, "Booking submitted successfully", created["message"])

	// same customer again is a duplicate
	w = book(aliceID)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_BOOKING", decode[errorEnvelope](t, w).Error.Code)

	// second customer takes the last spot
	w = book(bobID)
	require.Equal(t, http.StatusCreated, w.Code)

	// third customer is rejected: slot full
	_, carolID := s.registerCustomer(t, "Carol", "carol@example.com")
	w = book(carolID)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CAPACITY_EXHAUSTED", decode[errorEnvelope](t, w).Error.Code)

	// unknown slot
	w = s.do(t, "POST", "/api/bookings", "", gin.H{
		"customerId": aliceID,
		"workshopId": ws.ID,
		"timeSlotId": "3b241101-e2bb-4255-8caf-4136c566a962",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// list with pagination
	w = s.do(t, "GET", "/api/bookings?page=1&limit=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[booking.PagedBookings](t, w)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Data, 1)
	require.NotNil(t, page.Data[0].Workshop)
	assert.Equal(t, "Python 101", page.Data[0].Workshop.Title)

	// filter by status
	w = s.do(t, "GET", "/api/bookings?status=pending", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode[booking.PagedBookings](t, w).Total)

	w = s.do(t, "GET", "/api/bookings?status=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// status update
	w = s.do(t, "PUT", "/api/bookings/"+bookingID, "", gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.BookingConfirmed, decode[domain.Booking](t, w).Status)

	w = s.do(t, "PUT", "/api/bookings/"+bookingID, "", gin.H{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, "PUT", "/api/bookings/3b241101-e2bb-4255-8caf-4136c566a962", "", gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// my bookings requires a customer token
	w = s.do(t, "GET", "/api/bookings/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, "GET", "/api/bookings/my", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode[[]domain.Booking](t, w)
	require.Len(t, mine, 1)
	assert.Equal(t, aliceID, mine[0].CustomerID)
}

func TestStatsFlow(t *testing.T) {
	s := setupSuite(t)
	s.seedAdmin(t)
	adminToken := s.adminToken(t)

	customerToken, aliceID := s.registerCustomer(t, "Alice", "alice@example.com")

	ws := s.createWorkshop(t, adminToken, 10, 10)

	w := s.do(t, "POST", "/api/bookings", "", gin.H{
		"customerId": aliceID,
		"workshopId": ws.ID,
		"timeSlotId": ws.TimeSlots[0].ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// stats are admin-only
	w = s.do(t, "GET", "/api/stats", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, "GET", "/api/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	overview := decode[stats.Overview](t, w)
	assert.EqualValues(t, 1, overview.TotalBookings)
	assert.Equal(t, 10, overview.FilledSlotsPercentage)
	require.NotNil(t, overview.MostPopularWorkshop)
	assert.Equal(t, "Python 101", overview.MostPopularWorkshop.Title)
	require.Len(t, overview.BookingsPerWorkshop, 1)
	assert.EqualValues(t, 1, overview.BookingsPerWorkshop[0].Count)
}
