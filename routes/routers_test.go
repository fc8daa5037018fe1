package routes

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tricyvic/alx-travel-app-0x00/config"
	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
)

type envelope struct {
	Code       int             `json:"code"`
	Mess       string          `json:"mess"`
	ErrorCode  string          `json:"errorCode"`
	Errors     []fieldError    `json:"errors"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
	} `json:"pagination"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, config.Migrate(db))

	log := logger.NewWithWriter(io.Discard, logger.ErrorLevel)
	router := config.NewRouter(&config.Config{}, log)
	SetupRoutes(router, Deps{DB: db, Logger: log, BcryptCost: bcrypt.MinCost})
	return &apiClient{t: t, router: router}
}

func (a *apiClient) do(method, path string, body interface{}) (int, envelope) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (a *apiClient) createID(path string, body interface{}, idKey string) string {
	a.t.Helper()
	status, env := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, status, string(env.Data))

	var data map[string]interface{}
	require.NoError(a.t, json.Unmarshal(env.Data, &data))
	return data[idKey].(string)
}

func (a *apiClient) seed() (hostID, guestID, listingID string) {
	hostID = a.createID("/api/v1/users", gin.H{
		"firstName": "Host", "lastName": "One", "email": "host@example.com", "password": "supersecret",
	}, "userId")
	guestID = a.createID("/api/v1/users", gin.H{
		"firstName": "Guest", "lastName": "Two", "email": "guest@example.com", "password": "supersecret",
	}, "userId")
	listingID = a.createID("/api/v1/listings", gin.H{
		"hostId": hostID, "name": "Beach House", "description": "By the sea",
		"location": "Mombasa", "pricePerNight": "100.00",
	}, "listingId")
	return
}

func TestPing(t *testing.T) {
	api := newAPI(t)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "pong", w.Body.String())
}

func TestBookingFlow(t *testing.T) {
	api := newAPI(t)
	_, guestID, listingID := api.seed()

	status, env := api.do(http.MethodPost, "/api/v1/bookings", gin.H{
		"listingId": listingID, "userId": guestID, "startDate": "2024-01-01", "endDate": "2024-01-04",
	})
	require.Equal(t, http.StatusCreated, status)

	var booking map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, "300.00", booking["totalPrice"])
	assert.Equal(t, "pending", booking["status"])
	assert.Equal(t, "2024-01-04", booking["endDate"])
	assert.Equal(t, listingID, booking["listing"].(map[string]interface{})["listingId"])

	status, env = api.do(http.MethodPost, "/api/v1/bookings", gin.H{
		"listingId": listingID, "userId": guestID, "startDate": "2024-01-02", "endDate": "2024-01-03",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "BOOKING_OVERLAP", env.ErrorCode)

	status, env = api.do(http.MethodGet, "/api/v1/bookings?listingId="+listingID, nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 1, env.Pagination.Total)
}

func TestServerOwnedFieldsIgnoredOnCreate(t *testing.T) {
	api := newAPI(t)
	hostID, guestID, listingID := api.seed()
	clientID := "11111111-1111-1111-1111-111111111111"
	clientTime := "2000-01-01T00:00:00Z"

	status, env := api.do(http.MethodPost, "/api/v1/bookings", gin.H{
		"bookingId": clientID, "createdAt": clientTime, "totalPrice": "1.00",
		"listingId": listingID, "userId": guestID, "startDate": "2024-01-01", "endDate": "2024-01-04",
	})
	require.Equal(t, http.StatusCreated, status, string(env.Data))

	var booking map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, "300.00", booking["totalPrice"])
	assert.NotEqual(t, clientID, booking["bookingId"])
	assert.NotEmpty(t, booking["bookingId"])
	created, err := time.Parse(time.RFC3339Nano, booking["createdAt"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), created, time.Minute)

	status, env = api.do(http.MethodPost, "/api/v1/listings", gin.H{
		"listingId": clientID, "createdAt": clientTime, "averageRating": 5,
		"hostId": hostID, "name": "Cabin", "description": "In the woods",
		"location": "Nanyuki", "pricePerNight": "80.00",
	})
	require.Equal(t, http.StatusCreated, status, string(env.Data))

	var listing map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.NotEqual(t, clientID, listing["listingId"])
	assert.NotEmpty(t, listing["listingId"])
	assert.Contains(t, listing, "averageRating")
	assert.Nil(t, listing["averageRating"])
	created, err = time.Parse(time.RFC3339Nano, listing["createdAt"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), created, time.Minute)

	status, _ = api.do(http.MethodGet, "/api/v1/listings/"+clientID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBookingValidationErrors(t *testing.T) {
	api := newAPI(t)
	_, guestID, listingID := api.seed()

	status, env := api.do(http.MethodPost, "/api/v1/bookings", gin.H{
		"listingId": listingID, "userId": guestID, "startDate": "2024-01-04", "endDate": "2024-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
	assert.Equal(t, []fieldError{{Field: "endDate", Message: "End date must be after start date."}}, env.Errors)

	status, env = api.do(http.MethodPost, "/api/v1/bookings", gin.H{"listingId": listingID})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "REQUIRED_FIELD", env.ErrorCode)
	assert.Len(t, env.Errors, 3)

	status, env = api.do(http.MethodGet, "/api/v1/bookings?status=done", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "status", env.Errors[0].Field)

	status, _ = api.do(http.MethodGet, "/api/v1/bookings/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListingWithReviews(t *testing.T) {
	api := newAPI(t)
	hostID, guestID, listingID := api.seed()

	for _, review := range []gin.H{
		{"listingId": listingID, "userId": guestID, "rating": 5, "comment": "Great"},
		{"listingId": listingID, "userId": hostID, "rating": 4, "comment": "Good"},
	} {
		api.createID("/api/v1/reviews", review, "reviewId")
	}

	status, env := api.do(http.MethodPost, "/api/v1/reviews", gin.H{
		"listingId": listingID, "userId": guestID, "rating": 3, "comment": "Again",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "UNIQUENESS_CONFLICT", env.ErrorCode)

	status, env = api.do(http.MethodGet, "/api/v1/listings/"+listingID, nil)
	require.Equal(t, http.StatusOK, status)
	var listing map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Equal(t, 4.5, listing["averageRating"])
	assert.Equal(t, "100.00", listing["pricePerNight"])

	status, env = api.do(http.MethodGet, "/api/v1/listings/"+listingID+"/reviews", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, env.Pagination.Total)

	status, _ = api.do(http.MethodDelete, "/api/v1/listings/"+listingID, nil)
	require.Equal(t, http.StatusOK, status)
	status, env = api.do(http.MethodGet, "/api/v1/reviews", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, env.Pagination.Total)
}

func TestReviewRatingOutOfRange(t *testing.T) {
	api := newAPI(t)
	_, guestID, listingID := api.seed()

	status, env := api.do(http.MethodPost, "/api/v1/reviews", gin.H{
		"listingId": listingID, "userId": guestID, "rating": 6, "comment": "Too good",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "rating", env.Errors[0].Field)

	status, env = api.do(http.MethodPost, "/api/v1/reviews", gin.H{
		"listingId": listingID, "userId": guestID, "rating": "five", "comment": "x",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_FORMAT", env.ErrorCode)
}

func TestUserEndpointsHidePassword(t *testing.T) {
	api := newAPI(t)
	hostID, _, _ := api.seed()

	status, env := api.do(http.MethodGet, "/api/v1/users/"+hostID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotContains(t, string(env.Data), "password")

	status, env = api.do(http.MethodPost, "/api/v1/users", gin.H{
		"firstName": "Dup", "lastName": "User", "email": "HOST@example.com", "password": "supersecret",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "email", env.Errors[0].Field)

	status, _ = api.do(http.MethodDelete, "/api/v1/users/"+hostID, nil)
	require.Equal(t, http.StatusOK, status)
	status, env = api.do(http.MethodGet, "/api/v1/listings", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, env.Pagination.Total)
}
