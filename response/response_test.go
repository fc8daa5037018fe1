package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tricyvic/alx-travel-app-0x00/errors"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(errors.ErrCodeNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusFor(errors.ErrCodeValidation))
	assert.Equal(t, http.StatusBadRequest, StatusFor(errors.ErrCodeRequiredField))
	assert.Equal(t, http.StatusBadRequest, StatusFor(errors.ErrCodeInvalidFormat))
	assert.Equal(t, http.StatusConflict, StatusFor(errors.ErrCodeUniqueConflict))
	assert.Equal(t, http.StatusConflict, StatusFor(errors.ErrCodeBookingOverlap))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.ErrCodeDBError))
}

func TestAppErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AppError(c, errors.Validation("endDate", "End date must be after start date."))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, errors.ErrCodeValidation, body.ErrorCode)
	assert.Equal(t, []errors.FieldError{{Field: "endDate", Message: "End date must be after start date."}}, body.Errors)
}

func TestAppErrorHidesDBDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AppError(c, errors.DBError("could not save", assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	assert.Len(t, c.Errors, 1)
}
