package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindError(t *testing.T, target any, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c.ShouldBindJSON(target)
}

func TestBindingErrorMessageRequired(t *testing.T) {
	var req RegisterRequest
	err := bindError(t, &req, `{"email":"jane@example.com","password":"password123","collegeId":"C-1"}`)
	require.Error(t, err)

	assert.Equal(t, "name is required", BindingErrorMessage(err))
}

func TestBindingErrorMessageMin(t *testing.T) {
	var req RegisterRequest
	err := bindError(t, &req, `{"name":"Jane","email":"jane@example.com","password":"short","collegeId":"C-1"}`)
	require.Error(t, err)

	assert.Equal(t, "password must be at least 8 characters", BindingErrorMessage(err))
}

func TestBindingErrorMessageEmail(t *testing.T) {
	var req RegisterRequest
	err := bindError(t, &req, `{"name":"Jane","email":"not-an-email","password":"password123","collegeId":"C-1"}`)
	require.Error(t, err)

	assert.Equal(t, "email must be a valid email address", BindingErrorMessage(err))
}

func TestBindingErrorMessageMalformedJSON(t *testing.T) {
	var req RegisterRequest
	err := bindError(t, &req, `{"name":`)
	require.Error(t, err)

	assert.Equal(t, "Invalid request body", BindingErrorMessage(err))
}
