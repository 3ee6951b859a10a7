package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/gostaff/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
app:
  tz: UTC
  server:
    http:
      address: "127.0.0.1:0"
      read_timeout_seconds: 5
      read_header_timeout_seconds: 5
      write_timeout_seconds: 5
      idle_timeout_seconds: 5
    cors: "http://localhost:3000"
instrument:
  enabled: false
  service_name: gostaff-test
modules:
  employee:
    enabled: %EMPLOYEE%
  staff:
    enabled: true
`

func startTestApp(t *testing.T, employeeEnabled bool) string {
	t.Helper()

	raw := strings.ReplaceAll(testConfig, "%EMPLOYEE%", strconv.FormatBool(employeeEnabled))
	cfg, err := config.NewViperFromBytes("yaml", []byte(raw))
	require.NoError(t, err)

	application := NewWithConfig(cfg)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errChan := application.Serve(l)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		application.Stop(ctx)
		application.Stop(ctx)
		assert.ErrorIs(t, <-errChan, http.ErrServerClosed)
	})

	return "http://" + l.Addr().String()
}

func post(t *testing.T, url, body string) (int, string) {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(raw)
}

func TestApp_Endpoints(t *testing.T) {
	baseURL := startTestApp(t, true)

	t.Run("employee accepted", func(t *testing.T) {
		code, body := post(t, baseURL+"/api/employee",
			`{"name":"Jane Appleseed","dateOfBirth":"1990-01-01","email":"jane@example.com","phone":"0812345678","hourlySalary":250}`)

		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"name":"Jane Appleseed","dateOfBirth":"1990-01-01","email":"jane@example.com","phone":"0812345678","hourlySalary":250}`, body)
	})

	t.Run("staff rejected", func(t *testing.T) {
		code, body := post(t, baseURL+"/api/staff", `{"name":"Bob","email":"bob","phone":"+1","hourlySalary":10}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.JSONEq(t, `[
			"Name must be between 10 and 250 characters.",
			"Email address is not valid.",
			"Phone is not valid.",
			"Hourly salary must be between 30 and 400."
		]`, body)
	})

	t.Run("malformed body", func(t *testing.T) {
		code, _ := post(t, baseURL+"/api/staff", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestApp_DisabledModule(t *testing.T) {
	baseURL := startTestApp(t, false)

	code, _ := post(t, baseURL+"/api/employee", `{}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = post(t, baseURL+"/api/staff",
		`{"name":"Robert Smith","email":"bob@example.com","phone":"0812345678","hourlySalary":30}`)
	assert.Equal(t, http.StatusOK, code)
}
