package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gostaff/internal/pkg/config"
	"github.com/shandysiswandi/gostaff/internal/pkg/goerror"
	"github.com/shandysiswandi/gostaff/internal/pkg/instrument"
	"github.com/shandysiswandi/gostaff/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type echoBody struct {
	Name string `json:"name"`
}

func newTestRouter(t *testing.T, yaml string) *Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	r := NewRouter(Config{Config: cfg, UUID: fixedID("generated-id"), Instrument: instrument.NewNoop()})

	r.POST("/echo", func(req *Request) (any, error) {
		var in echoBody
		if err := req.DecodeBody(&in); err != nil {
			return nil, err
		}
		if in.Name == "" {
			return nil, goerror.NewInvalidInput(validator.V10ValidationError{
				{Field: "name", Message: "Name is required."},
				{Field: "phone", Message: "Phone is required."},
			})
		}
		return in, nil
	})
	r.POST("/details", func(*Request) (any, error) {
		return nil, goerror.NewInvalidInput(nil, "first", "second")
	})
	r.POST("/empty", func(*Request) (any, error) { return nil, nil })
	r.POST("/boom", func(*Request) (any, error) { panic("boom") })
	r.POST("/server", func(*Request) (any, error) { return nil, goerror.NewServer(errors.New("db down")) })
	r.POST("/plain", func(*Request) (any, error) { return nil, errors.New("plain") })

	return r
}

func serve(r http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Responses(t *testing.T) {
	r := newTestRouter(t, "app: {}")

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
		wantBody string
	}{
		{name: "echo without envelope", method: http.MethodPost, target: "/echo", body: `{"name":"Jane"}`, wantCode: http.StatusOK, wantBody: `{"name":"Jane"}`},
		{name: "validation messages", method: http.MethodPost, target: "/echo", body: `{"name":""}`, wantCode: http.StatusBadRequest, wantBody: `["Name is required.","Phone is required."]`},
		{name: "detail messages", method: http.MethodPost, target: "/details", body: `{}`, wantCode: http.StatusBadRequest, wantBody: `["first","second"]`},
		{name: "malformed json", method: http.MethodPost, target: "/echo", body: `{"name":`, wantCode: http.StatusBadRequest, wantBody: `["Invalid request body"]`},
		{name: "unknown field ignored", method: http.MethodPost, target: "/echo", body: `{"name":"Jane","age":3}`, wantCode: http.StatusOK, wantBody: `{"name":"Jane"}`},
		{name: "wrong field type", method: http.MethodPost, target: "/echo", body: `{"name":7}`, wantCode: http.StatusBadRequest, wantBody: `["Invalid request body"]`},
		{name: "trailing value", method: http.MethodPost, target: "/echo", body: `{"name":"Jane"}{}`, wantCode: http.StatusBadRequest, wantBody: `["Invalid request body"]`},
		{name: "array body", method: http.MethodPost, target: "/echo", body: `[]`, wantCode: http.StatusBadRequest, wantBody: `["Invalid request body"]`},
		{name: "empty body", method: http.MethodPost, target: "/echo", body: ``, wantCode: http.StatusBadRequest, wantBody: `["Invalid request body"]`},
		{name: "server error", method: http.MethodPost, target: "/server", wantCode: http.StatusInternalServerError, wantBody: `{"message":"Internal server error"}`},
		{name: "unclassified error", method: http.MethodPost, target: "/plain", wantCode: http.StatusInternalServerError, wantBody: `{"message":"Internal server error"}`},
		{name: "panic", method: http.MethodPost, target: "/boom", wantCode: http.StatusInternalServerError, wantBody: `{"message":"Internal server error"}`},
		{name: "not found", method: http.MethodPost, target: "/api/unknown", body: `{}`, wantCode: http.StatusNotFound, wantBody: `{"message":"endpoint not found"}`},
		{name: "method not allowed", method: http.MethodGet, target: "/echo", wantCode: http.StatusMethodNotAllowed, wantBody: `{"message":"method not allowed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(r, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRouter_NoContent(t *testing.T) {
	rec := serve(newTestRouter(t, "app: {}"), http.MethodPost, "/empty", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouter_CorrelationID(t *testing.T) {
	r := newTestRouter(t, "app: {}")

	t.Run("generated", func(t *testing.T) {
		rec := serve(r, http.MethodPost, "/echo", `{"name":"Jane"}`)
		assert.Equal(t, "generated-id", rec.Header().Get(HeaderCorrelationID))
	})

	t.Run("propagated", func(t *testing.T) {
		rec := serve(r, http.MethodPost, "/echo", `{"name":"Jane"}`, HeaderCorrelationID, "  abc-123 ")
		assert.Equal(t, "abc-123", rec.Header().Get(HeaderCorrelationID))
	})

	t.Run("request id fallback", func(t *testing.T) {
		rec := serve(r, http.MethodPost, "/echo", `{"name":"Jane"}`, HeaderRequestID, "req-9")
		assert.Equal(t, "req-9", rec.Header().Get(HeaderCorrelationID))
	})

	t.Run("truncated", func(t *testing.T) {
		rec := serve(r, http.MethodPost, "/echo", `{"name":"Jane"}`, HeaderCorrelationID, strings.Repeat("x", 200))
		assert.Len(t, rec.Header().Get(HeaderCorrelationID), maxCorrelationIDLen)
	})
}

func TestRouter_Maintenance(t *testing.T) {
	r := newTestRouter(t, `
app:
  maintenance:
    endpoints:
      - post /echo
      - /server
`)

	rec := serve(r, http.MethodPost, "/echo", `{"name":"Jane"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"service is under maintenance"}`, rec.Body.String())

	rec = serve(r, http.MethodPost, "/server", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = serve(r, http.MethodPost, "/empty", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "true client ip", headers: map[string]string{"True-Client-IP": "1.1.1.1", "X-Real-IP": "2.2.2.2"}, remote: "9.9.9.9:1", want: "1.1.1.1"},
		{name: "first forwarded", headers: map[string]string{"X-Forwarded-For": "3.3.3.3, 4.4.4.4"}, remote: "9.9.9.9:1", want: "3.3.3.3"},
		{name: "invalid header falls through", headers: map[string]string{"X-Real-IP": "nope"}, remote: "9.9.9.9:1", want: "9.9.9.9"},
		{name: "nothing usable", remote: "pipe", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, realIP(req))
		})
	}
}

func TestInternalFrames(t *testing.T) {
	stack := []byte("goroutine 1 [running]:\n" +
		"main.main()\n" +
		"\t/src/gostaff/internal/staff/usecase/validate.go:42 +0x1d\n" +
		"\t/usr/local/go/src/runtime/proc.go:250 +0x1d\n")

	assert.Equal(t, []string{"internal/staff/usecase/validate.go:42"}, internalFrames(stack))
}

func TestLoggableBody(t *testing.T) {
	keys := instrument.MaskKeys([]string{"email"})

	assert.Nil(t, loggableBody(nil, false, keys))
	assert.Equal(t, map[string]any{"email": instrument.MaskValue, "name": "Jane"},
		loggableBody([]byte(`{"email":"a@b.c","name":"Jane"}`), false, keys))
	assert.Equal(t, "plain text", loggableBody([]byte("plain text"), false, keys))
	assert.Equal(t, map[string]any{"body": "{\"na", "truncated": true}, loggableBody([]byte(`{"na`), true, keys))

	var decoded any
	require.NoError(t, json.Unmarshal([]byte(`["x"]`), &decoded))
	assert.Equal(t, decoded, loggableBody([]byte(`["x"]`), false, keys))
}
