package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"
)

type entry struct {
	level  string
	msg    string
	fields map[string]any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries *[]entry
	base    map[string]any
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{entries: &[]entry{}}
}

func (l *recordingLogger) With(fields map[string]any) logger.Logger {
	merged := map[string]any{}
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{entries: l.entries, base: merged}
}

func (l *recordingLogger) log(level, msg string, fields map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all := map[string]any{}
	for k, v := range l.base {
		all[k] = v
	}
	for k, v := range fields {
		all[k] = v
	}
	*l.entries = append(*l.entries, entry{level: level, msg: msg, fields: all})
}

func (l *recordingLogger) Debug(msg string, f map[string]any) { l.log("debug", msg, f) }
func (l *recordingLogger) Info(msg string, f map[string]any)  { l.log("info", msg, f) }
func (l *recordingLogger) Warn(msg string, f map[string]any)  { l.log("warn", msg, f) }
func (l *recordingLogger) Error(msg string, f map[string]any) { l.log("error", msg, f) }

func serveWithLogger(l logger.Logger, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	RequestLogger(l)(h).ServeHTTP(rec, req)
	return rec
}

func TestWriteError_InternalErrorIsLogged(t *testing.T) {
	l := newRecordingLogger()
	cause := &apperr.StoreError{Op: "pets.list", Err: errors.New("relation does not exist")}

	rec := serveWithLogger(l, func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, cause)
	}, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")

	require.Len(t, *l.entries, 1)
	got := (*l.entries)[0]
	assert.Equal(t, "error", got.level)
	assert.Equal(t, cause, got.fields["err"])
	assert.Equal(t, "/catalog", got.fields["path"])
}

func TestWriteError_StatusMapping(t *testing.T) {
	cases := map[int]error{
		http.StatusBadRequest:         apperr.Invalid("bad", "name"),
		http.StatusNotFound:           apperr.ErrNotFound,
		http.StatusForbidden:          apperr.ErrForbidden,
		http.StatusConflict:           apperr.ErrAlreadyRated,
		http.StatusServiceUnavailable: &apperr.StoreError{Op: "x", Err: errors.New("timeout"), Retryable: true},
	}
	for status, err := range cases {
		l := newRecordingLogger()
		rec := serveWithLogger(l, func(w http.ResponseWriter, r *http.Request) {
			WriteError(w, r, err)
		}, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, status, rec.Code, "err=%v", err)
		if status == http.StatusServiceUnavailable {
			assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			assert.Len(t, *l.entries, 1)
		} else {
			assert.Empty(t, *l.entries, "client errors are not logged")
		}
	}
}

func TestDecodeJSON_RejectsOversizedBody(t *testing.T) {
	body := `{"about":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/pets", strings.NewReader(body))
	rec := httptest.NewRecorder()

	var dst struct {
		About string `json:"about"`
	}
	ok := DecodeJSON(rec, req, &dst)

	assert.False(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestDecodeJSON_AcceptsThreeInlineImages(t *testing.T) {
	img := strings.Repeat("A", MaxBodyBytes/4)
	body := `{"images":["` + img + `","` + img + `","` + img + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/pets", strings.NewReader(body))
	rec := httptest.NewRecorder()

	var dst struct {
		Images []string `json:"images"`
	}
	require.True(t, DecodeJSON(rec, req, &dst))
	assert.Len(t, dst.Images, 3)
}

func TestDecodeJSONStrict_UnknownField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/pets/1", strings.NewReader(`{"nombre":"x"}`))
	rec := httptest.NewRecorder()

	var dst struct {
		Name *string `json:"name"`
	}
	assert.False(t, DecodeJSONStrict(rec, req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
