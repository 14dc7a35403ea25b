package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semhq/campaigner/internal/web"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		isHTMX     bool
		code       int
		wantWire   int
		wantStatus int
	}{
		{"plain 404", false, http.StatusNotFound, http.StatusNotFound, http.StatusNotFound},
		{"htmx 200", true, http.StatusOK, http.StatusOK, http.StatusOK},
		{"htmx 422 becomes 200", true, http.StatusUnprocessableEntity, http.StatusOK, http.StatusUnprocessableEntity},
		{"htmx 502 becomes 200", true, http.StatusBadGateway, http.StatusOK, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := web.NewResponseWriter(rec, tt.isHTMX)
			rw.WriteHeader(tt.code)

			assert.Equal(t, tt.wantWire, rec.Code)
			assert.Equal(t, tt.wantStatus, rw.Status())
			assert.True(t, rw.Written())
		})
	}
}

func TestResponseWriter_WriteHeaderOnlyOnce(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := web.NewResponseWriter(rec, false)
	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusNotFound)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, rw.Status())
}

func TestResponseWriter_Write(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := web.NewResponseWriter(rec, false)

	n, err := rw.Write([]byte("hello world"))
	require.NoError(t, err)

	assert.Equal(t, 11, n)
	assert.Equal(t, int64(11), rw.Size())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_Hooks(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := web.NewResponseWriter(rec, false)

	var order []int
	rw.OnBeforeWrite(func() { order = append(order, 1) })
	rw.OnBeforeWrite(func() {
		order = append(order, 2)
		rw.Header().Set("Set-Cookie", "sid=1")
	})

	_, _ = rw.Write([]byte("a"))
	_, _ = rw.Write([]byte("b"))
	rw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, "sid=1", rec.Header().Get("Set-Cookie"), "hooks run before headers are sent")
	assert.Equal(t, "ab", rec.Body.String())
}

func TestResponseWriter_FlushAndUnwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := web.NewResponseWriter(rec, false)

	rw.Flush()
	assert.True(t, rec.Flushed)
	assert.Same(t, rec, rw.Unwrap())

	_, _, err := rw.Hijack()
	require.ErrorIs(t, err, http.ErrNotSupported)
}
