package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool_Reuse(t *testing.T) {
	buf := getBuffer()
	assert.Zero(t, buf.Len(), "fresh buffer must be empty")
	assert.GreaterOrEqual(t, buf.Cap(), encodeBufferInitialCap)

	buf.WriteString(`{"total_entries":42}`)
	putBuffer(buf)

	again := getBuffer()
	defer putBuffer(again)
	assert.Zero(t, again.Len(), "pooled buffers must come back empty")
}

func TestBufferPool_OversizedNotReset(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0, encodeBufferMaxPooled+1))
	buf.WriteString("x")

	putBuffer(buf)

	// Oversized buffers are dropped, so putBuffer leaves them untouched.
	assert.Equal(t, 1, buf.Len())
}

func TestRespondJSON_LargePayload(t *testing.T) {
	w := httptest.NewRecorder()
	payload := map[string]string{"blob": strings.Repeat("a", encodeBufferMaxPooled)}

	respondJSON(w, http.StatusOK, payload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"blob"`)
	assert.Greater(t, w.Body.Len(), encodeBufferMaxPooled)
}
