package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xaenox/campus-chatbot/internal/chat"
	"github.com/xaenox/campus-chatbot/internal/storage"
)

func newTestServer() *Server {
	store := storage.NewSeededMemoryStorage()
	service := chat.NewService(store, nil, 0, zap.NewNop())
	return New(service, store, ":0", zap.NewNop())
}

func postChat(t *testing.T, router http.Handler, body string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestChatEndpoint(t *testing.T) {
	router := newTestServer().Router()

	code, resp := postChat(t, router, `{"message": "How do I apply for admission?"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, resp["reply"], "[Admissions]")
	assert.Contains(t, resp["reply"], "Visit the admissions portal")
}

func TestChatEndpointEmptyMessage(t *testing.T) {
	router := newTestServer().Router()

	for _, body := range []string{`{}`, `{"message": ""}`, ``, `not json`} {
		code, resp := postChat(t, router, body)
		assert.Equal(t, http.StatusOK, code, "body %q", body)
		assert.Equal(t, chat.GenericFallback, resp["reply"], "body %q", body)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestInitDBEndpoint(t *testing.T) {
	router := newTestServer().Router()

	req := httptest.NewRequest(http.MethodPost, "/admin/init_db", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Dataset is queryable right after a reset.
	code, resp := postChat(t, router, `{"message": "gym equipment"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, resp["reply"], "Building A")
}

func TestIndexServesChatPage(t *testing.T) {
	router := newTestServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "Campus Chatbot"))
}
