package apiserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/katelinlis/SocialHub/internal/app/store/memstore"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *server {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return newServer(memstore.New(), logger)
}

func do(t *testing.T, s *server, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(b))
		reader = buf
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, reader)
	s.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestServer_Health(t *testing.T) {
	s := testServer(t)

	rec := do(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_Preflight(t *testing.T) {
	s := testServer(t)

	rec := do(t, s, http.MethodOptions, "/posts/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestServer_UnknownRoute(t *testing.T) {
	s := testServer(t)

	rec := do(t, s, http.MethodGet, "/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, "/nope/deeper", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	s := testServer(t)

	rec := do(t, s, http.MethodGet, "/posts/1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(t, s, http.MethodPut, "/feed", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_PreflightAnyPath(t *testing.T) {
	s := testServer(t)

	for _, target := range []string{"/nope", "/friends", "/friend-requests/accept"} {
		rec := do(t, s, http.MethodOptions, target, nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), target)
		assert.Empty(t, rec.Body.String(), target)
	}
}

func TestServer_Feed(t *testing.T) {
	s := testServer(t)

	rec := do(t, s, http.MethodGet, "/feed", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed map[string]json.RawMessage
	decodeBody(t, rec, &feed)
	assert.Contains(t, feed, "currentUser")
	assert.Contains(t, feed, "posts")
	assert.Contains(t, feed, "friendRequests")
	assert.JSONEq(t, `[]`, string(feed["friends"]))

	var requests []map[string]interface{}
	require.NoError(t, json.Unmarshal(feed["friendRequests"], &requests))
	require.Len(t, requests, 2)
	assert.Contains(t, requests[0], "from")

	var posts []map[string]interface{}
	require.NoError(t, json.Unmarshal(feed["posts"], &posts))
	require.Len(t, posts, 3)
	assert.Equal(t, true, posts[1]["likedByUser"])
	assert.Nil(t, posts[2]["images"])
	assert.Equal(t, []interface{}{}, posts[1]["comments"])
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, newLogger("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, newLogger("loud").GetLevel())
}
