package appium

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

func TestNewSession(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := rec.add(r)
		if req.Path == "/session" && req.Method == http.MethodPost {
			writeJSON(w, map[string]interface{}{
				"value": map[string]interface{}{
					"sessionId": "test-session-123",
					"capabilities": map[string]interface{}{
						"platformName":    "Android",
						"platformVersion": "14",
					},
				},
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewSession(context.Background(), server.URL, map[string]interface{}{
		"platformName":          "Android",
		"appium:automationName": "UiAutomator2",
	}, WithHTTPClient(server.Client()), WithLogger(zap.NewNop()))
	require.NoError(t, err)

	assert.Equal(t, "test-session-123", client.SessionID())
	assert.Equal(t, "android", client.Platform())

	body := gjson.Parse(rec.last(t).Body)
	assert.Equal(t, "Android", body.Get("capabilities.alwaysMatch.platformName").String())
	assert.Contains(t, rec.last(t).Body, `"appium:automationName":"UiAutomator2"`)
}

func TestNewSession_NoSessionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"value": map[string]interface{}{}})
	}))
	defer server.Close()

	_, err := NewSession(context.Background(), server.URL, nil,
		WithHTTPClient(server.Client()), WithLogger(zap.NewNop()))
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestNewSession_NotCreated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "session not created", "no device connected")
	}))
	defer server.Close()

	_, err := NewSession(context.Background(), server.URL, nil,
		WithHTTPClient(server.Client()), WithLogger(zap.NewNop()))
	require.Error(t, err)

	var wdErr *WebDriverError
	require.True(t, errors.As(err, &wdErr))
	assert.Equal(t, "session not created", wdErr.Code)
	assert.Contains(t, err.Error(), "failed to create session")
}

func TestClient_Close(t *testing.T) {
	client, rec := replyingClient(t, nil)

	require.NoError(t, client.Close(context.Background()))

	req := rec.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/session/s1", req.Path)
	assert.Empty(t, req.Body)
}

func TestClient_CloseTwice(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		if len(rec.all()) > 1 {
			writeError(w, http.StatusNotFound, "invalid session id", "session is gone")
			return
		}
		writeJSON(w, map[string]interface{}{"value": nil})
	})

	require.NoError(t, client.Close(context.Background()))
	require.NoError(t, client.Close(context.Background()))
	assert.Len(t, rec.all(), 1)
}

func TestClient_CloseRetriesAfterFailure(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		if len(rec.all()) == 1 {
			writeError(w, http.StatusInternalServerError, "unknown error", "busy")
			return
		}
		writeJSON(w, map[string]interface{}{"value": nil})
	})

	require.Error(t, client.Close(context.Background()))
	require.NoError(t, client.Close(context.Background()))
	assert.Len(t, rec.all(), 2)
}

func TestClient_Issue(t *testing.T) {
	client, rec := replyingClient(t, "<hierarchy/>")

	value, err := client.Issue(context.Background(), Custom{Method: http.MethodGet, Path: "source"})
	require.NoError(t, err)
	assert.JSONEq(t, `"<hierarchy/>"`, string(value))
	assert.Equal(t, "/session/s1/source", rec.last(t).Path)
}

func TestClient_IssueRoutingErrorSendsNothing(t *testing.T) {
	client, rec := replyingClient(t, nil)

	_, err := client.Issue(context.Background(), FindElementIn{By: ByID("x"), Context: "a/b"})
	assert.ErrorIs(t, err, ErrRouting)
	assert.Empty(t, rec.all())
}

func TestClient_Execute(t *testing.T) {
	client, rec := replyingClient(t, "done")

	value, err := client.ExecuteMobile(context.Background(), "shell", map[string]interface{}{
		"command": "echo",
		"args":    []string{"hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, `"done"`, string(value))

	req := rec.last(t)
	assert.Equal(t, "/session/s1/execute/sync", req.Path)
	assert.JSONEq(t, `{"script":"mobile: shell","args":[{"command":"echo","args":["hi"]}]}`, req.Body)

	_, err = client.Execute(context.Background(), "return 1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"script":"return 1","args":[]}`, rec.last(t).Body)
}

func TestDecode_WrongShape(t *testing.T) {
	_, err := decode[string]([]byte(`42`), nil)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	sentinel := errors.New("boom")
	_, err = decode[string](nil, sentinel)
	assert.Same(t, sentinel, err)
}
