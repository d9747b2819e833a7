package appium

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Endpoint(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"find element", FindElement{By: ByID("x")}, "session/abc/element"},
		{"find elements", FindElements{By: ByID("x")}, "session/abc/elements"},
		{"find element in", FindElementIn{By: ByID("x"), Context: "el-1"}, "session/abc/element/el-1/element"},
		{"find elements in", FindElementsIn{By: ByID("x"), Context: "el-1"}, "session/abc/element/el-1/elements"},
		{"custom", Custom{Method: http.MethodGet, Path: "source"}, "session/abc/source"},
		{"custom leading slash", Custom{Method: http.MethodGet, Path: "/appium/settings"}, "session/abc/appium/settings"},
		{"custom session root", Custom{Method: http.MethodDelete}, "session/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.Endpoint("abc")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommand_FindBody(t *testing.T) {
	cmds := []Command{
		FindElement{By: ByAccessibilityID("Go")},
		FindElements{By: ByAccessibilityID("Go")},
		FindElementIn{By: ByAccessibilityID("Go"), Context: "e"},
		FindElementsIn{By: ByAccessibilityID("Go"), Context: "e"},
	}
	for _, cmd := range cmds {
		method, body, err := cmd.MethodAndBody()
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, method)
		assert.JSONEq(t, `{"using":"accessibility id","value":"Go"}`, string(body))
	}
}

func TestCustom_MethodAndBody(t *testing.T) {
	t.Run("no body", func(t *testing.T) {
		method, body, err := Custom{Method: http.MethodGet, Path: "source"}.MethodAndBody()
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, method)
		assert.Nil(t, body)
	})

	t.Run("marshalled body", func(t *testing.T) {
		_, body, err := Custom{Method: http.MethodPost, Path: "url", Body: map[string]string{"url": "app://x"}}.MethodAndBody()
		require.NoError(t, err)
		assert.JSONEq(t, `{"url":"app://x"}`, string(body))
	})

	t.Run("raw body is sent verbatim", func(t *testing.T) {
		raw := json.RawMessage(`{"a": 1}`)
		_, body, err := Custom{Method: http.MethodPost, Body: raw}.MethodAndBody()
		require.NoError(t, err)
		assert.Equal(t, `{"a": 1}`, string(body))
	})

	t.Run("empty method", func(t *testing.T) {
		_, _, err := Custom{Path: "source"}.MethodAndBody()
		assert.ErrorIs(t, err, ErrRouting)
	})

	t.Run("unmarshallable body", func(t *testing.T) {
		_, _, err := Custom{Method: http.MethodPost, Body: make(chan int)}.MethodAndBody()
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestCommand_RoutingErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		session string
	}{
		{"empty session", FindElement{By: ByID("x")}, ""},
		{"session with slash", FindElements{By: ByID("x")}, "a/b"},
		{"session with query", Custom{Method: http.MethodGet, Path: "source"}, "a?b"},
		{"session with fragment", Custom{Method: http.MethodGet}, "a#b"},
		{"empty context", FindElementIn{By: ByID("x")}, "abc"},
		{"context with slash", FindElementsIn{By: ByID("x"), Context: "../x"}, "abc"},
		{"custom path escaping session", Custom{Method: http.MethodGet, Path: "../../status"}, "abc"},
		{"custom path with inner dot-dot", Custom{Method: http.MethodGet, Path: "element/../../x"}, "abc"},
		{"custom path with dot", Custom{Method: http.MethodGet, Path: "./source"}, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.Endpoint(tt.session)
			assert.ErrorIs(t, err, ErrRouting)
			assert.False(t, IsNotFound(err))
		})
	}
}
