package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prior-it/customers/config"
	"github.com/prior-it/customers/core"
	"github.com/prior-it/customers/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type State struct {
	closed *atomic.Bool
}

func (s State) Close(_ context.Context) {
	s.closed.Store(true)
}

func newState() State {
	return State{closed: &atomic.Bool{}}
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:            "test",
			Host:            "127.0.0.1",
			RequestTimeout:  5,
			ShutdownTimeout: 1,
		},
		Log: config.LogConfig{Format: config.LogFormatJSON, Level: config.LogLevelError},
	}
}

func newServer() *server.Server[State] {
	s := server.New(newState(), testConfig())
	s.AttachDefaultMiddleware()
	return s
}

func serve(s http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	s.ServeHTTP(recorder, req)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var response server.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	return response
}

func TestErrorHandler(t *testing.T) {
	t.Run("ok: typed failures are rendered with their message", func(t *testing.T) {
		s := newServer()
		s.Get("/missing", func(_ *server.Exchange, _ State) error {
			return core.NewError(core.ErrNotFound, "No Customer present with Id %v", 999)
		})

		recorder := serve(s, http.MethodGet, "/missing", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		response := decodeError(t, recorder)
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
		assert.Equal(t, "No Customer present with Id 999", response.Message)
		assert.Equal(t, "uri=/missing", response.Description)
		assert.False(t, response.Timestamp.IsZero())
	})

	t.Run("ok: validation detail is used as description", func(t *testing.T) {
		s := newServer()
		s.Post("/validate", func(_ *server.Exchange, _ State) error {
			return core.NewError(core.ErrValidation, "Input fields must not be null/empty").
				WithDetail("address.city must not be blank")
		})

		recorder := serve(s, http.MethodPost, "/validate", "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		response := decodeError(t, recorder)
		assert.Equal(t, "address.city must not be blank", response.Description)
	})

	t.Run("ok: internal errors are not exposed", func(t *testing.T) {
		s := newServer()
		s.Get("/boom", func(_ *server.Exchange, _ State) error {
			return errors.New("password=hunter2")
		})

		recorder := serve(s, http.MethodGet, "/boom", "")
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		response := decodeError(t, recorder)
		assert.NotContains(t, response.Message, "hunter2")
	})

	t.Run("ok: unknown route", func(t *testing.T) {
		recorder := serve(newServer(), http.MethodGet, "/nothing/here", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		response := decodeError(t, recorder)
		assert.Contains(t, response.Message, "/nothing/here")
	})

	t.Run("ok: wrong method", func(t *testing.T) {
		s := newServer()
		s.Get("/only-get", func(_ *server.Exchange, _ State) error { return nil })

		recorder := serve(s, http.MethodPatch, "/only-get", "")
		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{core.ErrNotFound, http.StatusNotFound},
		{core.ErrAlreadyExists, http.StatusConflict},
		{core.ErrInvalidRequest, http.StatusBadRequest},
		{core.ErrValidation, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", errors.Join(core.ErrNotFound, errors.New("no rows"))), http.StatusNotFound},
	}
	for _, c := range cases {
		assert.Equal(t, c.code, server.StatusCode(c.err), c.err.Error())
	}
}

func TestExchange(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("ok: path values and body", func(t *testing.T) {
		s := newServer()
		s.Patch("/items/{id}", func(ex *server.Exchange, _ State) error {
			var p payload
			if err := ex.ParseBody(&p); err != nil {
				return err
			}
			ex.RenderText(ex.GetPath("id") + ":" + p.Name)
			return nil
		})

		recorder := serve(s, http.MethodPatch, "/items/42", `{"name":"x","unknown":true}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "42:x", recorder.Body.String())
		assert.Contains(t, recorder.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("err: malformed body", func(t *testing.T) {
		s := newServer()
		s.Post("/items", func(ex *server.Exchange, _ State) error {
			var p payload
			return ex.ParseBody(&p)
		})

		recorder := serve(s, http.MethodPost, "/items", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("ok: json rendering", func(t *testing.T) {
		s := newServer()
		s.Get("/items", func(ex *server.Exchange, _ State) error {
			ex.RenderJSON([]payload{{Name: "a"}})
			return nil
		})

		recorder := serve(s, http.MethodGet, "/items/", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[{"name":"a"}]`, recorder.Body.String())
	})
}

func TestStart(t *testing.T) {
	t.Run("ok: cancelling the context shuts down and closes the state", func(t *testing.T) {
		state := newState()
		s := server.New(state, testConfig())
		s.Get("/ping", func(ex *server.Exchange, _ State) error {
			ex.RenderText("pong")
			return nil
		})

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- s.Start(ctx, listener)
		}()

		url := "http://" + listener.Addr().String() + "/ping"
		require.Eventually(t, func() bool {
			resp, err := http.Get(url) //nolint:noctx
			if err != nil {
				return false
			}
			_ = resp.Body.Close()
			return resp.StatusCode == http.StatusOK
		}, 2*time.Second, 10*time.Millisecond)

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
		assert.True(t, state.closed.Load())
	})
}
