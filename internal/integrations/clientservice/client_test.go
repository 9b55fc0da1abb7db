package clientservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

func TestGetClient(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/internal/clients/7", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"name":"Anna","surname":"Petrova","email":"anna@example.com","can_book":true}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, stubLogger{})
		got, err := client.GetClient(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.True(t, got.CanBook)
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, stubLogger{})
		_, err := client.GetClient(context.Background(), 404)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("unexpected status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, stubLogger{})
		_, err := client.GetClient(context.Background(), 7)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{broken`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, stubLogger{})
		_, err := client.GetClient(context.Background(), 7)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
