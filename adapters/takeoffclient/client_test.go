package takeoffclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"takeoff-cost/core/takeoff"
	"takeoff-cost/internal/errors"
)

var testDocumentID = uuid.MustParse("11111111-2222-4333-8444-555555555555")

func TestGetPageState(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != StatePath {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("documentId"); got != testDocumentID.String() {
			t.Errorf("documentId = %q", got)
		}
		if got := r.URL.Query().Get("pageNumber"); got != "2" {
			t.Errorf("pageNumber = %q", got)
		}

		json.NewEncoder(w).Encode(&takeoff.PageState{
			Zones: []takeoff.ZoneState{{Zone: &takeoff.Zone{Name: "Floor Plan"}}},
		})
	}))
	defer backend.Close()

	client := New(DefaultConfig(backend.URL))
	state, err := client.GetPageState(context.Background(), testDocumentID, 2)
	if err != nil {
		t.Fatalf("GetPageState failed: %v", err)
	}

	if len(state.Zones) != 1 || state.Zones[0].Zone.Name != "Floor Plan" {
		t.Errorf("unexpected state: %+v", state)
	}
}

func TestGetPageStateErrors(t *testing.T) {
	t.Run("non-200 response", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer backend.Close()

		_, err := New(DefaultConfig(backend.URL)).GetPageState(context.Background(), testDocumentID, 1)
		if !errors.IsType(err, errors.TypeNetwork) {
			t.Errorf("expected NETWORK_ERROR, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer backend.Close()

		_, err := New(DefaultConfig(backend.URL)).GetPageState(context.Background(), testDocumentID, 1)
		if !errors.IsType(err, errors.TypeDecode) {
			t.Errorf("expected DECODE_ERROR, got %v", err)
		}
	})

	t.Run("unreachable service", func(t *testing.T) {
		cfg := DefaultConfig("http://127.0.0.1:0")
		cfg.Timeout = 500 * time.Millisecond

		_, err := New(cfg).GetPageState(context.Background(), testDocumentID, 1)
		if !errors.IsType(err, errors.TypeNetwork) {
			t.Errorf("expected NETWORK_ERROR, got %v", err)
		}
	})
}

func TestGetPageStateRetries(t *testing.T) {
	var calls int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 2 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(&takeoff.PageState{})
	}))
	defer backend.Close()

	cfg := DefaultConfig(backend.URL)
	cfg.RetryCount = 2
	cfg.RetryDelay = 10 * time.Millisecond

	if _, err := New(cfg).GetPageState(context.Background(), testDocumentID, 1); err != nil {
		t.Fatalf("GetPageState failed: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}
