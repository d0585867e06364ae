package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"takeoff-cost/core/takeoff"
)

func testChange() *takeoff.ChangeNotification {
	return &takeoff.ChangeNotification{
		DocumentID: uuid.MustParse("11111111-2222-4333-8444-555555555555"),
		PageNumber: 1,
		Actions: []takeoff.ChangeAction{
			{OrderNumber: 1, ActionName: takeoff.ActionCreate, EntityType: takeoff.EntityItem},
		},
	}
}

func TestSendDeliversSignedPayload(t *testing.T) {
	const secret = "hook-secret"

	var gotBody []byte
	var gotSig string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSig = r.Header.Get(SignatureHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	cfg := DefaultConfig(backend.URL)
	cfg.Secret = secret
	cfg.Headers["X-Custom"] = "demo"

	if err := New(cfg).Send(context.Background(), testChange()); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	var decoded takeoff.ChangeNotification
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if decoded.PageNumber != 1 || len(decoded.Actions) != 1 {
		t.Errorf("unexpected payload: %+v", decoded)
	}

	if gotSig == "" {
		t.Fatal("missing signature header")
	}
	if !VerifySignature(gotBody, gotSig, secret) {
		t.Error("signature does not verify")
	}
	if VerifySignature(gotBody, gotSig, "wrong-secret") {
		t.Error("signature verified with wrong secret")
	}
}

func TestSendRetriesUntilSuccess(t *testing.T) {
	var calls int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	cfg := DefaultConfig(backend.URL)
	cfg.RetryCount = 3
	cfg.RetryDelay = 10 * time.Millisecond

	if err := New(cfg).Send(context.Background(), testChange()); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestSendGivesUpAfterRetries(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer backend.Close()

	cfg := DefaultConfig(backend.URL)
	cfg.RetryCount = 1
	cfg.RetryDelay = 10 * time.Millisecond

	if err := New(cfg).Send(context.Background(), testChange()); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
}

func TestVerifySignatureAcceptsPrefixedAndBare(t *testing.T) {
	payload := []byte(`{"documentId":"x"}`)
	sig := sign(payload, "s")

	if !VerifySignature(payload, sig, "s") {
		t.Error("bare signature rejected")
	}
	if !VerifySignature(payload, "sha256="+sig, "s") {
		t.Error("prefixed signature rejected")
	}
	if VerifySignature(payload, sig, "other") {
		t.Error("signature verified with wrong secret")
	}
}
