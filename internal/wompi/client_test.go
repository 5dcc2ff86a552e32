package wompi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTokenizeCard_Created(t *testing.T) {
	var gotAuth string
	var gotBody CardTokenRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tokens/cards" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode card body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "CREATED",
			"data":   map[string]string{"id": "tok_test_123"},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, "pub_test_key", log.New(io.Discard, "", 0))
	token, err := client.TokenizeCard(context.Background(), CardTokenRequest{
		Number:     "4111111111111111",
		ExpMonth:   "12",
		ExpYear:    "28",
		CVC:        "123",
		CardHolder: "Jane Shopper",
	})
	if err != nil {
		t.Fatalf("TokenizeCard: %v", err)
	}
	if token != "tok_test_123" {
		t.Fatalf("unexpected token %q", token)
	}
	if gotAuth != "Bearer pub_test_key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotBody.Number != "4111111111111111" || gotBody.CardHolder != "Jane Shopper" {
		t.Fatalf("unexpected wire body %+v", gotBody)
	}
}

func TestTokenizeCard_NonCreatedStatusIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "DECLINED",
			"data":   map[string]string{},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, "pub_test_key", log.New(io.Discard, "", 0))
	if _, err := client.TokenizeCard(context.Background(), CardTokenRequest{}); !errors.Is(err, ErrTokenizationRejected) {
		t.Fatalf("expected ErrTokenizationRejected, got %v", err)
	}
}

func TestTokenizeCard_MissingTokenIDIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "CREATED"})
	}))
	defer srv.Close()

	client := New(srv.URL, "pub_test_key", log.New(io.Discard, "", 0))
	if _, err := client.TokenizeCard(context.Background(), CardTokenRequest{}); !errors.Is(err, ErrTokenizationRejected) {
		t.Fatalf("expected ErrTokenizationRejected, got %v", err)
	}
}

func TestAcceptanceToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/merchants/pub_test_key" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"presigned_acceptance": map[string]string{"acceptance_token": "acc_123"},
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, "pub_test_key", log.New(io.Discard, "", 0))
	token, err := client.AcceptanceToken(context.Background())
	if err != nil {
		t.Fatalf("AcceptanceToken: %v", err)
	}
	if token != "acc_123" {
		t.Fatalf("unexpected acceptance token %q", token)
	}
}
