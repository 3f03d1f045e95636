package storage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/storage"
)

func TestIsAbsoluteURL(t *testing.T) {
	cases := []struct {
		ref      string
		expected bool
	}{
		{"https://cdn.example.com/a.jpg", true},
		{"http://cdn.example.com/a.jpg", true},
		{"photos/2026/march.jpg", false},
		{"/photos/march.jpg", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := storage.IsAbsoluteURL(tc.ref); got != tc.expected {
			t.Fatalf("IsAbsoluteURL(%q) = %v, want %v", tc.ref, got, tc.expected)
		}
	}
}

func TestPassthroughResolverWhenDisabled(t *testing.T) {
	cfg := config.Default()
	resolver, err := storage.NewResolver(&cfg)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	got, err := resolver.Resolve(context.Background(), "photos/march.jpg")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "photos/march.jpg" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestClientResolvesBarePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if !strings.HasPrefix(r.URL.Path, "/object/sign/planner-media/") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("missing service key header")
		}
		var body struct {
			ExpiresIn int `json:"expiresIn"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ExpiresIn != 3600 {
			t.Fatalf("unexpected sign body: %+v err=%v", body, err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"signedURL": "/object/sign/planner-media/photos/march.jpg?token=abc",
		})
	}))
	defer server.Close()

	client, err := storage.NewClient(server.URL, "test-key", "planner-media", 3600)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	got, err := client.Resolve(context.Background(), "photos/march.jpg")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	expected := server.URL + "/object/sign/planner-media/photos/march.jpg?token=abc"
	if got != expected {
		t.Fatalf("Resolve = %q, want %q", got, expected)
	}
}

func TestClientPassesThroughAbsoluteURL(t *testing.T) {
	client, err := storage.NewClient("https://storage.example.com", "key", "bucket", 60)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	absolute := "https://cdn.example.com/already-public.jpg"
	got, err := client.Resolve(context.Background(), absolute)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != absolute {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestClientSurfacesSigningFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"object not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client, err := storage.NewClient(server.URL, "key", "bucket", 60)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.Resolve(context.Background(), "missing.jpg"); err == nil {
		t.Fatal("expected signing error")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := storage.NewClient("", "key", "bucket", 60); err == nil {
		t.Fatal("expected error for empty base url")
	}
	if _, err := storage.NewClient("https://s.example.com", "", "bucket", 60); err == nil {
		t.Fatal("expected error for empty service key")
	}
	if _, err := storage.NewClient("https://s.example.com", "key", "", 60); err == nil {
		t.Fatal("expected error for empty bucket")
	}
}
