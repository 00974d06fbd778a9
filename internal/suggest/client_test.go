package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendPostsTemplateParams(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != pathSend {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "svc", "tpl", "pub")
	if err := c.Send(context.Background(), "add Pichu please"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got.ServiceID != "svc" || got.TemplateID != "tpl" || got.UserID != "pub" {
		t.Errorf("ids: %+v", got)
	}
	if got.TemplateParams["message"] != "add Pichu please" {
		t.Errorf("params: %v", got.TemplateParams)
	}
}

func TestSendErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "svc", "tpl", "bad")
	err := c.Send(context.Background(), "hello")
	if err == nil || !strings.Contains(err.Error(), "400") || !strings.Contains(err.Error(), "Public Key") {
		t.Fatalf("expected API error, got %v", err)
	}

	if err := c.Send(context.Background(), "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}

	unconfigured := NewClient(srv.URL, "", "tpl", "pub")
	if err := unconfigured.Send(context.Background(), "hello"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNewClientNormalizesBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "https://api.emailjs.com"},
		{"api.example.com/", "https://api.example.com"},
		{"http://localhost:8080", "http://localhost:8080"},
	}
	for _, tt := range tests {
		if got := NewClient(tt.in, "", "", "").baseURL; got != tt.want {
			t.Errorf("NewClient(%q).baseURL = %q, want %q", tt.in, got, tt.want)
		}
	}
}
