package flavor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/goomba-arcade/internal/config"
)

type genFunc func(ctx context.Context, score int, cause string) (string, error)

func (f genFunc) Generate(ctx context.Context, score int, cause string) (string, error) {
	return f(ctx, score, cause)
}

func TestQuip(t *testing.T) {
	long := strings.Repeat("word ", 30)

	tests := []struct {
		name string
		gen  Generator
		want string
	}{
		{"nil generator", nil, Fallback},
		{"error", genFunc(func(context.Context, int, string) (string, error) {
			return "", errors.New("boom")
		}), Fallback},
		{"empty", genFunc(func(context.Context, int, string) (string, error) {
			return "  ", nil
		}), EmptyFallback},
		{"quoted", genFunc(func(context.Context, int, string) (string, error) {
			return `  "Stomp or be stomped."  `, nil
		}), "Stomp or be stomped."},
		{"truncated", genFunc(func(context.Context, int, string) (string, error) {
			return long, nil
		}), strings.TrimSpace(strings.Repeat("word ", 5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quip(context.Background(), tt.gen, 100, "Killed by Enemy", 5)
			if got != tt.want {
				t.Errorf("Quip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStaticIsStable(t *testing.T) {
	s := Static{}
	a, _ := s.Generate(context.Background(), 1234, "Crushed by Piano")
	b, _ := s.Generate(context.Background(), 1234, "Crushed by Piano")
	if a != b || a == "" {
		t.Errorf("Generate() = %q then %q, want the same non-empty line", a, b)
	}

	found := false
	for _, p := range phrases["Crushed by Piano"] {
		if p == a {
			found = true
		}
	}
	if !found {
		t.Errorf("%q is not a piano phrase", a)
	}

	other, _ := s.Generate(context.Background(), 1, "Eaten by a grue")
	if other == "" {
		t.Error("unknown causes should fall back to the generic bank")
	}
}

func TestHTTPGenerate(t *testing.T) {
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(response{Message: "The Goomba abides."})
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, time.Second)
	text, err := h.Generate(context.Background(), 4200, "Defeated by Boss")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "The Goomba abides." {
		t.Errorf("Generate() = %q", text)
	}
	if got.Score != 4200 || got.Cause != "Defeated by Boss" {
		t.Errorf("server received %+v", got)
	}
}

func TestHTTPFailuresDegrade(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
	}{
		{"status", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}, time.Second},
		{"bad json", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("{not json"))
		}, time.Second},
		{"timeout", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}, 20 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			h := NewHTTP(srv.URL, tt.timeout)
			if _, err := h.Generate(context.Background(), 1, "x"); err == nil {
				t.Fatal("Generate() should fail")
			}
			if got := Quip(context.Background(), h, 1, "x", 20); got != Fallback {
				t.Errorf("Quip() = %q, want fallback", got)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	if _, ok := FromConfig(config.Flavor{}).(Static); !ok {
		t.Error("no endpoint should select the static bank")
	}
	h, ok := FromConfig(config.Flavor{Endpoint: "http://example.invalid", TimeoutMS: 250}).(*HTTP)
	if !ok {
		t.Fatal("an endpoint should select the HTTP generator")
	}
	if h.Timeout != 250*time.Millisecond {
		t.Errorf("Timeout = %v", h.Timeout)
	}
}
