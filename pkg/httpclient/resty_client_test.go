package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientPostSendsNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("expected empty body, got %q", body)
		}
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`"conflict"`))
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	resp, err := client.Post(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if resp.StatusCode() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.StatusCode())
	}
	if string(resp.Body()) != `"conflict"` {
		t.Fatalf("unexpected body %q", resp.Body())
	}
}

func TestRestyClientGetForwardsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("X-Test"); got != "1" {
			t.Errorf("missing header, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	if _, err := client.Get(context.Background(), srv.URL, map[string]string{"X-Test": "1"}); err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestRestyClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewRestyClient(time.Second)
	if _, err := client.Post(context.Background(), url, nil); err == nil {
		t.Fatalf("expected error for closed server")
	}
}
