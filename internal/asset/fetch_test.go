package asset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchRejectsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, _, err := Fetch(context.Background(), srv.URL+"/missing.mp3")
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if le.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", le.Status)
	}
	if !strings.Contains(le.Error(), "404") {
		t.Fatalf("expected numeric status in message, got %q", le.Error())
	}
}

func TestFetchReturnsBodyAndName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	data, name, err := Fetch(context.Background(), srv.URL+"/music/track.mp3")
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected body %q", data)
	}
	if name != "track.mp3" {
		t.Fatalf("expected name track.mp3, got %q", name)
	}
}

func TestFetchMissingLocalFile(t *testing.T) {
	_, _, err := Fetch(context.Background(), "/no/such/file.mp3")
	if err == nil {
		t.Fatal("expected error for missing local file")
	}
	var le *LoadError
	if errors.As(err, &le) {
		t.Fatal("local read failure must not be a LoadError")
	}
}

func TestIsURL(t *testing.T) {
	cases := []struct {
		target string
		want   bool
	}{
		{"https://example.com/a.mp3", true},
		{"http://example.com/a.mp3", true},
		{"./a.mp3", false},
		{"ftp://example.com/a.mp3", false},
	}
	for _, c := range cases {
		if got := IsURL(c.target); got != c.want {
			t.Fatalf("IsURL(%q) = %v, want %v", c.target, got, c.want)
		}
	}
}
