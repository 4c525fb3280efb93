// internal/blast/enrich_test.go
package blast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestImageLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Escherichia_coli" {
			t.Errorf("path = %q, want /Escherichia_coli", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"title":"Escherichia coli","thumbnail":{"source":"https://img.example/ecoli.jpg"}}`))
	}))
	defer srv.Close()

	ic := NewImageClient(srv.URL)
	if got := ic.Lookup(context.Background(), "Escherichia coli"); got != "https://img.example/ecoli.jpg" {
		t.Errorf("Lookup = %q, want thumbnail source", got)
	}
}

func TestImageLookupFailuresYieldEmpty(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer notFound.Close()

	noThumb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"Obscure organism"}`))
	}))
	defer noThumb.Close()

	for _, tc := range []struct {
		name string
		ic   *ImageClient
	}{
		{"404", NewImageClient(notFound.URL)},
		{"no thumbnail", NewImageClient(noThumb.URL)},
		{"unreachable", NewImageClient("http://127.0.0.1:0")},
	} {
		if got := tc.ic.Lookup(context.Background(), "Anything"); got != "" {
			t.Errorf("%s: Lookup = %q, want empty", tc.name, got)
		}
	}
}

func TestImageLookupTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"thumbnail":{"source":"late"}}`))
	}))
	defer slow.Close()

	ic := NewImageClient(slow.URL)
	ic.Timeout = 10 * time.Millisecond
	if got := ic.Lookup(context.Background(), "Slowpoke"); got != "" {
		t.Errorf("Lookup = %q, want empty on timeout", got)
	}
}

func TestEnrichBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"thumbnail":{"source":"img:` + r.URL.Path + `"}}`))
	}))
	defer srv.Close()

	o := New(NewClient(""), Options{Images: NewImageClient(srv.URL)})
	hits := []Hit{{Name: "Escherichia coli"}, {Name: "Homo sapiens"}, {Name: ""}}
	o.enrich(context.Background(), hits)

	if hits[0].ImageURL != "img:/Escherichia_coli" {
		t.Errorf("hit 0 image = %q", hits[0].ImageURL)
	}
	if hits[1].ImageURL != "img:/Homo_sapiens" {
		t.Errorf("hit 1 image = %q", hits[1].ImageURL)
	}
	if hits[2].ImageURL != "" {
		t.Errorf("hit 2 image = %q, want empty for unnamed hit", hits[2].ImageURL)
	}
}
