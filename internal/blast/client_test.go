// internal/blast/client_test.go
package blast

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSubmitParsesRIDAndRTOE(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("CMD") != "Put" || r.PostForm.Get("PROGRAM") != "blastn" {
			t.Errorf("form = %v", r.PostForm)
		}
		if r.PostForm.Get("DATABASE") != "nt" || r.PostForm.Get("QUERY") != "ATGC" {
			t.Errorf("form = %v", r.PostForm)
		}
		_, _ = w.Write([]byte("QBlastInfoBegin\n    RID = XYZ789\n    RTOE = 24\nQBlastInfoEnd\n"))
	}))
	defer srv.Close()

	rid, rtoe, err := NewClient(srv.URL).Submit(context.Background(), Direct, "nt", "ATGC")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rid != "XYZ789" {
		t.Errorf("rid = %q, want XYZ789", rid)
	}
	if rtoe != 24*time.Second {
		t.Errorf("rtoe = %v, want 24s", rtoe)
	}
}

func TestSubmitMissingRID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("nothing useful\n"))
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL).Submit(context.Background(), Direct, "nt", "ATGC")
	if !errors.Is(err, ErrNoRID) {
		t.Errorf("Submit err = %v, want ErrNoRID", err)
	}
}

func TestReadyStates(t *testing.T) {
	body := "Status=WAITING\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("RID") != "XYZ789" {
			t.Errorf("RID = %q", r.URL.Query().Get("RID"))
		}
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ready, err := c.Ready(context.Background(), Direct, "XYZ789")
	if err != nil || ready {
		t.Errorf("Ready(WAITING) = %v,%v, want false,nil", ready, err)
	}
	body = "Status=READY\n"
	ready, err = c.Ready(context.Background(), Direct, "XYZ789")
	if err != nil || !ready {
		t.Errorf("Ready(READY) = %v,%v, want true,nil", ready, err)
	}
}
