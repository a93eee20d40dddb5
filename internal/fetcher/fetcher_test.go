package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/tanabodee/attendly/internal/errors"
)

const samplePage = `<html><body><table>` +
	`<tr><th>No.</th><th>Emp No.</th><th>Name</th><th>Date/Time</th></tr>` +
	`<tr><td>1</td><td>C282811</td><td>Somchai</td><td>11/03/2024 07:55:00</td></tr>` +
	`</table></body></html>`

// stubStrategy ignores the target and points at a test server.
type stubStrategy struct {
	name string
	url  string
}

func (s stubStrategy) Name() string      { return s.name }
func (s stubStrategy) URL(string) string { return s.url }

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchPrimarySucceeds(t *testing.T) {
	srv := newServer(t, http.StatusOK, samplePage)

	f := New("http://example.invalid/report", stubStrategy{"primary", srv.URL})
	records, err := f.Fetch(context.Background(), "C282811")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(records) != 1 || records[0].EmpNo != "C282811" {
		t.Fatalf("Fetch() = %+v, want one record for C282811", records)
	}
}

func TestFetchFallsBackToAlternate(t *testing.T) {
	bad := newServer(t, http.StatusBadGateway, "upstream error")
	good := newServer(t, http.StatusOK, samplePage)

	f := New("http://example.invalid/report",
		stubStrategy{"primary", bad.URL},
		stubStrategy{"backup", good.URL},
	)

	records, err := f.Fetch(context.Background(), "C282811")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Fetch() returned %d records, want 1 from the backup relay", len(records))
	}
}

func TestFetchStructureFailureEscalates(t *testing.T) {
	// A large rowless page fails the parse, which must count against the
	// relay that served it and fall through to the next one.
	junk := newServer(t, http.StatusOK, "<html><body>"+strings.Repeat("<p>captcha</p>", 60)+"</body></html>")
	good := newServer(t, http.StatusOK, samplePage)

	f := New("http://example.invalid/report",
		stubStrategy{"primary", junk.URL},
		stubStrategy{"backup", good.URL},
	)

	records, err := f.Fetch(context.Background(), "C282811")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Fetch() returned %d records, want 1", len(records))
	}
}

func TestFetchAllRelaysExhausted(t *testing.T) {
	// A closed server gives an immediate transport failure, standing in for
	// a timed-out relay.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()
	bad := newServer(t, http.StatusInternalServerError, "boom")

	f := New("http://example.invalid/report",
		stubStrategy{"primary", dead.URL},
		stubStrategy{"backup", bad.URL},
	)

	_, err := f.Fetch(context.Background(), "C282811")
	var fetchErr *apperrors.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Fetch() error = %v, want FetchError", err)
	}
	if !strings.Contains(err.Error(), "Failed to connect to Company Server") {
		t.Errorf("Fetch() error message = %q, want connectivity failure text", err.Error())
	}
	if len(fetchErr.Attempts) != 2 {
		t.Errorf("FetchError carries %d attempts, want 2", len(fetchErr.Attempts))
	}
}

func TestFetchEmptyID(t *testing.T) {
	f := New("http://example.invalid/report", stubStrategy{"primary", "http://example.invalid"})

	_, err := f.Fetch(context.Background(), "   ")
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Fetch() error = %v, want ValidationError", err)
	}
}

func TestCorsProxyURL(t *testing.T) {
	target := "http://portal.example.com/report?emp_no=C1"

	unkeyed := CorsProxy{}.URL(target)
	if !strings.HasPrefix(unkeyed, "https://corsproxy.io/?") {
		t.Errorf("URL = %q, want corsproxy prefix", unkeyed)
	}
	if strings.Contains(unkeyed, "key=") {
		t.Errorf("unkeyed URL = %q should carry no key", unkeyed)
	}

	keyed := CorsProxy{Key: "secret"}.URL(target)
	if !strings.Contains(keyed, "&key=secret") {
		t.Errorf("keyed URL = %q, want key parameter", keyed)
	}
}

func TestAllOriginsURL(t *testing.T) {
	got := AllOrigins{}.URL("http://portal.example.com/report?emp_no=C1")
	want := "https://api.allorigins.win/raw?url=http%3A%2F%2Fportal.example.com%2Freport%3Femp_no%3DC1"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
