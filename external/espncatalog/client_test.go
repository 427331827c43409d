package espncatalog

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const teamsPayload = `{
  "sports": [{
    "leagues": [{
      "teams": [
        {"team": {"displayName": "Golden State Warriors", "name": "Warriors", "shortDisplayName": "Warriors",
                  "logos": [{"href": "https://cdn.espn.test/gsw.png"}, {"href": "https://cdn.espn.test/gsw-dark.png"}]}},
        {"team": {"displayName": "Boston Celtics", "name": "Celtics", "shortDisplayName": "Celtics", "logos": []}}
      ]
    }]
  }]
}`

func TestClient_ListTeams(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(teamsPayload))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	teams, err := client.ListTeams(t.Context())
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("unexpected team count: %d", len(teams))
	}
	if teams[0].DisplayName != "Golden State Warriors" {
		t.Fatalf("unexpected first team: %+v", teams[0])
	}
	if len(teams[0].LogoURLs) != 2 || teams[0].LogoURLs[0] != "https://cdn.espn.test/gsw.png" {
		t.Fatalf("unexpected logo urls: %+v", teams[0].LogoURLs)
	}

	// Second call is served from the TTL cache.
	if _, err := client.ListTeams(t.Context()); err != nil {
		t.Fatalf("cached list failed: %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected a single upstream hit, got %d", hits.Load())
	}
}

func TestClient_ListTeams_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	if _, err := client.ListTeams(t.Context()); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}

func TestClient_Download_RelativeURLRejected(t *testing.T) {
	client := NewClient(ClientConfig{})

	if _, err := client.Download(t.Context(), "/relative/logo.png"); err == nil {
		t.Fatal("expected error for a relative logo url")
	}
}

func TestRedactURL(t *testing.T) {
	got := redactURL("https://example.com/teams?secret=abc")
	if got != "https://example.com/teams" {
		t.Fatalf("unexpected redacted url: %s", got)
	}
}
