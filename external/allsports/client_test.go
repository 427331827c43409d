package allsports

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_ListLeagues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("met") != "Leagues" {
			t.Errorf("unexpected met param: %s", r.URL.Query().Get("met"))
		}
		if r.URL.Query().Get("APIkey") != "test-key" {
			t.Errorf("api key not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":1,"result":[{"league_key":766,"league_name":"NBA","country_name":"USA"}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "test-key"})

	leagues, err := client.ListLeagues(t.Context())
	if err != nil {
		t.Fatalf("list leagues failed: %v", err)
	}
	if len(leagues) != 1 {
		t.Fatalf("unexpected league count: %d", len(leagues))
	}
	if leagues[0].LeagueKey != "766" || leagues[0].LeagueName != "NBA" {
		t.Fatalf("unexpected league: %+v", leagues[0])
	}
}

func TestClient_ListTeams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("leagueId") != "766" {
			t.Errorf("league id not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":1,"result":[{"team_key":"133","team_name":"Warriors","team_logo":"https://cdn.test/gsw.png"}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "test-key"})

	teams, err := client.ListTeams(t.Context(), "766")
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("unexpected team count: %d", len(teams))
	}
	if teams[0].TeamKey != "133" || teams[0].LeagueKey != "766" {
		t.Fatalf("unexpected team: %+v", teams[0])
	}
}

func TestClient_ListLeagues_ProviderFailureFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":0,"result":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "test-key"})

	if _, err := client.ListLeagues(t.Context()); err == nil {
		t.Fatal("expected error when provider reports failure")
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	got := sanitizeSensitiveText("request to https://x/?APIkey=secret123 failed: secret123", "secret123")
	if got != "request to https://x/?APIkey=REDACTED failed: REDACTED" {
		t.Fatalf("unexpected sanitized text: %s", got)
	}
}
