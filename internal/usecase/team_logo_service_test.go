package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/memory"
)

type stubCatalog struct {
	teams       []CatalogTeam
	listErr     error
	downloads   []string
	downloadErr error
}

func (c *stubCatalog) ListTeams(_ context.Context) ([]CatalogTeam, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.teams, nil
}

func (c *stubCatalog) Download(_ context.Context, logoURL string) (LogoImage, error) {
	if c.downloadErr != nil {
		return LogoImage{}, c.downloadErr
	}
	c.downloads = append(c.downloads, logoURL)
	return LogoImage{ContentType: "image/png", Data: []byte{0x89, 0x50}}, nil
}

type stubObjectStore struct {
	uploads map[string]string
}

func (s *stubObjectStore) Upload(_ context.Context, key, contentType string, _ []byte) error {
	if s.uploads == nil {
		s.uploads = make(map[string]string)
	}
	s.uploads[key] = contentType
	return nil
}

func (s *stubObjectStore) PublicURL(key string) (string, error) {
	return "https://cdn.example.com/teamLogos/" + key, nil
}

func nbaCatalog() *stubCatalog {
	return &stubCatalog{teams: []CatalogTeam{
		{DisplayName: "Golden State Warriors", Name: "Warriors", ShortDisplayName: "Warriors", LogoURLs: []string{"https://cdn.espn.test/gsw.png"}},
		{DisplayName: "Los Angeles Lakers", Name: "Lakers", ShortDisplayName: "Lakers", LogoURLs: []string{"https://cdn.espn.test/lal.png"}},
	}}
}

func TestTeamLogoService_ResolveLogo_PlaceholderGetsReplaced(t *testing.T) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	store := &stubObjectStore{}
	svc := NewTeamLogoService(teamRepo, nbaCatalog(), store, nil)

	result, err := svc.ResolveLogo(t.Context(), memory.TeamIDWarriors)
	if err != nil {
		t.Fatalf("resolve logo failed: %v", err)
	}
	if result.Partial {
		t.Fatal("expected full success")
	}

	wantURL := "https://cdn.example.com/teamLogos/" + memory.TeamIDWarriors + ".png"
	if result.LogoURL != wantURL {
		t.Fatalf("unexpected logo url: %s", result.LogoURL)
	}
	if _, ok := store.uploads[memory.TeamIDWarriors+".png"]; !ok {
		t.Fatal("expected upload keyed by team id and extension")
	}

	updated, _, err := teamRepo.GetByID(t.Context(), memory.TeamIDWarriors)
	if err != nil {
		t.Fatalf("get team failed: %v", err)
	}
	if updated.IconURL != wantURL {
		t.Fatalf("icon url not persisted, got %s", updated.IconURL)
	}
}

func TestTeamLogoService_ResolveLogo_ExistingURLIsKept(t *testing.T) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-x", Name: "Golden State Warriors", IconURL: "https://cdn.example.com/already.png"},
	})
	catalog := nbaCatalog()
	svc := NewTeamLogoService(teamRepo, catalog, &stubObjectStore{}, nil)

	result, err := svc.ResolveLogo(t.Context(), "team-x")
	if err != nil {
		t.Fatalf("resolve logo failed: %v", err)
	}
	if result.LogoURL != "https://cdn.example.com/already.png" {
		t.Fatalf("unexpected logo url: %s", result.LogoURL)
	}
	if len(catalog.downloads) != 0 {
		t.Fatal("catalog must not be consulted for a team with a real icon")
	}
}

func TestTeamLogoService_ResolveLogo_SubstringFallbackMatch(t *testing.T) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-y", Name: "The Warriors!", IconURL: "EMPTY"},
	})
	catalog := &stubCatalog{teams: []CatalogTeam{
		{DisplayName: "Warriors", LogoURLs: []string{"https://cdn.espn.test/gsw.png"}},
	}}
	svc := NewTeamLogoService(teamRepo, catalog, &stubObjectStore{}, nil)

	result, err := svc.ResolveLogo(t.Context(), "team-y")
	if err != nil {
		t.Fatalf("resolve logo failed: %v", err)
	}
	if result.LogoURL == "" {
		t.Fatal("expected a hosted logo url")
	}
}

func TestTeamLogoService_ResolveLogo_NoCatalogMatch(t *testing.T) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-z", Name: "Springfield Atoms", IconURL: "NULL"},
	})
	svc := NewTeamLogoService(teamRepo, nbaCatalog(), &stubObjectStore{}, nil)

	_, err := svc.ResolveLogo(t.Context(), "team-z")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamLogoService_ResolveLogo_UnknownTeam(t *testing.T) {
	svc := NewTeamLogoService(memory.NewTeamRepository(nil), nbaCatalog(), &stubObjectStore{}, nil)

	_, err := svc.ResolveLogo(t.Context(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamLogoService_ResolveLogo_CatalogFailure(t *testing.T) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	boom := errors.New("catalog down")
	svc := NewTeamLogoService(teamRepo, &stubCatalog{listErr: boom}, &stubObjectStore{}, nil)

	_, err := svc.ResolveLogo(t.Context(), memory.TeamIDWarriors)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped catalog error, got %v", err)
	}
}

type failingIconTeamRepo struct {
	*memory.TeamRepository
	iconErr error
}

func (r *failingIconTeamRepo) UpdateIcon(context.Context, string, string) error {
	return r.iconErr
}

func TestTeamLogoService_ResolveLogo_IconUpdateFailureIsPartial(t *testing.T) {
	repo := &failingIconTeamRepo{
		TeamRepository: memory.NewTeamRepository(memory.SeedTeams()),
		iconErr:        errors.New("update failed"),
	}
	svc := NewTeamLogoService(repo, nbaCatalog(), &stubObjectStore{}, nil)

	result, err := svc.ResolveLogo(t.Context(), memory.TeamIDWarriors)
	if err != nil {
		t.Fatalf("expected partial success, got error: %v", err)
	}
	if !result.Partial {
		t.Fatal("expected partial flag when icon update fails")
	}
	if result.LogoURL == "" {
		t.Fatal("partial success must still expose the hosted url")
	}
}

func TestNormalizeTeamName(t *testing.T) {
	cases := map[string]string{
		"  Golden   State Warriors ": "golden state warriors",
		"Phila. 76ers":               "phila 76ers",
		"LOS ANGELES LAKERS":         "los angeles lakers",
	}
	for input, want := range cases {
		if got := normalizeTeamName(input); got != want {
			t.Fatalf("normalizeTeamName(%q) = %q, want %q", input, got, want)
		}
	}
}
