package usecase

import "context"

// CatalogTeam is one team entry of the external logo catalog.
type CatalogTeam struct {
	DisplayName      string
	Name             string
	ShortDisplayName string
	LogoURLs         []string
}

// LogoImage is a downloaded logo binary with its reported content type.
type LogoImage struct {
	ContentType string
	Data        []byte
}

// LogoCatalog is the external directory of canonical teams and their logos.
type LogoCatalog interface {
	ListTeams(ctx context.Context) ([]CatalogTeam, error)
	Download(ctx context.Context, logoURL string) (LogoImage, error)
}

// ObjectStore is key-addressed binary storage with public URLs.
type ObjectStore interface {
	// Upload stores data under key, overwriting any existing object.
	Upload(ctx context.Context, key, contentType string, data []byte) error
	PublicURL(key string) (string, error)
}

// ExternalLeague is one league entry of the sports-data provider.
type ExternalLeague struct {
	LeagueKey   string
	LeagueName  string
	CountryName string
}

// ExternalTeam is one team entry of the sports-data provider.
type ExternalTeam struct {
	TeamKey   string
	TeamName  string
	LeagueKey string
	LogoURL   string
}

// SportsDataProvider is the read-only basketball data API proxied by the
// sports endpoints.
type SportsDataProvider interface {
	ListLeagues(ctx context.Context) ([]ExternalLeague, error)
	ListTeams(ctx context.Context, leagueKey string) ([]ExternalTeam, error)
}
