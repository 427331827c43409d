package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/logging"
)

// Icon values that mean "no real logo yet" and may be overwritten.
var placeholderIcons = map[string]struct{}{
	"":                  {},
	"NULL":              {},
	"EMPTY":             {},
	"/default_team.svg": {},
}

// Database team names keyed by their normalized form, mapped to the franchise
// name the catalog uses. Exact mapping hits take priority over fuzzy matching.
var catalogNameMappings = map[string]string{
	"los angeles lakers":     "Lakers",
	"atlanta hawks":          "Hawks",
	"boston celtics":         "Celtics",
	"brooklyn nets":          "Nets",
	"charlotte hornets":      "Hornets",
	"chicago bulls":          "Bulls",
	"cleveland cavaliers":    "Cavaliers",
	"dallas mavericks":       "Mavericks",
	"denver nuggets":         "Nuggets",
	"detroit pistons":        "Pistons",
	"golden state warriors":  "Warriors",
	"houston rockets":        "Rockets",
	"indiana pacers":         "Pacers",
	"la clippers":            "Clippers",
	"memphis grizzlies":      "Grizzlies",
	"miami heat":             "Heat",
	"milwaukee bucks":        "Bucks",
	"minnesota timberwolves": "Timberwolves",
	"new orleans pelicans":   "Pelicans",
	"new york knicks":        "Knicks",
	"oklahoma city thunder":  "Thunder",
	"orlando magic":          "Magic",
	"philadelphia 76ers":     "76ers",
	"phoenix suns":           "Suns",
	"portland trail blazers": "Trail Blazers",
	"sacramento kings":       "Kings",
	"san antonio spurs":      "Spurs",
	"toronto raptors":        "Raptors",
	"utah jazz":              "Jazz",
	"washington wizards":     "Wizards",
}

var (
	collapseSpaces   = regexp.MustCompile(`\s+`)
	nonAlphanumSpace = regexp.MustCompile(`[^a-z0-9 ]`)
)

func normalizeTeamName(name string) string {
	name = strings.ToLower(name)
	name = collapseSpaces.ReplaceAllString(name, " ")
	name = nonAlphanumSpace.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// TeamLogoResult reports the resolved logo and whether persisting it back to
// the team record succeeded. Partial is true when the upload worked but the
// icon update did not.
type TeamLogoResult struct {
	LogoURL string
	Partial bool
}

// TeamLogoService resolves a durable hosted logo URL for a team. Teams whose
// icon is already a real URL are never touched; placeholder icons are
// replaced by downloading the catalog logo and re-hosting it in object
// storage under a key owned by this system.
type TeamLogoService struct {
	teamRepo team.Repository
	catalog  LogoCatalog
	store    ObjectStore
	logger   *logging.Logger
}

func NewTeamLogoService(
	teamRepo team.Repository,
	catalog LogoCatalog,
	store ObjectStore,
	logger *logging.Logger,
) *TeamLogoService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &TeamLogoService{teamRepo: teamRepo, catalog: catalog, store: store, logger: logger}
}

// ResolveLogo returns the team's hosted logo URL, sourcing and re-hosting
// one from the catalog when the stored icon is a placeholder.
func (s *TeamLogoService) ResolveLogo(ctx context.Context, teamID string) (TeamLogoResult, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamLogoResult{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamLogoResult{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return TeamLogoResult{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	if hasUsableIcon(t.IconURL) {
		return TeamLogoResult{LogoURL: t.IconURL}, nil
	}

	catalogTeams, err := s.catalog.ListTeams(ctx)
	if err != nil {
		return TeamLogoResult{}, fmt.Errorf("list catalog teams: %w", err)
	}

	matched, ok := matchCatalogTeam(catalogTeams, t.Name)
	if !ok {
		return TeamLogoResult{}, fmt.Errorf("%w: no catalog match for team name %q", ErrNotFound, t.Name)
	}
	if len(matched.LogoURLs) == 0 {
		return TeamLogoResult{}, fmt.Errorf("%w: catalog team %q has no logo", ErrNotFound, matched.DisplayName)
	}
	logoURL := matched.LogoURLs[0]

	image, err := s.catalog.Download(ctx, logoURL)
	if err != nil {
		return TeamLogoResult{}, fmt.Errorf("download logo: %w", err)
	}

	key := teamID + "." + extensionFor(image.ContentType)
	if err := s.store.Upload(ctx, key, image.ContentType, image.Data); err != nil {
		return TeamLogoResult{}, fmt.Errorf("upload logo: %w", err)
	}

	publicURL, err := s.store.PublicURL(key)
	if err != nil {
		return TeamLogoResult{}, fmt.Errorf("resolve public logo url: %w", err)
	}

	if err := s.teamRepo.UpdateIcon(ctx, teamID, publicURL); err != nil {
		// The logo is hosted and usable even though the team record still
		// points at the placeholder. Surface the URL instead of failing.
		s.logger.WarnContext(ctx, "logo uploaded but icon update failed",
			"teamID", teamID, "error", err)
		return TeamLogoResult{LogoURL: publicURL, Partial: true}, nil
	}

	return TeamLogoResult{LogoURL: publicURL}, nil
}

func hasUsableIcon(iconURL string) bool {
	if _, placeholder := placeholderIcons[iconURL]; placeholder {
		return false
	}
	return strings.HasPrefix(iconURL, "http://") || strings.HasPrefix(iconURL, "https://")
}

func matchCatalogTeam(teams []CatalogTeam, name string) (CatalogTeam, bool) {
	target := normalizeTeamName(name)

	if mapped, ok := catalogNameMappings[target]; ok {
		for _, ct := range teams {
			if ct.DisplayName == mapped || ct.Name == mapped || ct.ShortDisplayName == mapped {
				return ct, true
			}
		}
	}

	for _, ct := range teams {
		candidate := ct.DisplayName
		if candidate == "" {
			candidate = ct.Name
		}
		normalized := normalizeTeamName(candidate)
		if normalized == "" {
			continue
		}
		if strings.Contains(normalized, target) || strings.Contains(target, normalized) {
			return ct, true
		}
	}
	return CatalogTeam{}, false
}

func extensionFor(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	if idx := strings.Index(contentType, "/"); idx >= 0 {
		if ext := strings.TrimSpace(contentType[idx+1:]); ext != "" {
			return ext
		}
	}
	return "png"
}
