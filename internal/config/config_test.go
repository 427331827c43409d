package config

import (
	"testing"
	"time"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_BetterStackRequiresEndpointWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_BetterStackConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "in.logs.betterstack.com")
	t.Setenv("BETTERSTACK_TOKEN", "tok-123")
	t.Setenv("BETTERSTACK_TIMEOUT", "5s")
	t.Setenv("BETTERSTACK_MIN_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.BetterStackEnabled || cfg.BetterStackEndpoint != "in.logs.betterstack.com" {
		t.Fatalf("unexpected betterstack config: %+v", cfg)
	}
	if cfg.BetterStackToken != "tok-123" || cfg.BetterStackTimeout != 5*time.Second {
		t.Fatalf("unexpected betterstack token/timeout: %+v", cfg)
	}
	if cfg.BetterStackMinLevel != logging.LevelWarn {
		t.Fatalf("unexpected betterstack min level: %v", cfg.BetterStackMinLevel)
	}
}

func TestLoad_AllSportsRequiresAPIKeyWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("ALLSPORTS_ENABLED", "true")
	t.Setenv("ALLSPORTS_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ALLSPORTS_ENABLED=true without ALLSPORTS_API_KEY")
	}
}

func TestLoad_AllSportsConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("ALLSPORTS_ENABLED", "true")
	t.Setenv("ALLSPORTS_API_KEY", "key-123")
	t.Setenv("ALLSPORTS_TIMEOUT", "12s")
	t.Setenv("ALLSPORTS_MAX_RETRIES", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.AllSportsEnabled {
		t.Fatalf("expected AllSportsEnabled=true")
	}
	if cfg.AllSportsAPIKey != "key-123" {
		t.Fatalf("unexpected AllSportsAPIKey")
	}
	if cfg.AllSportsTimeout != 12*time.Second {
		t.Fatalf("unexpected AllSportsTimeout: %s", cfg.AllSportsTimeout)
	}
	if cfg.AllSportsMaxRetries != 3 {
		t.Fatalf("unexpected AllSportsMaxRetries: %d", cfg.AllSportsMaxRetries)
	}
}

func TestLoad_SupabaseStorageRequiresServiceKey(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("SUPABASE_STORAGE_BASE_URL", "https://demo.supabase.co/storage/v1")
	t.Setenv("SUPABASE_STORAGE_SERVICE_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SUPABASE_STORAGE_BASE_URL is set without SUPABASE_STORAGE_SERVICE_KEY")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "sport-stat-tracker-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.SupabaseStorageBucket != "team-logos" {
		t.Fatalf("unexpected SupabaseStorageBucket: %q", cfg.SupabaseStorageBucket)
	}
	if cfg.CatalogCacheTTL != 10*time.Minute {
		t.Fatalf("unexpected CatalogCacheTTL: %s", cfg.CatalogCacheTTL)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_CacheTTLMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "-5s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative CACHE_TTL")
	}
}
