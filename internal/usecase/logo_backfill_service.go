package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/logging"
)

const (
	backfillStatusResolved = "resolved"
	backfillStatusPartial  = "partial"
	backfillStatusFailed   = "failed"

	defaultBackfillWorkers = 4
	maxBackfillWorkers     = 16
)

type BackfillInput struct {
	MaxWorkers int
}

type BackfillTaskResult struct {
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	Status     string `json:"status"`
	LogoURL    string `json:"logo_url,omitempty"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type BackfillResult struct {
	TeamCount     int                  `json:"team_count"`
	ResolvedCount int                  `json:"resolved_count"`
	PartialCount  int                  `json:"partial_count"`
	FailedCount   int                  `json:"failed_count"`
	WorkerCount   int                  `json:"worker_count"`
	Tasks         []BackfillTaskResult `json:"tasks"`
}

// logoResolver is what the backfill needs from the logo service.
type logoResolver interface {
	ResolveLogo(ctx context.Context, teamID string) (TeamLogoResult, error)
}

// LogoBackfillService sweeps every team still carrying a placeholder icon
// and resolves a hosted logo for each, fanned out over a bounded worker
// pool.
type LogoBackfillService struct {
	teamRepo team.Repository
	resolver logoResolver
	logger   *logging.Logger
}

func NewLogoBackfillService(teamRepo team.Repository, resolver logoResolver, logger *logging.Logger) *LogoBackfillService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LogoBackfillService{teamRepo: teamRepo, resolver: resolver, logger: logger}
}

func (s *LogoBackfillService) Backfill(ctx context.Context, input BackfillInput) (BackfillResult, error) {
	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = defaultBackfillWorkers
	}
	if workerCount > maxBackfillWorkers {
		workerCount = maxBackfillWorkers
	}

	teams, err := s.teamRepo.List(ctx, nil)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("list teams: %w", err)
	}

	targets := make([]team.Team, 0, len(teams))
	for _, t := range teams {
		if hasUsableIcon(t.IconURL) {
			continue
		}
		targets = append(targets, t)
	}

	result := BackfillResult{
		TeamCount:   len(targets),
		WorkerCount: workerCount,
		Tasks:       make([]BackfillTaskResult, 0, len(targets)),
	}
	if len(targets) == 0 {
		return result, nil
	}

	rows := make(chan BackfillTaskResult, len(targets))

	var resolvedCount atomic.Int32
	var partialCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, target := range targets {
		target := target
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := BackfillTaskResult{TeamID: target.ID, TeamName: target.Name}

			resolved, err := s.resolver.ResolveLogo(ctx, target.ID)
			switch {
			case err != nil:
				row.Status = backfillStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			case resolved.Partial:
				row.Status = backfillStatusPartial
				row.LogoURL = resolved.LogoURL
				partialCount.Add(1)
			default:
				row.Status = backfillStatusResolved
				row.LogoURL = resolved.LogoURL
				resolvedCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			rows <- row
		}); err != nil {
			workers.Done()
			return BackfillResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].TeamID < result.Tasks[j].TeamID
	})

	result.ResolvedCount = int(resolvedCount.Load())
	result.PartialCount = int(partialCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "logo backfill finished",
		"teams", result.TeamCount,
		"resolved", result.ResolvedCount,
		"partial", result.PartialCount,
		"failed", result.FailedCount)

	return result, nil
}
