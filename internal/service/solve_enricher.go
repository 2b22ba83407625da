package service

import (
	"codingclass_backend/internal/answer"
	"codingclass_backend/internal/repository"
	"codingclass_backend/internal/util"
	"codingclass_backend/pkg/logger"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	solveDetailKeyPrefix = "solve_detail:"
	solveDetailTTL       = 5 * time.Minute
)

// RepoSolveEnricher 는 제출 상세 조회 훅의 기본 구현이다. 레디스를
// 먼저 보고, 없으면 저장소에서 읽어 캐시한다.
type RepoSolveEnricher struct {
	SolveRepo *repository.SolveRepository
	Redis     *redis.Client
}

func NewRepoSolveEnricher(solveRepo *repository.SolveRepository, rdb *redis.Client) *RepoSolveEnricher {
	return &RepoSolveEnricher{SolveRepo: solveRepo, Redis: rdb}
}

func (e *RepoSolveEnricher) FetchDetail(ctx context.Context, solveID string) (answer.Record, error) {
	cacheKey := solveDetailKeyPrefix + solveID
	if val, err := e.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var rec answer.Record
		if err := json.Unmarshal([]byte(val), &rec); err == nil {
			return rec, nil
		}
	}

	id := util.MustParseUint(solveID)
	if id == 0 {
		return nil, util.ErrSolveNotFound
	}
	solve, err := e.SolveRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	rec := solveRecord(solve)
	if buf, err := json.Marshal(rec); err == nil {
		if err := e.Redis.Set(ctx, cacheKey, buf, solveDetailTTL).Err(); err != nil {
			logger.Log.Warn("solve detail cache write failed", zap.String("solve_id", solveID), zap.Error(err))
		}
	}
	return rec, nil
}
