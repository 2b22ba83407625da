package service

import (
	"codingclass_backend/internal/importer"
	"codingclass_backend/internal/model"
	"codingclass_backend/internal/problemkind"
	"codingclass_backend/internal/repository"
	"codingclass_backend/internal/util"
	"codingclass_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProblemService struct {
	ProblemRepo *repository.ProblemRepository
	GroupRepo   *repository.GroupRepository
	Redis       *redis.Client
}

func NewProblemService(problemRepo *repository.ProblemRepository, groupRepo *repository.GroupRepository, rdb *redis.Client) *ProblemService {
	return &ProblemService{
		ProblemRepo: problemRepo,
		GroupRepo:   groupRepo,
		Redis:       rdb,
	}
}

const (
	problemCacheKeyPrefix = "problem:"
	problemCacheTTL       = 10 * time.Minute
)

type ProblemRequest struct {
	Kind            string          `json:"kind" binding:"required"`
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	Difficulty      string          `json:"difficulty"`
	Conditions      json.RawMessage `json:"conditions"`
	Tags            json.RawMessage `json:"tags"`
	TestCases       json.RawMessage `json:"testCases"`
	ReferenceCodes  json.RawMessage `json:"referenceCodes"`
	BaseCodes       json.RawMessage `json:"baseCodes"`
	Options         json.RawMessage `json:"options"`
	CorrectAnswers  json.RawMessage `json:"correctAnswers"`
	AnswerTexts     json.RawMessage `json:"answerTexts"`
	GradingCriteria json.RawMessage `json:"gradingCriteria"`
	RatingMode      string          `json:"ratingMode"`
}

func (s *ProblemService) Create(makerID uint, req ProblemRequest) (*model.Problem, error) {
	kind := problemkind.Coerce(req.Kind)
	if !kind.Valid() {
		return nil, util.ErrUnknownKind
	}

	problem := &model.Problem{
		Kind:            kind,
		Title:           req.Title,
		Description:     req.Description,
		Difficulty:      req.Difficulty,
		MakerID:         makerID,
		Conditions:      req.Conditions,
		Tags:            req.Tags,
		TestCases:       req.TestCases,
		ReferenceCodes:  req.ReferenceCodes,
		BaseCodes:       req.BaseCodes,
		Options:         req.Options,
		CorrectAnswers:  req.CorrectAnswers,
		AnswerTexts:     req.AnswerTexts,
		GradingCriteria: req.GradingCriteria,
		RatingMode:      req.RatingMode,
	}
	if problem.Difficulty == "" {
		problem.Difficulty = "easy"
	}
	return problem, s.ProblemRepo.Create(problem)
}

func (s *ProblemService) GetByID(ctx context.Context, id uint) (*model.Problem, error) {
	cacheKey := fmt.Sprintf("%s%d", problemCacheKeyPrefix, id)
	if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var problem model.Problem
		if err := json.Unmarshal([]byte(val), &problem); err == nil {
			return &problem, nil
		}
	}

	problem, err := s.ProblemRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProblemNotFound
	} else if err != nil {
		return nil, err
	}

	if buf, err := json.Marshal(problem); err == nil {
		if err := s.Redis.Set(ctx, cacheKey, buf, problemCacheTTL).Err(); err != nil {
			logger.Log.Warn("problem cache write failed", zap.Uint("id", id), zap.Error(err))
		}
	}
	return problem, nil
}

// GetByIDAny 는 소프트 삭제된 문제도 조회한다. 남아 있는 제출의 문제
// 정보를 보여줄 때 쓴다.
func (s *ProblemService) GetByIDAny(id uint) (*model.Problem, error) {
	problem, err := s.ProblemRepo.FindByIDAny(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProblemNotFound
	}
	return problem, err
}

func (s *ProblemService) List(f repository.ProblemFilter) ([]model.Problem, int64, error) {
	return s.ProblemRepo.List(f)
}

// ListByGroup 은 반에 배정된 문제를 요청자가 구성원일 때만 돌려준다.
func (s *ProblemService) ListByGroup(groupID, userID uint) ([]model.Problem, error) {
	group, err := s.GroupRepo.FindByID(groupID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGroupNotFound
	} else if err != nil {
		return nil, err
	}
	if group.OwnerID != userID {
		member, err := s.GroupRepo.IsMember(groupID, userID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, util.ErrNotGroupMember
		}
	}
	return s.ProblemRepo.FindByGroup(groupID)
}

func (s *ProblemService) Update(ctx context.Context, id, makerID uint, req ProblemRequest) (*model.Problem, error) {
	problem, err := s.mutable(id, makerID)
	if err != nil {
		return nil, err
	}

	if req.Kind != "" {
		kind := problemkind.Coerce(req.Kind)
		if !kind.Valid() {
			return nil, util.ErrUnknownKind
		}
		problem.Kind = kind
	}
	if req.Title != "" {
		problem.Title = req.Title
	}
	problem.Description = req.Description
	if req.Difficulty != "" {
		problem.Difficulty = req.Difficulty
	}
	problem.Conditions = req.Conditions
	problem.Tags = req.Tags
	problem.TestCases = req.TestCases
	problem.ReferenceCodes = req.ReferenceCodes
	problem.BaseCodes = req.BaseCodes
	problem.Options = req.Options
	problem.CorrectAnswers = req.CorrectAnswers
	problem.AnswerTexts = req.AnswerTexts
	problem.GradingCriteria = req.GradingCriteria
	problem.RatingMode = req.RatingMode

	if err := s.ProblemRepo.Update(problem); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return problem, nil
}

// Delete 는 소프트 삭제한다. 기존 제출은 남고 조회 화면에서는 삭제된
// 문제로 표시된다.
func (s *ProblemService) Delete(ctx context.Context, id, makerID uint) error {
	if _, err := s.mutable(id, makerID); err != nil {
		return err
	}
	if err := s.ProblemRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProblemService) AssignGroups(ctx context.Context, id, makerID uint, groupIDs []uint) error {
	if _, err := s.mutable(id, makerID); err != nil {
		return err
	}
	if err := s.ProblemRepo.AssignGroups(id, groupIDs); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// CreateBatch 는 가져오기 파이프라인의 결과를 저장한다.
func (s *ProblemService) CreateBatch(makerID uint, payloads []importer.Payload) ([]model.Problem, error) {
	problems := make([]model.Problem, 0, len(payloads))
	for _, p := range payloads {
		problems = append(problems, model.Problem{
			Kind:            p.Kind,
			Title:           p.Title,
			Description:     p.Description,
			Difficulty:      orDefault(p.Difficulty, "easy"),
			MakerID:         makerID,
			Conditions:      marshalOrNil(p.Conditions),
			Tags:            marshalOrNil(p.Tags),
			TestCases:       marshalOrNil(p.TestCases),
			ReferenceCodes:  marshalOrNil(p.ReferenceCodes),
			BaseCodes:       marshalOrNil(p.BaseCodes),
			Options:         marshalOrNil(p.Options),
			CorrectAnswers:  marshalOrNil(p.CorrectAnswers),
			AnswerTexts:     marshalOrNil(p.AnswerTexts),
			GradingCriteria: marshalOrNil(p.GradingCriteria),
		})
	}
	if err := s.ProblemRepo.CreateBatch(problems); err != nil {
		return nil, err
	}
	return problems, nil
}

func (s *ProblemService) mutable(id, makerID uint) (*model.Problem, error) {
	problem, err := s.ProblemRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProblemNotFound
	} else if err != nil {
		return nil, err
	}
	if problem.MakerID != makerID {
		return nil, util.ErrPermissionDenied
	}
	return problem, nil
}

func (s *ProblemService) invalidate(ctx context.Context, id uint) {
	if err := s.Redis.Del(ctx, fmt.Sprintf("%s%d", problemCacheKeyPrefix, id)).Err(); err != nil {
		logger.Log.Warn("problem cache invalidation failed", zap.Uint("id", id), zap.Error(err))
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func marshalOrNil(v interface{}) json.RawMessage {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		if len(t) == 0 {
			return nil
		}
	case []int:
		if len(t) == 0 {
			return nil
		}
	case []importer.TestCase:
		if len(t) == 0 {
			return nil
		}
	case []importer.CodeFile:
		if len(t) == 0 {
			return nil
		}
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return buf
}
