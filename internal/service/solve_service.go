package service

import (
	"codingclass_backend/internal/answer"
	"codingclass_backend/internal/model"
	"codingclass_backend/internal/problemkind"
	"codingclass_backend/internal/repository"
	"codingclass_backend/internal/util"
	"codingclass_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SolveEnricher 는 요약 레코드에 답안 본문이 빠져 있을 때 한 번만
// 호출되는 상세 조회 훅이다. 실패해도 조회 자체는 실패하지 않는다.
type SolveEnricher interface {
	FetchDetail(ctx context.Context, solveID string) (answer.Record, error)
}

type SolveService struct {
	SolveRepo   *repository.SolveRepository
	ProblemRepo *repository.ProblemRepository
	Enricher    SolveEnricher
}

func NewSolveService(solveRepo *repository.SolveRepository, problemRepo *repository.ProblemRepository) *SolveService {
	return &SolveService{
		SolveRepo:   solveRepo,
		ProblemRepo: problemRepo,
	}
}

type SubmitRequest struct {
	WorkbookID uint            `json:"workbookId"`
	Payload    json.RawMessage `json:"payload" binding:"required"`
}

// Submit 은 원본 답안을 그대로 저장한다. 단답형과 객관식은 제출 즉시
// 자동 채점한다.
func (s *SolveService) Submit(ctx context.Context, problemID, userID uint, req SubmitRequest) (*model.Solve, error) {
	problem, err := s.ProblemRepo.FindByID(problemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProblemNotFound
	} else if err != nil {
		return nil, err
	}

	solve := &model.Solve{
		ProblemID:   problemID,
		UserID:      userID,
		WorkbookID:  req.WorkbookID,
		Kind:        problem.Kind,
		Payload:     req.Payload,
		Status:      model.SolvePending,
		SubmittedAt: time.Now(),
	}

	var rec answer.Record
	if err := json.Unmarshal(req.Payload, &rec); err == nil {
		n := answer.Normalize(rec, problem.Kind)
		switch problem.Kind {
		case problemkind.ShortAnswer:
			s.autoGradeShortAnswer(problem, n, solve)
		case problemkind.MultipleChoice:
			s.autoGradeMultipleChoice(problem, n, solve)
		}
	}

	return solve, s.SolveRepo.Create(solve)
}

func (s *SolveService) autoGradeShortAnswer(problem *model.Problem, n answer.Normalized, solve *model.Solve) {
	var accepted []string
	if err := json.Unmarshal(problem.AnswerTexts, &accepted); err != nil {
		return
	}
	status := model.SolveWrong
	for _, got := range n.Answers {
		if answer.MatchShortAnswer(accepted, got) {
			status = model.SolveCorrect
			break
		}
	}
	solve.Status = status
	score := 0
	if status == model.SolveCorrect {
		score = 100
	}
	solve.Score = &score
}

func (s *SolveService) autoGradeMultipleChoice(problem *model.Problem, n answer.Normalized, solve *model.Solve) {
	var correct []int
	if err := json.Unmarshal(problem.CorrectAnswers, &correct); err != nil {
		return
	}
	status := model.SolveWrong
	if sameIntSet(n.SelectedOptions, correct) {
		status = model.SolveCorrect
	}
	solve.Status = status
	score := 0
	if status == model.SolveCorrect {
		score = 100
	}
	solve.Score = &score
}

func sameIntSet(a, b []int) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	as := make(map[int]bool, len(a))
	for _, v := range a {
		as[v] = true
	}
	bs := make(map[int]bool, len(b))
	for _, v := range b {
		bs[v] = true
	}
	if len(as) != len(bs) {
		return false
	}
	for v := range as {
		if !bs[v] {
			return false
		}
	}
	return true
}

// SolveDetail 은 조회 화면이 소비하는 최종 형태다.
type SolveDetail struct {
	SolveID   uint              `json:"solveId,omitempty"`
	ProblemID uint              `json:"problemId"`
	Kind      problemkind.Kind  `json:"kind"`
	Status    model.SolveStatus `json:"status,omitempty"`
	Score     *int              `json:"score,omitempty"`
	Feedback  string            `json:"feedback,omitempty"`
	View      answer.View       `json:"view"`
}

// Detail 은 제출 이력에서 대표 제출을 고르고 정규화해 렌더 상태로
// 바꾼다. 어떤 과거 포맷이 섞여 있어도 실패하지 않는다.
func (s *SolveService) Detail(ctx context.Context, problemID, userID uint, solveID string) (*SolveDetail, error) {
	problem, err := s.ProblemRepo.FindByIDAny(problemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProblemNotFound
	} else if err != nil {
		return nil, err
	}

	solves, err := s.SolveRepo.FindCandidates(problemID, userID)
	if err != nil {
		return nil, err
	}

	records := make([]answer.Record, 0, len(solves))
	for i := range solves {
		records = append(records, solveRecord(&solves[i]))
	}

	hints := answer.PickHints{
		SolveID:      solveID,
		UserID:       strconv.FormatUint(uint64(userID), 10),
		FallbackKind: problem.Kind,
	}
	view, picked := resolveView(ctx, problem.Kind, records, hints, s.Enricher)

	detail := &SolveDetail{
		ProblemID: problemID,
		Kind:      problem.Kind,
		View:      view,
	}
	if picked != nil {
		fillGrade(detail, solves, picked)
	}
	return detail, nil
}

// resolveView 는 후보 중 대표 제출을 골라 렌더 상태로 바꾼다. 요약
// 레코드에 본문이 없으면 상세를 한 번만 더 가져오고, 그 조회가
// 실패하면 요약만으로 정규화한 결과를 그대로 쓴다.
func resolveView(ctx context.Context, kind problemkind.Kind, records []answer.Record, hints answer.PickHints, enricher SolveEnricher) (answer.View, answer.Record) {
	picked := answer.PickOne(records, hints)
	if picked == nil {
		return answer.Render(kind, answer.Normalized{Kind: kind}), nil
	}

	n := answer.Normalize(picked, kind)
	if !answer.HasPayload(n) && enricher != nil {
		if id := recordSolveID(picked); id != "" {
			full, err := enricher.FetchDetail(ctx, id)
			if err != nil {
				logger.Log.Warn("solve detail enrichment failed",
					zap.String("solve_id", id), zap.Error(err))
			} else if full != nil {
				n = answer.Normalize(full, kind)
			}
		}
	}
	return answer.Render(kind, n), picked
}

// solveRecord 는 저장된 제출 한 건을 느슨한 레코드로 펼친다. 원본
// 페이로드의 키를 유지하고 메타데이터 키를 덧붙인다.
func solveRecord(s *model.Solve) answer.Record {
	rec := answer.Record{}
	if len(s.Payload) > 0 {
		var body map[string]interface{}
		if err := json.Unmarshal(s.Payload, &body); err == nil {
			for k, v := range body {
				rec[k] = v
			}
		}
	}
	rec["solve_id"] = strconv.FormatUint(uint64(s.ID), 10)
	rec["user_id"] = strconv.FormatUint(uint64(s.UserID), 10)
	if s.Kind != problemkind.None {
		rec["problemType"] = string(s.Kind)
	}
	rec["submitted_at"] = s.SubmittedAt.Format(time.RFC3339Nano)
	return rec
}

func recordSolveID(r answer.Record) string {
	for _, key := range []string{"solve_id", "solveId", "id"} {
		if v, ok := r[key]; ok {
			switch t := v.(type) {
			case string:
				return t
			case float64:
				return strconv.FormatInt(int64(t), 10)
			}
		}
	}
	return ""
}

func fillGrade(detail *SolveDetail, solves []model.Solve, picked answer.Record) {
	id := recordSolveID(picked)
	for i := range solves {
		if strconv.FormatUint(uint64(solves[i].ID), 10) == id {
			detail.SolveID = solves[i].ID
			detail.Status = solves[i].Status
			detail.Score = solves[i].Score
			detail.Feedback = solves[i].Feedback
			return
		}
	}
}

func (s *SolveService) History(userID uint, page, limit int) ([]model.Solve, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.SolveRepo.FindByUser(userID, page, limit)
}
