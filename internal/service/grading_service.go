package service

import (
	"codingclass_backend/internal/answer"
	"codingclass_backend/internal/model"
	"codingclass_backend/internal/repository"
	"codingclass_backend/internal/util"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type GradingService struct {
	SolveRepo   *repository.SolveRepository
	ProblemRepo *repository.ProblemRepository
	GroupRepo   *repository.GroupRepository
}

func NewGradingService(solveRepo *repository.SolveRepository, problemRepo *repository.ProblemRepository, groupRepo *repository.GroupRepository) *GradingService {
	return &GradingService{
		SolveRepo:   solveRepo,
		ProblemRepo: problemRepo,
		GroupRepo:   groupRepo,
	}
}

// GradingRow 는 채점 대시보드의 한 줄이다. 제출 원본 대신 정규화된
// 렌더 상태를 담아 과거 포맷 제출도 일관된 모양으로 보여준다.
type GradingRow struct {
	SolveID     uint              `json:"solveId"`
	ProblemID   uint              `json:"problemId"`
	Title       string            `json:"title"`
	StudentID   uint              `json:"studentId"`
	StudentName string            `json:"studentName"`
	Status      model.SolveStatus `json:"status"`
	Score       *int              `json:"score,omitempty"`
	View        answer.View       `json:"view"`
}

func (s *GradingService) Dashboard(f repository.GradingFilter) ([]GradingRow, int64, error) {
	solves, total, err := s.SolveRepo.ListForGrading(f)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]GradingRow, 0, len(solves))
	for i := range solves {
		sv := &solves[i]
		row := GradingRow{
			SolveID:   sv.ID,
			ProblemID: sv.ProblemID,
			StudentID: sv.UserID,
			Status:    sv.Status,
			Score:     sv.Score,
		}
		if sv.User != nil {
			row.StudentName = sv.User.Name
		}

		kind := sv.Kind
		if sv.Problem != nil {
			row.Title = sv.Problem.Title
			kind = sv.Problem.Kind
		}

		var rec answer.Record
		if err := json.Unmarshal(sv.Payload, &rec); err != nil {
			rec = answer.Record{}
		}
		row.View = answer.Render(kind, answer.Normalize(rec, kind))
		rows = append(rows, row)
	}
	return rows, total, nil
}

// GradingSummary 반/문제 단위 채점 현황 집계
type GradingSummary struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
	Graded  int64 `json:"graded"`
	Correct int64 `json:"correct"`
	Wrong   int64 `json:"wrong"`
}

func (s *GradingService) Summary(f repository.GradingFilter) (*GradingSummary, error) {
	counts, err := s.SolveRepo.StatusCounts(f)
	if err != nil {
		return nil, err
	}
	summary := &GradingSummary{
		Pending: counts[model.SolvePending],
		Graded:  counts[model.SolveGraded],
		Correct: counts[model.SolveCorrect],
		Wrong:   counts[model.SolveWrong],
	}
	summary.Total = summary.Pending + summary.Graded + summary.Correct + summary.Wrong
	return summary, nil
}

type GradeRequest struct {
	Score    *int   `json:"score" binding:"required"`
	Feedback string `json:"feedback"`
}

// Grade 는 교사의 수동 채점을 기록한다.
func (s *GradingService) Grade(solveID, graderID uint, req GradeRequest) (*model.Solve, error) {
	solve, err := s.SolveRepo.FindByID(solveID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSolveNotFound
	} else if err != nil {
		return nil, err
	}

	if err := s.SolveRepo.UpdateGrade(solveID, model.SolveGraded, req.Score, req.Feedback); err != nil {
		return nil, err
	}
	solve.Status = model.SolveGraded
	solve.Score = req.Score
	solve.Feedback = req.Feedback
	return solve, nil
}
