package repository

import (
	"codingclass_backend/internal/model"

	"gorm.io/gorm"
)

type SolveRepository struct {
	DB *gorm.DB
}

func NewSolveRepository(db *gorm.DB) *SolveRepository {
	return &SolveRepository{DB: db}
}

func (r *SolveRepository) Create(solve *model.Solve) error {
	return r.DB.Create(solve).Error
}

func (r *SolveRepository) FindByID(id uint) (*model.Solve, error) {
	var solve model.Solve
	err := r.DB.First(&solve, id).Error
	return &solve, err
}

// FindCandidates 는 한 문제에 대한 사용자의 제출을 전부 돌려준다.
// 과거 포맷이 섞인 중복 제출이 있을 수 있어 단건 조회를 하지 않는다.
func (r *SolveRepository) FindCandidates(problemID, userID uint) ([]model.Solve, error) {
	var solves []model.Solve
	err := r.DB.
		Where("problem_id = ? AND user_id = ?", problemID, userID).
		Order("submitted_at DESC, id DESC").
		Find(&solves).Error
	return solves, err
}

func (r *SolveRepository) FindByProblem(problemID uint) ([]model.Solve, error) {
	var solves []model.Solve
	err := r.DB.Preload("User").
		Where("problem_id = ?", problemID).
		Order("submitted_at DESC").
		Find(&solves).Error
	return solves, err
}

func (r *SolveRepository) FindByUser(userID uint, page, limit int) ([]model.Solve, int64, error) {
	q := r.DB.Model(&model.Solve{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var solves []model.Solve
	err := q.Preload("Problem").
		Order("submitted_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&solves).Error
	return solves, total, err
}

func (r *SolveRepository) Update(solve *model.Solve) error {
	return r.DB.Save(solve).Error
}

func (r *SolveRepository) UpdateGrade(id uint, status model.SolveStatus, score *int, feedback string) error {
	updates := map[string]interface{}{
		"status":   status,
		"feedback": feedback,
	}
	if score != nil {
		updates["score"] = *score
	}
	return r.DB.Model(&model.Solve{}).Where("id = ?", id).Updates(updates).Error
}

// StatusCounts 는 필터에 걸린 제출을 상태별로 센다.
func (r *SolveRepository) StatusCounts(f GradingFilter) (map[model.SolveStatus]int64, error) {
	q := r.DB.Model(&model.Solve{})
	if f.GroupID != 0 {
		q = q.Joins("JOIN group_members ON group_members.user_id = solves.user_id").
			Where("group_members.group_id = ? AND group_members.deleted_at IS NULL", f.GroupID)
	}
	if f.ProblemID != 0 {
		q = q.Where("solves.problem_id = ?", f.ProblemID)
	}

	var rows []struct {
		Status model.SolveStatus
		Count  int64
	}
	if err := q.Select("solves.status AS status, COUNT(*) AS count").
		Group("solves.status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[model.SolveStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

type GradingFilter struct {
	GroupID   uint
	ProblemID uint
	Status    model.SolveStatus
	Page      int
	Limit     int
}

// ListForGrading 은 채점 대시보드용으로 반 소속 학생의 제출을 모은다.
func (r *SolveRepository) ListForGrading(f GradingFilter) ([]model.Solve, int64, error) {
	q := r.DB.Model(&model.Solve{})
	if f.GroupID != 0 {
		q = q.Joins("JOIN group_members ON group_members.user_id = solves.user_id").
			Where("group_members.group_id = ? AND group_members.deleted_at IS NULL", f.GroupID)
	}
	if f.ProblemID != 0 {
		q = q.Where("solves.problem_id = ?", f.ProblemID)
	}
	if f.Status != "" {
		q = q.Where("solves.status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	var solves []model.Solve
	err := q.Preload("User").Preload("Problem").
		Order("solves.submitted_at DESC").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Find(&solves).Error
	return solves, total, err
}
