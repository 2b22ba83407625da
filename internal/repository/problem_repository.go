package repository

import (
	"codingclass_backend/internal/model"
	"codingclass_backend/internal/problemkind"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

func (r *ProblemRepository) Create(problem *model.Problem) error {
	return r.DB.Create(problem).Error
}

func (r *ProblemRepository) CreateBatch(problems []model.Problem) error {
	if len(problems) == 0 {
		return nil
	}
	return r.DB.Create(&problems).Error
}

func (r *ProblemRepository) FindByID(id uint) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.Preload("Maker").First(&problem, id).Error
	return &problem, err
}

// FindByIDAny 는 소프트 삭제된 문제도 포함한다. 기존 제출 조회용.
func (r *ProblemRepository) FindByIDAny(id uint) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.Unscoped().First(&problem, id).Error
	return &problem, err
}

type ProblemFilter struct {
	Kind       problemkind.Kind
	MakerID    uint
	Difficulty string
	Keyword    string
	Page       int
	Limit      int
}

func (r *ProblemRepository) List(f ProblemFilter) ([]model.Problem, int64, error) {
	q := r.DB.Model(&model.Problem{})
	if f.Kind != problemkind.None {
		q = q.Where("kind = ?", f.Kind)
	}
	if f.MakerID != 0 {
		q = q.Where("maker_id = ?", f.MakerID)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}
	if f.Keyword != "" {
		q = q.Where("title LIKE ?", "%"+f.Keyword+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var problems []model.Problem
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	err := q.Order("id DESC").Offset((f.Page - 1) * f.Limit).Limit(f.Limit).Find(&problems).Error
	return problems, total, err
}

func (r *ProblemRepository) Update(problem *model.Problem) error {
	return r.DB.Save(problem).Error
}

func (r *ProblemRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Problem{}, id).Error
}

func (r *ProblemRepository) AssignGroups(problemID uint, groupIDs []uint) error {
	var problem model.Problem
	if err := r.DB.First(&problem, problemID).Error; err != nil {
		return err
	}
	groups := make([]model.Group, len(groupIDs))
	for i, id := range groupIDs {
		groups[i] = model.Group{BaseModel: model.BaseModel{ID: id}}
	}
	return r.DB.Model(&problem).Association("Groups").Replace(groups)
}

func (r *ProblemRepository) FindByGroup(groupID uint) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.DB.
		Joins("JOIN problem_groups ON problem_groups.problem_id = problems.id").
		Where("problem_groups.group_id = ?", groupID).
		Order("problems.id").
		Find(&problems).Error
	return problems, err
}
