package repository

import (
	"codingclass_backend/internal/model"

	"gorm.io/gorm"
)

type WorkbookRepository struct {
	DB *gorm.DB
}

func NewWorkbookRepository(db *gorm.DB) *WorkbookRepository {
	return &WorkbookRepository{DB: db}
}

func (r *WorkbookRepository) Create(workbook *model.Workbook) error {
	return r.DB.Create(workbook).Error
}

func (r *WorkbookRepository) FindByID(id uint) (*model.Workbook, error) {
	var workbook model.Workbook
	err := r.DB.
		Preload("Problems", func(db *gorm.DB) *gorm.DB {
			return db.Order("workbook_problems.position")
		}).
		Preload("Problems.Problem").
		First(&workbook, id).Error
	return &workbook, err
}

func (r *WorkbookRepository) FindByGroup(groupID uint) ([]model.Workbook, error) {
	var workbooks []model.Workbook
	err := r.DB.Where("group_id = ?", groupID).Order("id").Find(&workbooks).Error
	return workbooks, err
}

func (r *WorkbookRepository) FindByMaker(makerID uint) ([]model.Workbook, error) {
	var workbooks []model.Workbook
	err := r.DB.Where("maker_id = ?", makerID).Order("id DESC").Find(&workbooks).Error
	return workbooks, err
}

func (r *WorkbookRepository) Update(workbook *model.Workbook) error {
	return r.DB.Save(workbook).Error
}

func (r *WorkbookRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workbook_id = ?", id).Delete(&model.WorkbookProblem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Workbook{}, id).Error
	})
}

// ProblemCounts 는 문제집별 수록 문제 수를 센다.
func (r *WorkbookRepository) ProblemCounts(workbookIDs []uint) (map[uint]int64, error) {
	if len(workbookIDs) == 0 {
		return map[uint]int64{}, nil
	}

	var rows []struct {
		WorkbookID uint
		Count      int64
	}
	if err := r.DB.Model(&model.WorkbookProblem{}).
		Select("workbook_id, COUNT(*) AS count").
		Where("workbook_id IN ?", workbookIDs).
		Group("workbook_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.WorkbookID] = row.Count
	}
	return counts, nil
}

// ReplaceProblems 는 수록 목록 전체를 주어진 순서로 교체한다.
func (r *WorkbookRepository) ReplaceProblems(workbookID uint, problemIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("workbook_id = ?", workbookID).
			Delete(&model.WorkbookProblem{}).Error; err != nil {
			return err
		}
		for i, pid := range problemIDs {
			wp := model.WorkbookProblem{WorkbookID: workbookID, ProblemID: pid, Position: i}
			if err := tx.Create(&wp).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
