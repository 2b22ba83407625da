package service

import (
	"codingclass_backend/internal/model"
	"codingclass_backend/internal/repository"
	"codingclass_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type WorkbookService struct {
	WorkbookRepo *repository.WorkbookRepository
	GroupRepo    *repository.GroupRepository
}

func NewWorkbookService(workbookRepo *repository.WorkbookRepository, groupRepo *repository.GroupRepository) *WorkbookService {
	return &WorkbookService{
		WorkbookRepo: workbookRepo,
		GroupRepo:    groupRepo,
	}
}

type WorkbookRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	GroupID     uint   `json:"groupId"`
	ProblemIDs  []uint `json:"problemIds"`
}

func (s *WorkbookService) Create(makerID uint, req WorkbookRequest) (*model.Workbook, error) {
	workbook := &model.Workbook{
		Title:       req.Title,
		Description: req.Description,
		MakerID:     makerID,
		GroupID:     req.GroupID,
	}
	if err := s.WorkbookRepo.Create(workbook); err != nil {
		return nil, err
	}
	if len(req.ProblemIDs) > 0 {
		if err := s.WorkbookRepo.ReplaceProblems(workbook.ID, req.ProblemIDs); err != nil {
			return nil, err
		}
	}
	return s.WorkbookRepo.FindByID(workbook.ID)
}

func (s *WorkbookService) GetByID(id uint) (*model.Workbook, error) {
	workbook, err := s.WorkbookRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrWorkbookNotFound
	}
	return workbook, err
}

// WorkbookSummary 목록 화면용 요약. 수록 문제 수를 같이 담는다.
type WorkbookSummary struct {
	model.Workbook
	ProblemCount int64 `json:"problemCount"`
}

func (s *WorkbookService) ListForGroup(groupID uint) ([]WorkbookSummary, error) {
	workbooks, err := s.WorkbookRepo.FindByGroup(groupID)
	if err != nil {
		return nil, err
	}
	return s.summarize(workbooks)
}

func (s *WorkbookService) ListForMaker(makerID uint) ([]WorkbookSummary, error) {
	workbooks, err := s.WorkbookRepo.FindByMaker(makerID)
	if err != nil {
		return nil, err
	}
	return s.summarize(workbooks)
}

func (s *WorkbookService) summarize(workbooks []model.Workbook) ([]WorkbookSummary, error) {
	ids := make([]uint, len(workbooks))
	for i := range workbooks {
		ids[i] = workbooks[i].ID
	}
	counts, err := s.WorkbookRepo.ProblemCounts(ids)
	if err != nil {
		return nil, err
	}

	out := make([]WorkbookSummary, len(workbooks))
	for i := range workbooks {
		out[i] = WorkbookSummary{Workbook: workbooks[i], ProblemCount: counts[workbooks[i].ID]}
	}
	return out, nil
}

func (s *WorkbookService) Update(id, makerID uint, req WorkbookRequest) (*model.Workbook, error) {
	workbook, err := s.mutable(id, makerID)
	if err != nil {
		return nil, err
	}
	if req.Title != "" {
		workbook.Title = req.Title
	}
	workbook.Description = req.Description
	if req.GroupID != 0 {
		workbook.GroupID = req.GroupID
	}
	if err := s.WorkbookRepo.Update(workbook); err != nil {
		return nil, err
	}
	if req.ProblemIDs != nil {
		if err := s.WorkbookRepo.ReplaceProblems(id, req.ProblemIDs); err != nil {
			return nil, err
		}
	}
	return s.WorkbookRepo.FindByID(id)
}

func (s *WorkbookService) Delete(id, makerID uint) error {
	if _, err := s.mutable(id, makerID); err != nil {
		return err
	}
	return s.WorkbookRepo.Delete(id)
}

func (s *WorkbookService) mutable(id, makerID uint) (*model.Workbook, error) {
	workbook, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if workbook.MakerID != makerID {
		return nil, util.ErrPermissionDenied
	}
	return workbook, nil
}
