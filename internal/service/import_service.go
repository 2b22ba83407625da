package service

import (
	"codingclass_backend/internal/config"
	"codingclass_backend/internal/importer"
	"codingclass_backend/internal/model"
	"codingclass_backend/internal/util"
	"codingclass_backend/pkg/logger"
	"codingclass_backend/pkg/monitoring"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ImportService struct {
	ProblemService *ProblemService
	Cfg            *config.Config
}

func NewImportService(problemService *ProblemService, cfg *config.Config) *ImportService {
	return &ImportService{
		ProblemService: problemService,
		Cfg:            cfg,
	}
}

type ImportResult struct {
	Created int             `json:"created"`
	Dropped int             `json:"dropped"`
	Rows    int             `json:"rows"`
	Items   []model.Problem `json:"items"`
}

// ImportXLSX 는 스프레드시트 한 장을 문제 일괄 생성으로 바꾼다. 헤더는
// 한국어/영어 어느 쪽이든 되고, 유형을 알 수 없는 행은 버린다.
func (s *ImportService) ImportXLSX(makerID uint, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("시트를 열 수 없습니다: %w", err)
	}
	defer f.Close()

	sheet := s.Cfg.Import.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("시트를 읽을 수 없습니다: %w", err)
	}
	if len(cells) < 2 {
		return nil, util.ErrEmptySheet
	}

	headers := cells[0]
	body := cells[1:]
	if max := s.Cfg.Import.MaxRows; max > 0 && len(body) > max {
		return nil, fmt.Errorf("행이 너무 많습니다 (최대 %d행)", max)
	}

	rows := make([]importer.Row, 0, len(body))
	for _, line := range body {
		if emptyLine(line) {
			continue
		}
		row := make(importer.Row, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(line) || line[i] == "" {
				continue
			}
			row[h] = line[i]
		}
		rows = append(rows, row)
	}

	batch := importer.BuildBatch(rows)
	dropped := importer.Dropped(rows)

	problems, err := s.ProblemService.CreateBatch(makerID, batch)
	if err != nil {
		return nil, err
	}

	monitoring.ImportRowCounter.WithLabelValues("created").Add(float64(len(problems)))
	monitoring.ImportRowCounter.WithLabelValues("dropped").Add(float64(dropped))
	logger.Log.Info("problem import finished",
		zap.Uint("maker_id", makerID),
		zap.Int("rows", len(rows)),
		zap.Int("created", len(problems)),
		zap.Int("dropped", dropped))

	return &ImportResult{
		Created: len(problems),
		Dropped: dropped,
		Rows:    len(rows),
		Items:   problems,
	}, nil
}

func emptyLine(line []string) bool {
	for _, c := range line {
		if c != "" {
			return false
		}
	}
	return true
}
