// 초기 데이터 시드 스크립트
//
// 빈 데이터베이스에 관리자 계정과 유형별 샘플 문제를 넣는다. 이미
// 계정이 있으면 건너뛴다.
//
// 사용법: go run scripts/seed.go

package main

import (
	"codingclass_backend/internal/config"
	"codingclass_backend/internal/importer"
	"codingclass_backend/internal/model"
	"codingclass_backend/internal/repository"
	"codingclass_backend/pkg/database"
	"codingclass_backend/pkg/logger"
	"encoding/json"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("설정을 읽을 수 없습니다: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("데이터베이스 연결 실패: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	admin, err := userRepo.FindByEmail("admin@codingclass.io")
	if err == nil {
		log.Printf("관리자 계정이 이미 있습니다 (id=%d), 시드를 건너뜁니다", admin.ID)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("계정 조회 실패: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme-now"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("비밀번호 해시 실패: %v", err)
	}
	admin = &model.User{
		Name:     "관리자",
		Email:    "admin@codingclass.io",
		Password: string(hashed),
		Role:     model.Admin,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatalf("관리자 계정 생성 실패: %v", err)
	}
	log.Printf("관리자 계정 생성 (id=%d)", admin.ID)

	rows := []importer.Row{
		{"유형": "코딩", "제목": "두 수의 합", "설명": "두 정수를 읽어 합을 출력한다.",
			"테스트케이스": `[{"input":"1 2","output":"3"},{"input":"-1 1","output":"0"}]`},
		{"유형": "디버깅", "제목": "무한 루프 고치기", "기본코드": "while True:\n    pass"},
		{"유형": "객관식", "제목": "파이썬 리스트", "보기": `["append","push","add","insert_back"]`, "정답번호": "1"},
		{"유형": "단답형", "제목": "길이 함수", "정답": `["len","length"]`},
		{"유형": "주관식", "제목": "재귀란 무엇인가", "채점기준": "기저 조건, 자기 호출"},
	}
	batch := importer.BuildBatch(rows)

	problemRepo := repository.NewProblemRepository(db)
	for _, p := range batch {
		problem := model.Problem{
			Kind:        p.Kind,
			Title:       p.Title,
			Description: p.Description,
			Difficulty:  "easy",
			MakerID:     admin.ID,
		}
		problem.TestCases = rawOrNil(p.TestCases, len(p.TestCases) > 0)
		problem.BaseCodes = rawOrNil(p.BaseCodes, len(p.BaseCodes) > 0)
		problem.Options = rawOrNil(p.Options, len(p.Options) > 0)
		problem.CorrectAnswers = rawOrNil(p.CorrectAnswers, len(p.CorrectAnswers) > 0)
		problem.AnswerTexts = rawOrNil(p.AnswerTexts, len(p.AnswerTexts) > 0)
		problem.GradingCriteria = rawOrNil(p.GradingCriteria, len(p.GradingCriteria) > 0)
		if err := problemRepo.Create(&problem); err != nil {
			log.Fatalf("샘플 문제 생성 실패: %v", err)
		}
	}
	log.Printf("샘플 문제 %d건 생성 완료", len(batch))
}

func rawOrNil(v interface{}, ok bool) json.RawMessage {
	if !ok {
		return nil
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return buf
}
