package model

import (
	"encoding/json"
	"time"

	"codingclass_backend/internal/problemkind"
)

type SolveStatus string

const (
	SolvePending SolveStatus = "pending"
	SolveGraded  SolveStatus = "graded"
	SolveCorrect SolveStatus = "correct"
	SolveWrong   SolveStatus = "wrong"
)

// Solve 제출. Payload 는 클라이언트가 보낸 원본 답안을 그대로 보존하고,
// 조회 시점에 정규화한다. 과거 포맷의 제출도 그대로 남아 있다.
// swagger:model Solve
type Solve struct {
	BaseModel
	ProblemID   uint             `gorm:"index;type:bigint unsigned" json:"problemId"`
	UserID      uint             `gorm:"index;type:bigint unsigned" json:"userId"`
	WorkbookID  uint             `gorm:"index;type:bigint unsigned" json:"workbookId,omitempty"`
	Kind        problemkind.Kind `gorm:"size:20" json:"kind"`
	Payload     json.RawMessage  `gorm:"type:json" json:"payload"`
	Status      SolveStatus      `gorm:"size:20;default:'pending'" json:"status"`
	Score       *int             `json:"score,omitempty"`
	Feedback    string           `gorm:"type:text" json:"feedback,omitempty"`
	SubmittedAt time.Time        `gorm:"index" json:"submittedAt"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Problem *Problem `gorm:"foreignKey:ProblemID" json:"problem,omitempty"`
}

func (Solve) TableName() string {
	return "solves"
}
