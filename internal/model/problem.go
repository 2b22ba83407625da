package model

import (
	"encoding/json"

	"codingclass_backend/internal/problemkind"
)

// Problem 문제. Kind 별 전용 필드는 JSON 컬럼에 담는다.
// swagger:model Problem
type Problem struct {
	BaseModel
	Kind        problemkind.Kind `gorm:"size:20;index;not null" json:"kind"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text" json:"description"`
	Difficulty  string           `gorm:"size:20;default:'easy'" json:"difficulty"`
	MakerID     uint             `gorm:"index;type:bigint unsigned" json:"makerId"`
	Maker       *User            `gorm:"foreignKey:MakerID" json:"maker,omitempty"`

	Conditions json.RawMessage `gorm:"type:json" json:"conditions,omitempty"`
	Tags       json.RawMessage `gorm:"type:json" json:"tags,omitempty"`

	// 코딩/디버깅
	TestCases      json.RawMessage `gorm:"type:json" json:"testCases,omitempty"`
	ReferenceCodes json.RawMessage `gorm:"type:json" json:"referenceCodes,omitempty"`
	BaseCodes      json.RawMessage `gorm:"type:json" json:"baseCodes,omitempty"`

	// 객관식. CorrectAnswers 는 항상 0 기반 인덱스.
	Options        json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	CorrectAnswers json.RawMessage `gorm:"type:json" json:"correctAnswers,omitempty"`

	// 단답형/주관식
	AnswerTexts     json.RawMessage `gorm:"type:json" json:"answerTexts,omitempty"`
	GradingCriteria json.RawMessage `gorm:"type:json" json:"gradingCriteria,omitempty"`
	RatingMode      string          `gorm:"size:30" json:"ratingMode,omitempty"`

	Groups []Group `gorm:"many2many:problem_groups" json:"groups,omitempty"`
}

func (Problem) TableName() string {
	return "problems"
}
