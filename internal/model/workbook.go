package model

// Workbook 문제집. Position 으로 수록 순서를 고정한다.
type Workbook struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	MakerID     uint   `gorm:"index;type:bigint unsigned" json:"makerId"`
	GroupID     uint   `gorm:"index;type:bigint unsigned" json:"groupId"`

	Problems []WorkbookProblem `gorm:"foreignKey:WorkbookID" json:"problems,omitempty"`
}

func (Workbook) TableName() string {
	return "workbooks"
}

type WorkbookProblem struct {
	BaseModel
	WorkbookID uint     `gorm:"index:idx_workbook_problem,unique;type:bigint unsigned" json:"workbookId"`
	ProblemID  uint     `gorm:"index:idx_workbook_problem,unique;type:bigint unsigned" json:"problemId"`
	Position   int      `gorm:"default:0" json:"position"`
	Problem    *Problem `gorm:"foreignKey:ProblemID" json:"problem,omitempty"`
}

func (WorkbookProblem) TableName() string {
	return "workbook_problems"
}
