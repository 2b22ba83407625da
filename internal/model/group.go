package model

// Group 반(수업 그룹). 교사가 만들고 학생이 초대 코드로 가입한다.
type Group struct {
	BaseModel
	Name       string `gorm:"size:100;not null" json:"name"`
	Year       int    `gorm:"default:0" json:"year"`
	InviteCode string `gorm:"size:12;uniqueIndex" json:"inviteCode"`
	OwnerID    uint   `gorm:"index;type:bigint unsigned" json:"ownerId"`
	Owner      *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Group) TableName() string {
	return "groups"
}

type GroupMember struct {
	BaseModel
	GroupID uint  `gorm:"index:idx_group_user,unique;type:bigint unsigned" json:"groupId"`
	UserID  uint  `gorm:"index:idx_group_user,unique;type:bigint unsigned" json:"userId"`
	User    *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (GroupMember) TableName() string {
	return "group_members"
}
