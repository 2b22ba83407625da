package repository

import (
	"codingclass_backend/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) Create(group *model.Group) error {
	return r.DB.Create(group).Error
}

func (r *GroupRepository) FindByID(id uint) (*model.Group, error) {
	var group model.Group
	err := r.DB.Preload("Owner").First(&group, id).Error
	return &group, err
}

func (r *GroupRepository) FindByInviteCode(code string) (*model.Group, error) {
	var group model.Group
	err := r.DB.Where("invite_code = ?", code).First(&group).Error
	return &group, err
}

func (r *GroupRepository) FindByOwner(ownerID uint) ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.Where("owner_id = ?", ownerID).Order("id").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) FindByMember(userID uint) ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ? AND group_members.deleted_at IS NULL", userID).
		Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) Update(group *model.Group) error {
	return r.DB.Save(group).Error
}

func (r *GroupRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Group{}, id).Error
}

func (r *GroupRepository) AddMember(groupID, userID uint) error {
	return r.DB.Create(&model.GroupMember{GroupID: groupID, UserID: userID}).Error
}

func (r *GroupRepository) RemoveMember(groupID, userID uint) error {
	return r.DB.
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMember{}).Error
}

func (r *GroupRepository) IsMember(groupID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *GroupRepository) Members(groupID uint) ([]model.GroupMember, error) {
	var members []model.GroupMember
	err := r.DB.Preload("User").
		Where("group_id = ?", groupID).
		Order("id").
		Find(&members).Error
	return members, err
}
