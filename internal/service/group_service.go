package service

import (
	"codingclass_backend/internal/model"
	"codingclass_backend/internal/repository"
	"codingclass_backend/internal/util"
	"crypto/rand"
	"errors"

	"gorm.io/gorm"
)

type GroupService struct {
	GroupRepo *repository.GroupRepository
}

func NewGroupService(groupRepo *repository.GroupRepository) *GroupService {
	return &GroupService{GroupRepo: groupRepo}
}

// inviteCodeAlphabet 은 혼동하기 쉬운 0/O, 1/I 를 뺀 문자 집합.
const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newInviteCode() string {
	b := make([]byte, 8)
	rand.Read(b)
	for i := range b {
		b[i] = inviteCodeAlphabet[int(b[i])%len(inviteCodeAlphabet)]
	}
	return string(b)
}

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
	Year int    `json:"year"`
}

func (s *GroupService) Create(ownerID uint, req CreateGroupRequest) (*model.Group, error) {
	group := &model.Group{
		Name:       req.Name,
		Year:       req.Year,
		OwnerID:    ownerID,
		InviteCode: newInviteCode(),
	}
	return group, s.GroupRepo.Create(group)
}

func (s *GroupService) GetByID(id uint) (*model.Group, error) {
	group, err := s.GroupRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGroupNotFound
	}
	return group, err
}

// ListFor 는 교사에게는 소유한 반, 학생에게는 가입한 반을 돌려준다.
func (s *GroupService) ListFor(claims *util.Claims) ([]model.Group, error) {
	if claims.Role == model.Teacher || claims.Role == model.Admin {
		return s.GroupRepo.FindByOwner(claims.UserID)
	}
	return s.GroupRepo.FindByMember(claims.UserID)
}

func (s *GroupService) Join(userID uint, inviteCode string) (*model.Group, error) {
	group, err := s.GroupRepo.FindByInviteCode(inviteCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrInviteCodeInvalid
	} else if err != nil {
		return nil, err
	}

	joined, err := s.GroupRepo.IsMember(group.ID, userID)
	if err != nil {
		return nil, err
	}
	if joined {
		return nil, util.ErrAlreadyGroupMember
	}
	return group, s.GroupRepo.AddMember(group.ID, userID)
}

func (s *GroupService) Leave(groupID, userID uint) error {
	return s.GroupRepo.RemoveMember(groupID, userID)
}

func (s *GroupService) Members(groupID, requesterID uint) ([]model.GroupMember, error) {
	group, err := s.GetByID(groupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != requesterID {
		joined, err := s.GroupRepo.IsMember(groupID, requesterID)
		if err != nil {
			return nil, err
		}
		if !joined {
			return nil, util.ErrNotGroupMember
		}
	}
	return s.GroupRepo.Members(groupID)
}

func (s *GroupService) Update(groupID, ownerID uint, name string, year int) (*model.Group, error) {
	group, err := s.GetByID(groupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != ownerID {
		return nil, util.ErrPermissionDenied
	}
	if name != "" {
		group.Name = name
	}
	if year != 0 {
		group.Year = year
	}
	return group, s.GroupRepo.Update(group)
}

func (s *GroupService) Delete(groupID, ownerID uint) error {
	group, err := s.GetByID(groupID)
	if err != nil {
		return err
	}
	if group.OwnerID != ownerID {
		return util.ErrPermissionDenied
	}
	return s.GroupRepo.Delete(groupID)
}
