package controller

import (
	"codingclass_backend/internal/service"
	"codingclass_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	GroupService *service.GroupService
}

func NewGroupController(groupService *service.GroupService) *GroupController {
	return &GroupController{GroupService: groupService}
}

// Create godoc
// @Summary 반 생성
// @Tags 반
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CreateGroupRequest true "반 정보"
// @Success 201 {object} util.Response{data=model.Group}
// @Router /api/groups [post]
func (c *GroupController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.GroupService.Create(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, group)
}

// List godoc
// @Summary 내 반 목록
// @Description 교사는 소유한 반, 학생은 가입한 반
// @Tags 반
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Group}
// @Router /api/groups [get]
func (c *GroupController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	groups, err := c.GroupService.ListFor(claims)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// Get godoc
// @Summary 반 상세
// @Tags 반
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "반 ID"
// @Success 200 {object} util.Response{data=model.Group}
// @Failure 404 {object} util.Response
// @Router /api/groups/{id} [get]
func (c *GroupController) Get(ctx *gin.Context) {
	group, err := c.GroupService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrGroupNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, group)
}

type JoinGroupRequest struct {
	InviteCode string `json:"inviteCode" binding:"required"`
}

// Join godoc
// @Summary 초대 코드로 가입
// @Tags 반
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body JoinGroupRequest true "초대 코드"
// @Success 200 {object} util.Response{data=model.Group}
// @Failure 400 {object} util.Response
// @Router /api/groups/join [post]
func (c *GroupController) Join(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req JoinGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.GroupService.Join(claims.UserID, req.InviteCode)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, group)
}

// Leave godoc
// @Summary 반 탈퇴
// @Tags 반
// @Security BearerAuth
// @Param   id path int true "반 ID"
// @Success 200 {object} util.Response
// @Router /api/groups/{id}/leave [post]
func (c *GroupController) Leave(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.GroupService.Leave(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Members godoc
// @Summary 반 구성원
// @Tags 반
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "반 ID"
// @Success 200 {object} util.Response{data=[]model.GroupMember}
// @Failure 403 {object} util.Response
// @Router /api/groups/{id}/members [get]
func (c *GroupController) Members(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	members, err := c.GroupService.Members(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGroupNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNotGroupMember):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, members)
}

type UpdateGroupRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

// Update godoc
// @Summary 반 수정
// @Tags 반
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int                true "반 ID"
// @Param   body body UpdateGroupRequest true "수정 내용"
// @Success 200 {object} util.Response{data=model.Group}
// @Router /api/groups/{id} [put]
func (c *GroupController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.GroupService.Update(util.MustParseUint(ctx.Param("id")), claims.UserID, req.Name, req.Year)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGroupNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, group)
}

// Delete godoc
// @Summary 반 삭제
// @Tags 반
// @Security BearerAuth
// @Param   id path int true "반 ID"
// @Success 200 {object} util.Response
// @Router /api/groups/{id} [delete]
func (c *GroupController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.GroupService.Delete(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		switch {
		case errors.Is(err, util.ErrGroupNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
