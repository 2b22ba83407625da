package controller

import (
	"codingclass_backend/internal/problemkind"
	"codingclass_backend/internal/repository"
	"codingclass_backend/internal/service"
	"codingclass_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProblemController struct {
	ProblemService *service.ProblemService
}

func NewProblemController(problemService *service.ProblemService) *ProblemController {
	return &ProblemController{ProblemService: problemService}
}

// Create godoc
// @Summary 문제 생성
// @Description 유형(코딩/디버깅/객관식/주관식/단답형)별 문제를 만든다
// @Tags 문제
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.ProblemRequest true "문제 내용"
// @Success 201 {object} util.Response{data=model.Problem}
// @Failure 400 {object} util.Response "알 수 없는 유형"
// @Router /api/problems [post]
func (c *ProblemController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problem, err := c.ProblemService.Create(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrUnknownKind) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, problem)
}

// List godoc
// @Summary 문제 목록
// @Tags 문제
// @Produce  json
// @Security BearerAuth
// @Param   kind       query string false "유형 태그"
// @Param   difficulty query string false "난이도"
// @Param   keyword    query string false "제목 검색"
// @Param   mine       query bool   false "내가 만든 문제만"
// @Param   page       query int    false "페이지"
// @Param   limit      query int    false "페이지 크기"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/problems [get]
func (c *ProblemController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	f := repository.ProblemFilter{
		Kind:       problemkind.Coerce(ctx.Query("kind")),
		Difficulty: ctx.Query("difficulty"),
		Keyword:    ctx.Query("keyword"),
		Page:       page,
		Limit:      limit,
	}
	if ctx.Query("mine") == "true" {
		f.MakerID = claims.UserID
	}

	problems, total, err := c.ProblemService.List(f)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: problems, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary 문제 상세
// @Tags 문제
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "문제 ID"
// @Success 200 {object} util.Response{data=model.Problem}
// @Failure 404 {object} util.Response
// @Router /api/problems/{id} [get]
func (c *ProblemController) Get(ctx *gin.Context) {
	problem, err := c.ProblemService.GetByID(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, problem)
}

// ListByGroup godoc
// @Summary 반에 배정된 문제 목록
// @Description 반 소유자 또는 구성원만 조회할 수 있다
// @Tags 문제
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "반 ID"
// @Success 200 {object} util.Response{data=[]model.Problem}
// @Failure 403 {object} util.Response
// @Router /api/groups/{id}/problems [get]
func (c *ProblemController) ListByGroup(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	problems, err := c.ProblemService.ListByGroup(util.MustParseUint(ctx.Param("id")), claims.UserID)
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
	util.Success(ctx, problems)
}

// Update godoc
// @Summary 문제 수정
// @Description 만든 사람만 수정할 수 있다
// @Tags 문제
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int                    true "문제 ID"
// @Param   body body service.ProblemRequest true "수정 내용"
// @Success 200 {object} util.Response{data=model.Problem}
// @Failure 403 {object} util.Response
// @Router /api/problems/{id} [put]
func (c *ProblemController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problem, err := c.ProblemService.Update(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), claims.UserID, req)
	if err != nil {
		c.writeProblemError(ctx, err)
		return
	}
	util.Success(ctx, problem)
}

// Delete godoc
// @Summary 문제 삭제
// @Description 소프트 삭제. 기존 제출은 남는다
// @Tags 문제
// @Security BearerAuth
// @Param   id path int true "문제 ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/problems/{id} [delete]
func (c *ProblemController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ProblemService.Delete(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		c.writeProblemError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type AssignGroupsRequest struct {
	GroupIDs []uint `json:"groupIds" binding:"required"`
}

// AssignGroups godoc
// @Summary 문제를 반에 배정
// @Tags 문제
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int                 true "문제 ID"
// @Param   body body AssignGroupsRequest true "반 ID 목록"
// @Success 200 {object} util.Response
// @Router /api/problems/{id}/groups [put]
func (c *ProblemController) AssignGroups(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AssignGroupsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProblemService.AssignGroups(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), claims.UserID, req.GroupIDs); err != nil {
		c.writeProblemError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ProblemController) writeProblemError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrProblemNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrUnknownKind):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
