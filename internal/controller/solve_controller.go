package controller

import (
	"codingclass_backend/internal/service"
	"codingclass_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SolveController struct {
	SolveService *service.SolveService
}

func NewSolveController(solveService *service.SolveService) *SolveController {
	return &SolveController{SolveService: solveService}
}

// Submit godoc
// @Summary 답안 제출
// @Description 원본 답안을 그대로 저장한다. 단답형/객관식은 즉시 채점된다
// @Tags 제출
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int                   true "문제 ID"
// @Param   body body service.SubmitRequest true "답안"
// @Success 201 {object} util.Response{data=model.Solve}
// @Failure 404 {object} util.Response "문제 없음"
// @Router /api/problems/{id}/solves [post]
func (c *SolveController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	solve, err := c.SolveService.Submit(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, solve)
}

// Detail godoc
// @Summary 제출 조회
// @Description 제출 이력에서 대표 제출을 골라 정규화된 렌더 상태로 돌려준다
// @Tags 제출
// @Produce  json
// @Security BearerAuth
// @Param   id      path  int    true  "문제 ID"
// @Param   solveId query string false "특정 제출 ID"
// @Param   userId  query int    false "조회 대상 학생 (교사용)"
// @Success 200 {object} util.Response{data=service.SolveDetail}
// @Failure 404 {object} util.Response
// @Router /api/problems/{id}/solves/detail [get]
func (c *SolveController) Detail(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	userID := claims.UserID
	// 교사는 다른 학생의 제출을 조회할 수 있다
	if target := util.MustParseUint(ctx.Query("userId")); target != 0 && claims.Role != "student" {
		userID = target
	}

	detail, err := c.SolveService.Detail(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), userID, ctx.Query("solveId"))
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// History godoc
// @Summary 내 제출 이력
// @Tags 제출
// @Produce  json
// @Security BearerAuth
// @Param   page  query int false "페이지"
// @Param   limit query int false "페이지 크기"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/me/solves [get]
func (c *SolveController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	solves, total, err := c.SolveService.History(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: solves, Total: total, Page: page, Limit: limit})
}
