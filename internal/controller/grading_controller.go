package controller

import (
	"codingclass_backend/internal/model"
	"codingclass_backend/internal/repository"
	"codingclass_backend/internal/service"
	"codingclass_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GradingController struct {
	GradingService *service.GradingService
}

func NewGradingController(gradingService *service.GradingService) *GradingController {
	return &GradingController{GradingService: gradingService}
}

// Dashboard godoc
// @Summary 채점 대시보드
// @Description 반/문제/상태로 거른 제출 목록. 답안은 정규화된 렌더 상태로 담긴다
// @Tags 채점
// @Produce  json
// @Security BearerAuth
// @Param   groupId   query int    false "반 ID"
// @Param   problemId query int    false "문제 ID"
// @Param   status    query string false "pending, graded, correct, wrong"
// @Param   page      query int    false "페이지"
// @Param   limit     query int    false "페이지 크기"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/grading [get]
func (c *GradingController) Dashboard(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	f := repository.GradingFilter{
		GroupID:   util.MustParseUint(ctx.Query("groupId")),
		ProblemID: util.MustParseUint(ctx.Query("problemId")),
		Status:    model.SolveStatus(ctx.Query("status")),
		Page:      page,
		Limit:     limit,
	}

	rows, total, err := c.GradingService.Dashboard(f)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: rows, Total: total, Page: page, Limit: limit})
}

// Summary godoc
// @Summary 채점 현황 집계
// @Description 반/문제 필터에 걸린 제출을 상태별로 센다
// @Tags 채점
// @Produce  json
// @Security BearerAuth
// @Param   groupId   query int false "반 ID"
// @Param   problemId query int false "문제 ID"
// @Success 200 {object} util.Response{data=service.GradingSummary}
// @Router /api/grading/summary [get]
func (c *GradingController) Summary(ctx *gin.Context) {
	f := repository.GradingFilter{
		GroupID:   util.MustParseUint(ctx.Query("groupId")),
		ProblemID: util.MustParseUint(ctx.Query("problemId")),
	}

	summary, err := c.GradingService.Summary(f)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// Grade godoc
// @Summary 수동 채점
// @Tags 채점
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int                  true "제출 ID"
// @Param   body body service.GradeRequest true "점수와 피드백"
// @Success 200 {object} util.Response{data=model.Solve}
// @Failure 404 {object} util.Response
// @Router /api/grading/{id} [put]
func (c *GradingController) Grade(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	solve, err := c.GradingService.Grade(util.MustParseUint(ctx.Param("id")), claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrSolveNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, solve)
}
