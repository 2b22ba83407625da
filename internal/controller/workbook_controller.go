package controller

import (
	"codingclass_backend/internal/service"
	"codingclass_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type WorkbookController struct {
	WorkbookService *service.WorkbookService
}

func NewWorkbookController(workbookService *service.WorkbookService) *WorkbookController {
	return &WorkbookController{WorkbookService: workbookService}
}

// Create godoc
// @Summary 문제집 생성
// @Tags 문제집
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.WorkbookRequest true "문제집 내용"
// @Success 201 {object} util.Response{data=model.Workbook}
// @Router /api/workbooks [post]
func (c *WorkbookController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.WorkbookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	workbook, err := c.WorkbookService.Create(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, workbook)
}

// Get godoc
// @Summary 문제집 상세
// @Description 수록 순서대로 문제 목록을 포함한다
// @Tags 문제집
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "문제집 ID"
// @Success 200 {object} util.Response{data=model.Workbook}
// @Failure 404 {object} util.Response
// @Router /api/workbooks/{id} [get]
func (c *WorkbookController) Get(ctx *gin.Context) {
	workbook, err := c.WorkbookService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrWorkbookNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, workbook)
}

// List godoc
// @Summary 문제집 목록
// @Tags 문제집
// @Produce  json
// @Security BearerAuth
// @Param   groupId query int false "반 ID"
// @Success 200 {object} util.Response{data=[]service.WorkbookSummary}
// @Router /api/workbooks [get]
func (c *WorkbookController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if groupID := util.MustParseUint(ctx.Query("groupId")); groupID != 0 {
		workbooks, err := c.WorkbookService.ListForGroup(groupID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, workbooks)
		return
	}

	workbooks, err := c.WorkbookService.ListForMaker(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, workbooks)
}

// Update godoc
// @Summary 문제집 수정
// @Tags 문제집
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id   path int                     true "문제집 ID"
// @Param   body body service.WorkbookRequest true "수정 내용"
// @Success 200 {object} util.Response{data=model.Workbook}
// @Router /api/workbooks/{id} [put]
func (c *WorkbookController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.WorkbookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	workbook, err := c.WorkbookService.Update(util.MustParseUint(ctx.Param("id")), claims.UserID, req)
	if err != nil {
		c.writeWorkbookError(ctx, err)
		return
	}
	util.Success(ctx, workbook)
}

// Delete godoc
// @Summary 문제집 삭제
// @Tags 문제집
// @Security BearerAuth
// @Param   id path int true "문제집 ID"
// @Success 200 {object} util.Response
// @Router /api/workbooks/{id} [delete]
func (c *WorkbookController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.WorkbookService.Delete(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		c.writeWorkbookError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *WorkbookController) writeWorkbookError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrWorkbookNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
