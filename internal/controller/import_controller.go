package controller

import (
	"codingclass_backend/internal/service"
	"codingclass_backend/internal/util"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	ImportService *service.ImportService
}

func NewImportController(importService *service.ImportService) *ImportController {
	return &ImportController{ImportService: importService}
}

// ImportXLSX godoc
// @Summary 문제 일괄 가져오기
// @Description 스프레드시트(xlsx) 한 장을 문제 일괄 생성으로 바꾼다.
// @Description 헤더는 한국어/영어 모두 되고, 유형을 알 수 없는 행은 버린다
// @Tags 가져오기
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "xlsx 파일"
// @Success 200 {object} util.Response{data=service.ImportResult}
// @Failure 400 {object} util.Response "파일 오류"
// @Router /api/problems/import [post]
func (c *ImportController) ImportXLSX(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "파일이 없습니다")
		return
	}

	ext := filepath.Ext(file.Filename)
	allowed := false
	for _, e := range util.AllowedSheetExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, "xlsx 파일만 지원합니다")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	result, err := c.ImportService.ImportXLSX(claims.UserID, src)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, result)
}
