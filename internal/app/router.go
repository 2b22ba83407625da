package app

import (
	"codingclass_backend/docs"
	"codingclass_backend/internal/config"
	"codingclass_backend/internal/middleware"
	"codingclass_backend/internal/model"
	"codingclass_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 공개 라우트
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// 로그인 필요 라우트
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

// 학생/공통 라우트
func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)
	rg.PUT("/me/profile", c.user.UpdateProfile)
	rg.PUT("/me/password", c.user.ChangePassword)
	rg.GET("/me/solves", c.solve.History)

	rg.GET("/groups", c.group.List)
	rg.GET("/groups/:id", c.group.Get)
	rg.POST("/groups/join", c.group.Join)
	rg.POST("/groups/:id/leave", c.group.Leave)
	rg.GET("/groups/:id/members", c.group.Members)
	rg.GET("/groups/:id/problems", c.problem.ListByGroup)

	rg.GET("/problems", c.problem.List)
	rg.GET("/problems/:id", c.problem.Get)

	rg.GET("/workbooks", c.workbook.List)
	rg.GET("/workbooks/:id", c.workbook.Get)

	rg.POST("/problems/:id/solves", c.solve.Submit)
	rg.GET("/problems/:id/solves/detail", c.solve.Detail)
}

// 교사 라우트
func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		teacher.POST("/groups", c.group.Create)
		teacher.PUT("/groups/:id", c.group.Update)
		teacher.DELETE("/groups/:id", c.group.Delete)

		teacher.POST("/problems", c.problem.Create)
		teacher.PUT("/problems/:id", c.problem.Update)
		teacher.DELETE("/problems/:id", c.problem.Delete)
		teacher.PUT("/problems/:id/groups", c.problem.AssignGroups)
		teacher.POST("/problems/import", c.imports.ImportXLSX)

		teacher.POST("/workbooks", c.workbook.Create)
		teacher.PUT("/workbooks/:id", c.workbook.Update)
		teacher.DELETE("/workbooks/:id", c.workbook.Delete)

		teacher.POST("/uploads/image", c.upload.UploadImage)

		teacher.GET("/grading", c.grading.Dashboard)
		teacher.GET("/grading/summary", c.grading.Summary)
		teacher.PUT("/grading/:id", c.grading.Grade)
	}
}

// 관리자 라우트
func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
	}
}
