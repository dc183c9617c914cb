package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/edutrack-api/api/swagger"
	"github.com/noah-isme/edutrack-api/internal/ai"
	"github.com/noah-isme/edutrack-api/internal/handler"
	"github.com/noah-isme/edutrack-api/internal/middleware"
	"github.com/noah-isme/edutrack-api/internal/service"
	"github.com/noah-isme/edutrack-api/internal/store"
	"github.com/noah-isme/edutrack-api/pkg/config"
	"github.com/noah-isme/edutrack-api/pkg/export"
	"github.com/noah-isme/edutrack-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/edutrack-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/edutrack-api/pkg/middleware/requestid"
	"github.com/noah-isme/edutrack-api/pkg/storage"
)

// @title EduTrack API
// @version 1.0.0
// @description Classroom gradebook for a single teacher
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	roster := store.NewRoster()
	if cfg.Seed.DemoData {
		store.SeedDemo(roster)
		logr.Info("demo roster seeded")
	}

	exportStorage, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init export storage", "error", err)
	}

	validate := validator.New()

	metricsSvc := service.NewMetricsService()
	aggSvc := service.NewAggregateService(logr)
	studentSvc := service.NewStudentService(roster, validate, logr)
	classSvc := service.NewClassService(roster, validate, logr)
	importSvc := service.NewImportService(roster, logr)
	suggestionSvc := service.NewSuggestionService(roster, logr)
	templateSvc := service.NewTemplateService(roster, validate, logr)
	reportSvc := service.NewReportService(roster, aggSvc, exportStorage, metricsSvc, logr, export.NewCSVExporter(), export.NewPDFExporter())
	advisorSvc := service.NewAdvisorService(roster, aggSvc, ai.NewClient(cfg.AI, logr), validate, metricsSvc, logr)
	authSvc := service.NewAuthService(cfg.Teacher, cfg.JWT, validate, logr)
	streakSvc := service.NewStreakService(cfg.Streak.StateFile, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	classHandler := handler.NewClassHandler(classSvc)
	overviewHandler := handler.NewOverviewHandler(studentSvc, aggSvc, suggestionSvc)
	importHandler := handler.NewImportHandler(importSvc, metricsSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	templateHandler := handler.NewTemplateHandler(templateSvc)
	advisorHandler := handler.NewAdvisorHandler(advisorSvc)
	streakHandler := handler.NewStreakHandler(streakSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/students", studentHandler.List)
		protected.POST("/students", studentHandler.Create)
		protected.GET("/students/:id", studentHandler.Get)
		protected.PUT("/students/:id", studentHandler.Update)
		protected.DELETE("/students/:id", studentHandler.Delete)
		protected.POST("/students/:id/grades", studentHandler.AddGrade)
		protected.PUT("/students/:id/grades/:gradeId", studentHandler.UpdateGrade)
		protected.DELETE("/students/:id/grades/:gradeId", studentHandler.DeleteGrade)
		protected.POST("/students/:id/logs", studentHandler.AddDailyLog)
		protected.DELETE("/students/:id/logs/:logId", studentHandler.DeleteDailyLog)
		protected.POST("/students/:id/comments", studentHandler.AddComment)
		protected.DELETE("/students/:id/comments/:commentId", studentHandler.DeleteComment)
		protected.PUT("/students/:id/goals", studentHandler.SetGoals)
		protected.GET("/students/:id/overview", overviewHandler.StudentOverview)

		protected.GET("/suggestions", overviewHandler.Suggestions)

		protected.GET("/classes", classHandler.List)
		protected.POST("/classes", classHandler.Create)
		protected.GET("/classes/:id", classHandler.Get)
		protected.PUT("/classes/:id", classHandler.Update)
		protected.POST("/classes/:id/delete-request", classHandler.RequestDeletion)
		protected.POST("/classes/:id/delete-confirm", classHandler.ConfirmDeletion)

		protected.POST("/import", importHandler.Upload)
		protected.GET("/import/template", importHandler.Template)

		protected.GET("/reports/school.csv", reportHandler.SchoolCSV)
		protected.GET("/reports/classes/:id/pdf", reportHandler.ClassPDF)
		protected.GET("/reports/students/:id/pdf", reportHandler.StudentPDF)

		protected.GET("/templates", templateHandler.List)
		protected.POST("/templates", templateHandler.Create)
		protected.PUT("/templates/:id", templateHandler.Update)
		protected.DELETE("/templates/:id", templateHandler.Delete)

		protected.POST("/advisor/draft", advisorHandler.Draft)
		protected.POST("/advisor/expand", advisorHandler.ExpandKeywords)

		protected.GET("/streak", streakHandler.Current)
		protected.POST("/streak/touch", streakHandler.Touch)

		protected.GET("/metrics/snapshot", metricsHandler.Snapshot)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
