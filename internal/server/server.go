// Package server поднимает HTTP API для запуска тест-кейсов и
// просмотра истории прогонов.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rohitsharma007/automation-script-generator/internal/browser"
	"github.com/rohitsharma007/automation-script-generator/internal/config"
	"github.com/rohitsharma007/automation-script-generator/internal/database"
	"github.com/rohitsharma007/automation-script-generator/internal/logger"
	"github.com/rohitsharma007/automation-script-generator/internal/runner"
)

type Server struct {
	cfg  *config.Cfg
	log  *logger.Zap
	repo *database.RunRepository
}

func New(cfg *config.Cfg, log *logger.Zap, repo *database.RunRepository) *Server {
	return &Server{
		cfg:  cfg,
		log:  log,
		repo: repo,
	}
}

func (s *Server) Run(ctx context.Context) error {
	r := gin.New()
	r.Use(gin.Recovery())

	// Простейший лог-мидлвар
	r.Use(func(c *gin.Context) {
		s.log.Info("HTTP",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Запустить тест-кейс
	r.POST("/api/run", func(c *gin.Context) {
		var tc runner.TestCase
		if err := c.ShouldBindJSON(&tc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if tc.TestCaseID == "" || len(tc.TestSteps) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "нужны test_case_id и test_steps"})
			return
		}

		go s.startRun(&tc)
		c.JSON(http.StatusAccepted, gin.H{"test_case_id": tc.TestCaseID, "status": "accepted"})
	})

	// Получить прогон
	r.GET("/api/run/:id", func(c *gin.Context) {
		id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
			return
		}
		run, err := s.repo.GetRunByID(uint(id64))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, run)
	})

	// Шаги прогона
	r.GET("/api/run/:id/steps", func(c *gin.Context) {
		id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
			return
		}
		steps, err := s.repo.ListStepResults(uint(id64))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, steps)
	})

	// Список прогонов
	r.GET("/api/runs", func(c *gin.Context) {
		runs, err := s.repo.ListRuns(50, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, runs)
	})

	// Сработавшие селекторы по типу элемента
	r.GET("/api/detections", func(c *gin.Context) {
		recs, err := s.repo.ListDetections(c.Query("element_type"), 100)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, recs)
	})

	addr := fmt.Sprintf("%s:%s", s.cfg.App.Host, s.cfg.App.Port)
	s.log.Info("Сервер запущен", zap.String("addr", addr))
	return r.Run(addr)
}

// startRun исполняет тест-кейс в фоне: каждому прогону свой браузер.
func (s *Server) startRun(tc *runner.TestCase) {
	b := browser.New(browser.Config{
		Headless:     tc.Headless,
		UserDataDir:  s.cfg.Browser.UserDataDir,
		BrowsersPath: s.cfg.Browser.BrowsersPath,
		Display:      s.cfg.Browser.Display,
	})
	r := runner.New(b, s.repo, s.log.Logger, runner.Config{
		PageObjectDir: s.cfg.Resolver.PageObjectDir,
	})

	if _, err := r.Run(context.Background(), tc); err != nil {
		s.log.Error("фоновый прогон завершился ошибкой",
			zap.String("test_case", tc.TestCaseID),
			zap.Error(err))
	}
}
