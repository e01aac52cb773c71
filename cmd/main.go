package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/rohitsharma007/automation-script-generator/internal/browser"
	"github.com/rohitsharma007/automation-script-generator/internal/cli"
	"github.com/rohitsharma007/automation-script-generator/internal/config"
	"github.com/rohitsharma007/automation-script-generator/internal/database"
	"github.com/rohitsharma007/automation-script-generator/internal/llm"
	"github.com/rohitsharma007/automation-script-generator/internal/logger"
	"github.com/rohitsharma007/automation-script-generator/internal/migrations"
	"github.com/rohitsharma007/automation-script-generator/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := migrations.Run(cfg, log); err != nil {
		log.Fatal("Ошибка миграций", zap.Error(err))
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal("Ошибка подключения к БД", zap.Error(err))
	}
	defer database.Close(db, log)

	repo := database.NewRunRepository(db)

	var oracle llm.Oracle
	if cfg.OpenAI.KeyAI != "" {
		oracle = llm.NewClient(cfg.OpenAI, log)
	} else {
		oracle = llm.NewFallback()
	}

	// Режим HTTP API: asg serve
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		srv := server.New(cfg, log, repo)
		if err := srv.Run(context.Background()); err != nil {
			log.Fatal("Ошибка сервера", zap.Error(err))
		}
		return
	}

	br := browser.New(browser.Config{
		Headless:     cfg.Browser.Headless,
		UserDataDir:  cfg.Browser.UserDataDir,
		BrowsersPath: cfg.Browser.BrowsersPath,
		Display:      cfg.Browser.Display,
	})

	console := cli.New(cfg, log, repo, oracle, br)
	console.Run(context.Background())
}
