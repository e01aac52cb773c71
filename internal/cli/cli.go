// Package cli — интерактивная консоль для прогона тест-кейсов и
// просмотра истории.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rohitsharma007/automation-script-generator/internal/browser"
	"github.com/rohitsharma007/automation-script-generator/internal/cli/commands"
	"github.com/rohitsharma007/automation-script-generator/internal/cli/ui"
	"github.com/rohitsharma007/automation-script-generator/internal/config"
	"github.com/rohitsharma007/automation-script-generator/internal/database"
	"github.com/rohitsharma007/automation-script-generator/internal/llm"
	"github.com/rohitsharma007/automation-script-generator/internal/logger"
)

type CLI struct {
	cfg            *config.Cfg
	log            *logger.Zap
	rl             *readline.Instance
	runHandler     *commands.RunHandler
	showHandler    *commands.ShowHandler
	suggestHandler *commands.SuggestHandler
	browserHandler *commands.BrowserHandler
}

func New(cfg *config.Cfg, log *logger.Zap, repo *database.RunRepository, oracle llm.Oracle, br browser.Browser) *CLI {
	cli := &CLI{
		cfg: cfg,
		log: log,
	}

	// Инициализация handlers
	cli.runHandler = commands.NewRunHandler(cfg, repo, log.Logger)
	cli.showHandler = commands.NewShowHandler(repo, log.Logger)
	cli.suggestHandler = commands.NewSuggestHandler(oracle)
	cli.browserHandler = commands.NewBrowserHandler(br, cli.readLine)

	// Инициализация readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".asg-history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Warn("Не удалось инициализировать readline, будет использован fallback режим")
	} else {
		cli.rl = rl
	}

	return cli
}

func (c *CLI) readLine() (string, error) {
	if c.rl != nil {
		return c.rl.Readline()
	}
	// Fallback для работы без readline
	reader := bufio.NewReader(os.Stdin)
	println(ui.ColorCyan + "> " + ui.ColorReset)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) closeReadline() {
	if c.rl != nil {
		c.rl.Close()
	}
}

func (c *CLI) Run(ctx context.Context) {
	ui.PrintWelcome()
	defer c.closeReadline()

	for {
		// Проверка отмены контекста
		select {
		case <-ctx.Done():
			println("\n" + ui.ColorCyan + ui.IconWave + " Получен сигнал завершения..." + ui.ColorReset)
			return
		default:
		}

		line, err := c.readLine()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		c.handleCommand(ctx, line)
	}
}

func (c *CLI) handleCommand(ctx context.Context, line string) {
	switch {
	case line == "exit":
		println(ui.ColorCyan + ui.IconWave + " До свидания!" + ui.ColorReset)
		os.Exit(0)

	case line == "clear":
		ui.ClearScreen()

	case strings.HasPrefix(line, "run "):
		path := strings.TrimPrefix(line, "run ")
		c.runHandler.Run(ctx, path)

	case line == "runs":
		c.showHandler.List()

	case strings.HasPrefix(line, "show "):
		idStr := strings.TrimPrefix(line, "show ")
		c.showHandler.Show(idStr)

	case line == "detections":
		c.showHandler.Detections("")

	case strings.HasPrefix(line, "detections "):
		elementType := strings.TrimPrefix(line, "detections ")
		c.showHandler.Detections(elementType)

	case strings.HasPrefix(line, "suggest "):
		description := strings.TrimPrefix(line, "suggest ")
		c.suggestHandler.Suggest(ctx, description)

	case line == "open-persistent":
		c.browserHandler.OpenPersistent(ctx)

	case strings.HasPrefix(line, "open "):
		url := strings.TrimPrefix(line, "open ")
		c.browserHandler.Open(ctx, url)

	default:
		ui.PrintHelp()
	}
}
