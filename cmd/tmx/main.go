package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/suchismita05092005-bit/EverydayTasks/internal/board"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/civiltime"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/config"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/engine"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/store"
	"github.com/suchismita05092005-bit/EverydayTasks/internal/ui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.InfoLevel,
		Prefix: "tmx",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("invalid log level, keeping info", "log_level", cfg.LogLevel)
	}

	order, err := engine.ParseOrder(cfg.Order)
	if err != nil {
		logger.Fatal("invalid config", "err", err)
	}
	dueDefault, err := civiltime.ParseDefaultDueTime(cfg.DefaultDueTime)
	if err != nil {
		logger.Fatal("invalid config", "err", err)
	}

	st, err := store.NewStore(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to initialize store", "err", err)
	}
	logger.Debug("using task file", "path", st.Path())

	b, recovered, err := board.Load(st, board.Config{
		Order:          order,
		DefaultDueTime: dueDefault,
	})
	if err != nil {
		logger.Fatal("failed to load tasks", "err", err)
	}

	m := ui.New(b, cfg.Refresh())
	if recovered {
		logger.Warn("task file corrupted; starting with empty board", "path", st.Path())
		m.SetStatus("Corrupt data detected; started empty", true)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Fatal("error running program", "err", err)
	}
}
