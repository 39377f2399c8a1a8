package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chapters/internal/app"
	"github.com/llehouerou/chapters/internal/chapters"
	"github.com/llehouerou/chapters/internal/config"
	"github.com/llehouerou/chapters/internal/errmsg"
	"github.com/llehouerou/chapters/internal/logger"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: chapters <file>")
		os.Exit(2)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	if err := logger.Init(cfg.Log.File, cfg.Log.Debug); err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogInit, err))
	}
	defer logger.Close()
	log := logger.ComponentLogger("main")

	track, err := chapters.LoadTrack(path)
	if err != nil {
		log.Error("load track", "path", path, "err", err)
		return errors.New(errmsg.FormatWith(errmsg.OpChaptersLoad, path, err))
	}
	log.Info("track loaded", "path", path, "chapters", len(track.Chapters), "duration", track.Duration)

	m := app.New(cfg, track)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program exited", "err", err)
		return errors.New(errmsg.Format(errmsg.OpUIRun, err))
	}
	return nil
}
