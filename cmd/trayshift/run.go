// Package main starts the trayshift service.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/frudas24/trayshift/internal/config"
	"github.com/frudas24/trayshift/internal/engine"
	"github.com/frudas24/trayshift/internal/hook"
	"github.com/frudas24/trayshift/internal/winquery"
)

// run wires the engine and blocks until shutdown.
func run(configPath string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.EnableLogging = true
	}
	logStartup(configPath, cfg)

	desk, err := winquery.NewDesktop()
	if err != nil {
		return err
	}

	// The standalone binary runs observe-only; an embedding host supplies
	// a real interception installer.
	eng := engine.New(desk, hook.Nop(), cfg)
	if err := eng.Initialize(); err != nil {
		return err
	}
	defer eng.Shutdown()

	watcher, err := config.Watch(configPath, eng.OnConfigurationChanged)
	if err != nil {
		log.Printf("config watch unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()
	return nil
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints the effective settings.
func logStartup(configPath string, cfg config.Settings) {
	log.Printf("trayshift starting")
	if fileExists(configPath) {
		log.Printf("config check: ok (%s)", configPath)
	} else {
		log.Printf("config check: missing (%s), using defaults", configPath)
	}
	log.Printf("secondary monitor: %d", cfg.SecondaryMonitor)
	log.Printf("poll interval: %s", cfg.PollInterval())
	log.Printf("diagnostic logging: %t", cfg.EnableLogging)
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
