// ABOUTME: The clean subcommand: remove the environment directory
// ABOUTME: Removing an absent environment is not an error

package main

import (
	"github.com/MountainEclipse/venvup/internal/config"
	"github.com/MountainEclipse/venvup/internal/log"
	"github.com/MountainEclipse/venvup/internal/venv"
)

func cmdClean(cfg *config.Config) int {
	env := venv.New(cfg.EnvDir)
	if !env.Exists() {
		log.Info("no environment at %s", cfg.EnvDir)
		return 0
	}
	if err := env.Remove(); err != nil {
		log.Error("removing environment: %v", err)
		return 1
	}
	log.Info("removed %s", cfg.EnvDir)
	return 0
}
