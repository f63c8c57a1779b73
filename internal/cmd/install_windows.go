//go:build windows

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"golang.org/x/sys/windows/registry"
)

const (
	runKeyPath  = `Software\Microsoft\Windows\CurrentVersion\Run`
	runValueKey = "gctrain"
)

func install(exe string, args []string, logger *slog.Logger) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, runKeyPath, registry.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("open run key: %w", err)
	}
	defer key.Close()

	if prev, _, err := key.GetStringValue(runValueKey); err == nil {
		logger.Info("replacing autorun entry", "previous", prev)
	}
	if err := key.SetStringValue(runValueKey, commandLine(exe, args)); err != nil {
		return fmt.Errorf("write run key: %w", err)
	}

	if err := exec.Command(exe, args...).Start(); err != nil {
		return fmt.Errorf("failed to start gctrain: %w", err)
	}

	logger.Info("gctrain install completed for Windows autorun", "exe", exe, "args", args)
	return nil
}

func uninstall(logger *slog.Logger) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			logger.Info("no autorun entry")
			return nil
		}
		return err
	}
	defer key.Close()

	if err := key.DeleteValue(runValueKey); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return err
	}
	logger.Info("gctrain autorun entry removed")
	return nil
}
