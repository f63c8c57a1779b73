//go:build !windows

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const unitName = "gctrain.service"

const unitTemplate = `[Unit]
Description=gctrain controller training relay

[Service]
ExecStart=%s
Restart=on-failure

[Install]
WantedBy=default.target
`

// unitPath is the systemd user unit location.
func unitPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "systemd", "user", unitName), nil
}

func install(exe string, args []string, logger *slog.Logger) error {
	path, err := unitPath()
	if err != nil {
		return err
	}
	if err := writeUnit(path, exe, args); err != nil {
		return err
	}
	logger.Info("gctrain unit installed; enable with systemctl --user enable --now "+unitName, "unit", path)
	return nil
}

func writeUnit(path, exe string, args []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create unit dir: %w", err)
	}
	unit := fmt.Sprintf(unitTemplate, commandLine(exe, args))
	if err := os.WriteFile(path, []byte(unit), 0o644); err != nil {
		return fmt.Errorf("write unit: %w", err)
	}
	return nil
}

func uninstall(logger *slog.Logger) error {
	path, err := unitPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("no unit installed", "unit", path)
			return nil
		}
		return fmt.Errorf("remove unit: %w", err)
	}
	logger.Info("gctrain unit removed; run systemctl --user disable "+unitName, "unit", path)
	return nil
}
