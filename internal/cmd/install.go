package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Install registers gctrain to start with the user session.
type Install struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"Arguments for the autostarted run command, e.g. --input /dev/ttyACM0 --output /dev/ttyACM0"`
}

// Uninstall removes the autostart entry.
type Uninstall struct{}

func (c *Install) Run(logger *slog.Logger) error {
	exe, err := installableExecutable()
	if err != nil {
		return err
	}
	return install(exe, append([]string{"run"}, c.Args...), logger)
}

func (c *Uninstall) Run(logger *slog.Logger) error {
	if _, err := installableExecutable(); err != nil {
		return err
	}
	return uninstall(logger)
}

func installableExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if strings.Contains(exe, "go-build") {
		return "", errors.New("cannot install from 'go run'")
	}
	return filepath.Abs(exe)
}

// commandLine quotes exe and args for an autostart entry.
func commandLine(exe string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, fmt.Sprintf("%q", exe))
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'\\") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
