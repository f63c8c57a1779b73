// Package config defines the CLI structure and configuration for gctrain.
package config

import (
	"github.com/sasc/gctrain/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"GCTRAIN_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"GCTRAIN_LOG_FILE"`
	RawFile string `help:"Raw report log file path (default: none)" env:"GCTRAIN_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Config   string       `help:"Configuration file (JSON, YAML or TOML)" type:"path" env:"GCTRAIN_CONFIG"`
	Log      `embed:"" prefix:"log."`
	Training cmd.Training `embed:"" prefix:"training."`

	Run       cmd.Run       `cmd:"" default:"withargs" help:"Run the training pipeline between controller and console"`
	Proxy     cmd.Proxy     `cmd:"" help:"Relay a TCP report stream through the training pipeline"`
	Layout    cmd.Layout    `cmd:"" help:"Print the effective slot layout"`
	Install   cmd.Install   `cmd:"" help:"Start gctrain automatically with the user session"`
	Uninstall cmd.Uninstall `cmd:"" help:"Remove the autostart entry"`
}
