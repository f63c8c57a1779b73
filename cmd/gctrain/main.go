package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sasc/gctrain/internal/cmd"
	"github.com/sasc/gctrain/internal/config"
	"github.com/sasc/gctrain/internal/configpaths"
	"github.com/sasc/gctrain/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"golang.org/x/term"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("gctrain"),
		kong.Description(Description()),
		kong.UsageOnError(),
		kong.Help(styledHelp),
		cmd.Vars(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	console := io.Writer(os.Stdout)
	if strings.HasPrefix(ctx.Command(), "run") && cli.Run.Output == "-" {
		// Reports own stdout.
		console = os.Stderr
	}
	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File, console)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	rawLogger := setupRawLogger(&cli, logger, &closeFiles)

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))
	ctx.Bind(cli.Training)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i, a := range args {
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("GCTRAIN_CONFIG")
}

// setupRawLogger picks the raw report dump target. At trace level the dump
// goes to stderr so it never mixes with reports written to stdout.
func setupRawLogger(cli *config.CLI, logger *slog.Logger, closeFiles *[]io.Closer) log.RawLogger {
	if cli.Log.RawFile != "" {
		f, err := os.OpenFile(cli.Log.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cli.Log.RawFile, "error", err)
			return log.NewRaw(nil)
		}
		*closeFiles = append(*closeFiles, f)
		return log.NewRaw(f)
	}
	if strings.EqualFold(cli.Log.Level, "trace") {
		return log.NewRaw(os.Stderr)
	}
	return log.NewRaw(nil)
}

// styledHelp honours GCTRAIN_HELP_STYLE ("plain", "compact", "tree") and
// otherwise picks compact help on narrow terminals.
func styledHelp(options kong.HelpOptions, ctx *kong.Context) error {
	style := strings.ToLower(os.Getenv("GCTRAIN_HELP_STYLE"))
	if style == "" {
		style = detectHelpStyle()
	}
	switch style {
	case "compact":
		options.Compact = true
	case "tree":
		options.Tree = true
		options.Indenter = kong.TreeIndenter
	}
	return kong.DefaultHelpPrinter(options, ctx)
}

func detectHelpStyle() string {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return "plain"
	}
	if os.Getenv("TERM") == "dumb" {
		return "plain"
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return "plain"
	}
	if width < 100 {
		return "compact"
	}
	return "plain"
}
