package main

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	Version = ""
	Commit  = ""
	Date    = ""
)

var descriptionTemplate = `
GameCube controller training relay
  Version: %s (%s)
           %s

Tap a direction on the D-pad to cycle through its training modes;
one tap past the last mode returns to plain pass-through.
`

func Description() string {
	return fmt.Sprintf(descriptionTemplate, Version, Commit, Date)
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if ok {
		if Version == "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if Commit == "" {
					Commit = shortRevision(setting.Value)
				}
			case "vcs.time":
				if Date == "" {
					Date = buildDate(setting.Value)
				}
			}
		}
	}
	Version = orDefault(Version, "dev")
	Commit = orDefault(Commit, "unknown")
	Date = orDefault(Date, "unknown")
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

func buildDate(v string) string {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.Format("2006-01-02")
	}
	return v
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
