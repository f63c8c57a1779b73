package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sasc/gctrain/diff"
	"github.com/sasc/gctrain/internal/layout"
	"github.com/sasc/gctrain/internal/serial"
	"github.com/sasc/gctrain/modifier"
	"github.com/sasc/gctrain/selector"
)

// Training holds the options shared by every command that runs the handler.
type Training struct {
	Layout            string        `help:"Slot layout file (YAML or TOML); default layout when empty" type:"path" env:"GCTRAIN_LAYOUT"`
	RecordingCapacity int           `help:"Maximum number of recorded frames" default:"${recording_capacity}" env:"GCTRAIN_RECORDING_CAPACITY"`
	DriftTolerance    int16         `help:"Largest analog change ignored while recording" default:"${drift_tolerance}" env:"GCTRAIN_DRIFT_TOLERANCE"`
	DIPeriod          time.Duration `help:"How long DI modifiers hold a direction" default:"${di_period}" env:"GCTRAIN_DI_PERIOD"`
	Seed              uint64        `help:"Random DI seed (0: seeded from the clock)" env:"GCTRAIN_SEED"`
}

// Vars supplies the package defaults to the ${...} placeholders in the
// command structs' default tags.
func Vars() kong.Vars {
	return kong.Vars{
		"recording_capacity": strconv.Itoa(modifier.DefaultStoreCapacity),
		"drift_tolerance":    strconv.Itoa(int(diff.DefaultDriftTolerance)),
		"di_period":          modifier.DefaultDIPeriod.String(),
		"baud":               strconv.Itoa(serial.DefaultBaud),
	}
}

// Handler builds the selection handler. Recorder and player share one store.
func (t Training) Handler(logger *slog.Logger) (*selector.Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l, err := layout.Load(t.Layout)
	if err != nil {
		return nil, err
	}
	store, err := diff.NewStore(t.RecordingCapacity)
	if err != nil {
		return nil, fmt.Errorf("recording capacity: %w", err)
	}

	seed := t.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	deps := modifier.Deps{
		Store:          store,
		Logger:         logger,
		Rand:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		DIPeriod:       t.DIPeriod,
		DriftTolerance: t.DriftTolerance,
	}
	slots, err := l.Build(deps)
	if err != nil {
		return nil, err
	}
	logger.Debug("slot layout", "left", l.Left, "up", l.Up, "right", l.Right, "down", l.Down)
	return selector.New(slots, logger), nil
}
