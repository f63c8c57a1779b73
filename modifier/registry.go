package modifier

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sasc/gctrain/diff"
)

// Registered modifier names.
const (
	NamePassthrough  = "passthrough"
	NameLeftRightDI  = "left-right-di"
	NameRandomDI     = "random-di"
	NameMashJump     = "mash-jump"
	NameMashAirdodge = "mash-airdodge"
	NameRecorder     = "recorder"
	NamePlayer       = "player"
)

// ErrUnknownModifier is returned by Lookup for names nobody registered.
var ErrUnknownModifier = errors.New("unknown modifier")

// DefaultDIPeriod is how long a DI modifier holds one direction.
const DefaultDIPeriod = 500 * time.Millisecond

// Deps are the shared collaborators handed to every factory. Recorder and
// player built from the same Deps share one store.
type Deps struct {
	Store          *diff.Store
	Logger         *slog.Logger
	Rand           *rand.Rand
	DIPeriod       time.Duration
	DriftTolerance int16
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

func (d Deps) period() time.Duration {
	if d.DIPeriod <= 0 {
		return DefaultDIPeriod
	}
	return d.DIPeriod
}

// Factory builds a modifier from shared dependencies.
type Factory func(d Deps) Modifier

var (
	registry   = make(map[string]Factory)
	registryMu sync.RWMutex
)

// Register makes a modifier available by name. It is called from init
// functions in this package. Names are case-insensitive.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
	}
	return f, nil
}

// Names lists every registered modifier in alphabetical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
