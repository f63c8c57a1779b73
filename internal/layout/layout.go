// Package layout binds modifier names to directional-pad slots.
//
// A layout file lists, per direction, the modifiers cycled by tapping that
// direction. YAML and TOML are supported:
//
//	left:  [left-right-di, random-di]
//	up:    [recorder]
//	right: [mash-airdodge, mash-jump]
//	down:  [player]
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/sasc/gctrain/modifier"
	"github.com/sasc/gctrain/selector"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned for layout files with an unsupported extension.
var ErrFormat = errors.New("unsupported layout format")

// Layout names the modifiers bound to each direction, in tap order.
type Layout struct {
	Left  []string `yaml:"left" toml:"left" json:"left"`
	Up    []string `yaml:"up" toml:"up" json:"up"`
	Right []string `yaml:"right" toml:"right" json:"right"`
	Down  []string `yaml:"down" toml:"down" json:"down"`
}

// Default is the factory layout: DI on the left, recording up, playback
// down and escape options on the right.
func Default() Layout {
	return Layout{
		Left:  []string{modifier.NameLeftRightDI, modifier.NameRandomDI},
		Up:    []string{modifier.NameRecorder},
		Right: []string{modifier.NameMashAirdodge, modifier.NameMashJump},
		Down:  []string{modifier.NamePlayer},
	}
}

// Load reads a layout file, choosing the decoder by extension. An empty path
// returns the default layout.
func Load(path string) (Layout, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	l, err := Parse(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a layout in the given format ("yaml", "yml" or "toml").
func Parse(data []byte, format string) (Layout, error) {
	var l Layout
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &l); err != nil {
			return Layout{}, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &l); err != nil {
			return Layout{}, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return Layout{}, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	return l, l.Validate()
}

// Marshal encodes l in the given format. "text" is the aligned listing
// returned by String.
func (l Layout) Marshal(format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(l)
	case "toml":
		return toml.Marshal(l)
	case "text", "":
		return []byte(l.String()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// Binding is the name list of one direction.
type Binding struct {
	Direction selector.Direction
	Names     []string
}

// Lists returns the name lists in direction order.
func (l Layout) Lists() []Binding {
	return []Binding{
		{selector.Left, l.Left},
		{selector.Up, l.Up},
		{selector.Right, l.Right},
		{selector.Down, l.Down},
	}
}

// Validate checks that every name is registered and every list fits.
func (l Layout) Validate() error {
	known := modifier.Names()
	for _, list := range l.Lists() {
		if len(list.Names) > selector.Capacity(list.Direction) {
			return fmt.Errorf("%w: %s holds %d, got %d",
				selector.ErrSlotCapacity, list.Direction, selector.Capacity(list.Direction), len(list.Names))
		}
		for _, name := range list.Names {
			if !slices.Contains(known, strings.ToLower(name)) {
				return fmt.Errorf("%s: %w: %q", list.Direction, modifier.ErrUnknownModifier, name)
			}
		}
	}
	return nil
}

// Build instantiates the layout. A name used in several slots refers to a
// single instance, so one recorder session spans all of them.
func (l Layout) Build(deps modifier.Deps) (selector.Slots, error) {
	if err := l.Validate(); err != nil {
		return selector.Slots{}, err
	}
	built := make(map[string]modifier.Modifier)
	instance := func(name string) (modifier.Modifier, error) {
		key := strings.ToLower(name)
		if m, ok := built[key]; ok {
			return m, nil
		}
		f, err := modifier.Lookup(key)
		if err != nil {
			return nil, err
		}
		m := f(deps)
		built[key] = m
		return m, nil
	}

	var lists [4][]modifier.Modifier
	for i, list := range l.Lists() {
		for _, name := range list.Names {
			m, err := instance(name)
			if err != nil {
				return selector.Slots{}, err
			}
			lists[i] = append(lists[i], m)
		}
	}
	return selector.NewSlots(lists[0], lists[1], lists[2], lists[3])
}

func (l Layout) String() string {
	var sb strings.Builder
	for _, list := range l.Lists() {
		fmt.Fprintf(&sb, "%-5s %s\n", list.Direction, strings.Join(list.Names, ", "))
	}
	return sb.String()
}
