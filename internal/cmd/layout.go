package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sasc/gctrain/internal/layout"
)

// Layout prints the effective slot layout.
type Layout struct {
	Format string `help:"Output format: text, yaml, toml" enum:"text,yaml,toml" default:"text" short:"f"`

	Out io.Writer `kong:"-"`
}

func (c *Layout) Run(tr Training) error {
	l, err := layout.Load(tr.Layout)
	if err != nil {
		return err
	}
	data, err := l.Marshal(c.Format)
	if err != nil {
		return err
	}
	w := c.Out
	if w == nil {
		w = os.Stdout
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}
