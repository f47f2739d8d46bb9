package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/fablecraft/langman"
)

type MainConfig struct {
	File  string `cli:"name=f aliases=file desc='translation document path' default=lang.json"`
	Color bool   `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

func (cfg *MainConfig) open() (*langman.Manager, error) {
	return langman.Open(cfg.File)
}

// openOrCreate starts a new empty document when the file does not exist
// yet, for commands that may author it.
func (cfg *MainConfig) openOrCreate() (*langman.Manager, error) {
	m, err := langman.Open(cfg.File)
	if errors.Is(err, fs.ErrNotExist) {
		return langman.Create(cfg.File), nil
	}
	return m, err
}

// colorize reports whether output to w should be colored.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
