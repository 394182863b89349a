// Package main is the entry point for the kaku editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kaku-editor/kaku/internal/buffer"
	"github.com/kaku-editor/kaku/internal/config"
	"github.com/kaku-editor/kaku/internal/engine"
	"github.com/kaku-editor/kaku/internal/script"
	"github.com/kaku-editor/kaku/internal/term"
	"github.com/kaku-editor/kaku/internal/view"
	xterm "golang.org/x/term"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath         string
	ignoreGlobalConfig bool
	file               string
}

func run() int {
	opts := parseFlags()

	sources, err := config.Resolve(config.DefaultFS(), opts.configPath, opts.ignoreGlobalConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kaku: %v\n", err)
		return 2
	}

	e := engine.New()
	e.SetConfigSources(sources)

	bridge := script.New(e)
	defer bridge.Close()
	e.SetScript(bridge)

	for _, src := range sources {
		if err := bridge.LoadString(src.Text, src.Path); err != nil {
			fmt.Fprintf(os.Stderr, "kaku: %v\n", err)
			return 2
		}
	}

	if opts.file != "" {
		if err := openFile(e, opts.file); err != nil {
			fmt.Fprintf(os.Stderr, "kaku: %v\n", err)
			return 1
		}
	}

	t, err := term.New(e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kaku: %v\n", err)
		return 1
	}

	if w, h, err := xterm.GetSize(int(os.Stdin.Fd())); err == nil {
		e.ViewportSize = view.Size{Width: w, Height: h}
	}

	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	if err := t.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "kaku: %v\n", err)
		return 1
	}
	return 0
}

// openFile replaces the engine's initial scratch buffer/view with one
// opened on path.
func openFile(e *engine.Engine, path string) error {
	buf, err := buffer.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	scratch := e.ActiveViewPtr()
	scratchBuf := e.BufferFor(scratch)
	delete(e.Views, scratch.ID)
	delete(e.Buffers, scratchBuf.ID)

	e.Buffers[buf.ID] = buf
	v := view.New(buf.ID)
	buf.IncrementViewCount()
	e.Views[v.ID] = v
	e.ActiveView = v.ID
	return nil
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration script, overriding the search order")
	flag.BoolVar(&opts.ignoreGlobalConfig, "ignore-global-config", false, "Skip the system-wide config path")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "kaku - a modal, multi-cursor, scriptable editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: kaku [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		opts.file = flag.Arg(0)
	}
	return opts
}
