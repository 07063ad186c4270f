package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/9ntonio/unknown-pleasures/internal/ui"
)

func main() {
	debugLog := flag.String("debug", "", "write a structured debug log to this file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file-or-url>\n\nPlays an audio track and renders its spectrum as the pulsar ridgeline.\nSupported formats: .mp3, .wav, .flac, .ogg\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	target := flag.Arg(0)

	log := zap.NewNop()
	if *debugLog != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{*debugLog}
		cfg.ErrorOutputPaths = []string{*debugLog}
		l, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		log = l
	}

	p := tea.NewProgram(ui.New(target, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
