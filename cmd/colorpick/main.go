// Command colorpick opens a desktop color picker window.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/names"
	"github.com/gogpu/colorpick/picker"
)

const (
	appID    = "io.gogpu.colorpick"
	appTitle = "Color Picker"
)

func main() {
	var (
		hex     = flag.String("hex", "", "initial color as #RRGGBB or a color name")
		model   = flag.String("model", "hsl", "square model: hsl or hsv")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	colorpick.SetLogger(logger)

	m, err := picker.ParseModel(*model)
	if err != nil {
		logger.Error("bad -model", "err", err)
		os.Exit(2)
	}

	a := app.NewWithID(appID)
	themes := newThemeSwitch(a.Settings(), a.Preferences())
	themes.apply()

	w := a.NewWindow(appTitle)
	v := newView(w.Clipboard(), themes)
	s := picker.New(
		picker.WithModel(m),
		picker.WithWorkers(runtime.GOMAXPROCS(0)),
		picker.WithNamer(names.Lookup),
		picker.WithDisplay(v),
	)
	defer s.Close()
	v.bind(s)

	if *hex != "" {
		if c, err := names.Resolve(*hex); err != nil {
			logger.Warn("ignoring -hex", "err", err)
		} else {
			s.SetRGB(c)
		}
	}

	w.SetContent(v.content())
	w.Resize(fyne.NewSize(640, 420))
	s.Refresh()

	logger.Info("window opened", "model", m.String())
	w.ShowAndRun()
}
