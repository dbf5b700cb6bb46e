// SPDX-License-Identifier: Unlicense OR MIT

// Command stepper shows a numeric stepper in a window and logs every
// change of its value.
package main

import (
	"errors"
	"fmt"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dtuielement/uielements/stepper"
)

type options struct {
	title   string
	width   int
	height  int
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "stepper",
		Short:        "Show a numeric stepper in a window",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("stepper: create logger: %w", err)
			}
			go func() {
				err := run(logger, opts)
				if err != nil {
					logger.Error("window closed", zap.Error(err))
				}
				logger.Sync()
				if err != nil {
					os.Exit(1)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.title, "title", "Stepper", "window title")
	f.IntVar(&opts.width, "width", 240, "window width in dp")
	f.IntVar(&opts.height, "height", 120, "window height in dp")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func (o options) validate() error {
	if o.title == "" {
		return errors.New("stepper: --title must not be empty")
	}
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("stepper: invalid window size %dx%d", o.width, o.height)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// logChanges returns an observer that logs the value of a Stepper.
func logChanges(logger *zap.Logger) func(*stepper.Stepper) {
	return func(s *stepper.Stepper) {
		logger.Info("stepper value changed", zap.Int("value", s.Value()))
	}
}

func run(logger *zap.Logger, opts options) error {
	var w app.Window
	w.Option(
		app.Title(opts.title),
		app.Size(unit.Dp(opts.width), unit.Dp(opts.height)),
	)
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	s := stepper.New()
	s.OnChange(logChanges(logger))
	logger.Debug("window created", zap.String("title", opts.title), zap.Int("value", s.Value()))

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			layoutStepper(gtx, th, s)
			e.Frame(gtx.Ops)
		}
	}
}

// layoutStepper centers the stepper in gtx with a fixed height.
func layoutStepper(gtx layout.Context, th *material.Theme, s *stepper.Stepper) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		h := gtx.Dp(36)
		gtx.Constraints.Min.Y = h
		gtx.Constraints.Max.Y = h
		st := stepper.Number(th, s)
		return st.Layout(gtx)
	})
}
