package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-eventsite/internal/config"
	"github.com/goliatone/go-eventsite/internal/prompt"
)

// app carries state shared by the commands.
type app struct {
	cfgFile string
	verbose bool

	stdout io.Writer
	stderr io.Writer
	prompt prompt.Driver
	logger *slog.Logger
}

func newApp() *app {
	return &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		prompt: prompt.NewSurveyDriver(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "eventsite",
		Short: "Render event pages from JSON content documents",
		Long: `eventsite fills an event page's mount points (hero, speakers, schedule,
organizers, advisory board) from the documents under assets/data. Each section
renders on its own; a missing or broken document leaves that section's
placeholder in place and is reported in the log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogger()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", config.DefaultFileName, "config file path")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newInitCmd(a))
	return root
}

func (a *app) setupLogger() {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

func (a *app) promptFor(force bool) prompt.Driver {
	if force {
		return prompt.Static{Answer: true, Out: a.stderr}
	}
	return a.prompt
}
