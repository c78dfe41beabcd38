package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-eventsite"
	"github.com/goliatone/go-eventsite/internal/prompt"
)

func newInitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a starter page and content documents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			force, _ := cmd.Flags().GetBool("force")
			return a.scaffold(cmd, dir, a.promptFor(force))
		},
	}
	cmd.Flags().Bool("force", false, "overwrite existing files without asking")
	return cmd
}

func (a *app) scaffold(cmd *cobra.Command, dir string, driver prompt.Driver) error {
	ctx := cmd.Context()
	starter := eventsite.StarterFS()
	written := 0

	err := fs.WalkDir(starter, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := prompt.ConfirmOverwrite(ctx, driver, target); err != nil {
			if errors.Is(err, prompt.ErrDeclined) {
				a.logger.Info("kept existing file", "path", target)
				return nil
			}
			return err
		}
		data, err := fs.ReadFile(starter, name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		a.logger.Debug("wrote starter file", "path", target)
		written++
		return nil
	})
	if err != nil {
		return err
	}
	return driver.Info(ctx, fmt.Sprintf("Wrote %d files to %s", written, dir))
}
