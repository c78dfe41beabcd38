package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-eventsite"
	"github.com/goliatone/go-eventsite/internal/config"
	"github.com/goliatone/go-eventsite/internal/prompt"
	"github.com/goliatone/go-eventsite/pkg/builders"
	"github.com/goliatone/go-eventsite/pkg/content"
	"github.com/goliatone/go-eventsite/pkg/markup"
	"github.com/goliatone/go-eventsite/pkg/orchestrator"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page with the current content documents",
		Long: `Reads the page shell, loads site, speakers, schedule, organizers and advisory
documents relative to --root (a directory or an http(s) URL) and writes the
filled page to --output, or stdout when no output is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd)
		},
	}
	cmd.Flags().String("root", "", "directory or URL holding assets/data (overrides config)")
	cmd.Flags().String("page", "", "HTML page with the mount points (overrides config)")
	cmd.Flags().StringP("output", "o", "", "output file (stdout if empty)")
	cmd.Flags().Bool("sanitize-trusted", false, "sanitize trusted markup (hero title, schedule footnote)")
	cmd.Flags().String("templates", "", "directory whose templates/components/*.tmpl override the built-in ones")
	cmd.Flags().String("timeout", "", "per-document timeout for remote roots, e.g. 10s")
	cmd.Flags().Bool("force", false, "overwrite the output without asking")
	cmd.Flags().Bool("strict", false, "exit with an error when any section fails")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	applyRenderFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	force, _ := cmd.Flags().GetBool("force")
	strict, _ := cmd.Flags().GetBool("strict")
	ctx := cmd.Context()

	if cfg.Output != "" {
		if err := prompt.ConfirmOverwrite(ctx, a.promptFor(force), cfg.Output); err != nil {
			return err
		}
	}

	options, err := renderOptions(cfg)
	if err != nil {
		return err
	}
	options = append(options, orchestrator.WithLogger(a.logger))

	page, err := os.Open(cfg.Page)
	if err != nil {
		return fmt.Errorf("opening page %s: %w", cfg.Page, err)
	}
	defer page.Close()

	var out bytes.Buffer
	report, err := eventsite.RenderPage(ctx, page, &out, options...)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		if _, err := a.stdout.Write(out.Bytes()); err != nil {
			return fmt.Errorf("writing page: %w", err)
		}
	} else {
		if dir := filepath.Dir(cfg.Output); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(cfg.Output, out.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing page to %s: %w", cfg.Output, err)
		}
		a.logger.Info("page written", "path", cfg.Output)
	}

	if failed := report.Failed(); len(failed) > 0 {
		a.logger.Warn("page rendered with placeholders", "failed_sections", len(failed))
		if strict {
			return report.Err()
		}
	}
	return nil
}

func applyRenderFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root, _ = flags.GetString("root")
	}
	if flags.Changed("page") {
		cfg.Page, _ = flags.GetString("page")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("sanitize-trusted") {
		cfg.SanitizeTrusted, _ = flags.GetBool("sanitize-trusted")
	}
	if flags.Changed("templates") {
		cfg.TemplatesDir, _ = flags.GetString("templates")
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout, _ = flags.GetString("timeout")
	}
}

func renderOptions(cfg *config.Config) ([]orchestrator.Option, error) {
	root, err := content.ParseRoot(cfg.Root)
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}

	var builderOpts []builders.Option
	if cfg.SanitizeTrusted {
		builderOpts = append(builderOpts, builders.WithSanitizer(markup.NewPolicySanitizer(nil)))
	}
	if cfg.TemplatesDir != "" {
		builderOpts = append(builderOpts, builders.WithTemplatesDir(cfg.TemplatesDir))
	}

	return []orchestrator.Option{
		orchestrator.WithRoot(root),
		orchestrator.WithPaths(cfg.Paths),
		orchestrator.WithLoaderOptions(content.WithRequestTimeout(timeout)),
		orchestrator.WithBuilderOptions(builderOpts...),
	}, nil
}
