package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-eventsite/internal/config"
	"github.com/goliatone/go-eventsite/internal/prompt"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the eventsite configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			driver := a.promptFor(force)
			if err := prompt.ConfirmOverwrite(cmd.Context(), driver, a.cfgFile); err != nil {
				return err
			}
			if err := config.DefaultConfig().Save(a.cfgFile); err != nil {
				return err
			}
			return driver.Info(cmd.Context(), fmt.Sprintf("Config written to %s", a.cfgFile))
		},
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing file without asking")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshalling config: %w", err)
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
