package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath  string
	logLevel string

	cfg    cliConfig
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hpackctl",
		Short: "Inspect and exercise an RFC 7541 HPACK encoder",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := cfgPath
			if path == "" {
				home, err := os.UserHomeDir()
				if err == nil {
					path = filepath.Join(home, ".hpackctl.yaml")
				}
			}

			loaded, err := loadCliConfig(path)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = loaded
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			l, err := newLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return logger.Sync()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to hpackctl config file (default ~/.hpackctl.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newBenchCmd())

	return root
}
