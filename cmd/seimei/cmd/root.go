// Package cmd contains all CLI commands for the seimei tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/seimei-api/internal/config"
	"github.com/phrazzld/seimei-api/internal/platform/dictionary"
	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/phrazzld/seimei-api/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries the state shared by every subcommand of one invocation.
type cli struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the seimei command tree with a fresh viper instance.
func NewRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "seimei",
		Short: "Score Japanese names by stroke-count fortune telling",
		Long: `seimei scores Japanese personal names by the five stroke counts
(天格 heaven, 人格 personality, 地格 earth, 総格 total, 外格 outer), their
fortunes, the yin-yang pattern, five-element relations, special
combinations and taboo characters.

Example:
  seimei analyze --sei 田中 --mei 太郎
  seimei kakusu --sei 佐々木 --mei 明
  seimei dict import extra.yaml --dict-driver sqlite --dict-dsn ./seimei.db`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.String("dict-driver", "", "dictionary driver: memory, sqlite or pgx")
	flags.String("dict-dsn", "", "dictionary database source name")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log at the configured level instead of warn")

	_ = c.v.BindPFlag("dictionary.driver", flags.Lookup("dict-driver"))
	_ = c.v.BindPFlag("dictionary.dsn", flags.Lookup("dict-dsn"))

	root.AddCommand(
		c.newAnalyzeCmd(),
		c.newKakusuCmd(),
		c.newMCPCmd(),
		c.newDictCmd(),
	)

	return root
}

// load reads the configuration and sets up logging on w. stdout is kept for
// command output.
func (c *cli) load(w io.Writer) error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	}

	cfg, err := config.LoadWithViper(c.v)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logCfg := cfg.Server
	if !c.verbose {
		logCfg.LogLevel = "warn"
	}
	l, err := logger.SetupWithWriter(logCfg, w)
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}

	c.cfg = cfg
	c.logger = l
	return nil
}

// openService opens the configured dictionary and builds the service on it.
// The caller must close the returned dictionary.
func (c *cli) openService(ctx context.Context) (service.SeimeiService, *dictionary.Dictionary, error) {
	scorer, err := service.NewScorer(c.cfg.Scoring)
	if err != nil {
		return nil, nil, err
	}

	dict, err := dictionary.Open(ctx, c.cfg.Dictionary, c.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dictionary: %w", err)
	}

	svc, err := service.NewSeimeiService(dict, scorer, c.logger)
	if err != nil {
		_ = dict.Close()
		return nil, nil, err
	}
	return svc, dict, nil
}

// closeDictionary logs a failed close; the command result is already decided.
func (c *cli) closeDictionary(dict *dictionary.Dictionary) {
	if err := dict.Close(); err != nil {
		c.logger.Error("failed to close dictionary", "error", err)
	}
}
