package cmd

import (
	"fmt"

	"github.com/phrazzld/seimei-api/internal/platform/dictionary"
	"github.com/phrazzld/seimei-api/internal/platform/sqlstore"
	"github.com/spf13/cobra"
)

func (c *cli) newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the character dictionary",
	}
	cmd.AddCommand(c.newDictMigrateCmd(), c.newDictImportCmd())
	return cmd
}

// requireSQL rejects the memory driver for commands that persist.
func (c *cli) requireSQL(command string) error {
	if c.cfg.Dictionary.Driver == dictionary.DriverMemory {
		return fmt.Errorf("%s needs a persistent dictionary; set --dict-driver sqlite or pgx", command)
	}
	return nil
}

func (c *cli) newDictMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the dictionary schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSQL("dict migrate"); err != nil {
				return err
			}

			db, err := sqlstore.Open(cmd.Context(), c.cfg.Dictionary.Driver, c.cfg.Dictionary.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			version, err := sqlstore.Migrate(cmd.Context(), db, c.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dictionary schema at version %d\n", version)
			return nil
		},
	}
}

func (c *cli) newDictImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE.yaml",
		Short: "Insert or replace dictionary entries from a YAML file",
		Long: `Insert or replace dictionary entries from a YAML file of the form:

  characters:
    - glyph: 龘
      strokes: 48
      reading: とう`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSQL("dict import"); err != nil {
				return err
			}

			chars, err := dictionary.LoadFile(args[0])
			if err != nil {
				return err
			}

			dict, err := dictionary.Open(cmd.Context(), c.cfg.Dictionary, c.logger)
			if err != nil {
				return fmt.Errorf("opening dictionary: %w", err)
			}
			defer c.closeDictionary(dict)

			if err := dict.Upsert(cmd.Context(), chars); err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			total, err := dict.Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries; dictionary holds %d\n", len(chars), total)
			return nil
		},
	}
}
