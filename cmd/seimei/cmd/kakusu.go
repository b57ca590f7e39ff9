package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newKakusuCmd() *cobra.Command {
	var f nameFlags

	cmd := &cobra.Command{
		Use:   "kakusu",
		Short: "Print the five stroke counts of a name",
		Long: `Print the five stroke counts of a name and the strokes of each
character.

Example:
  seimei kakusu --sei 佐々木 --mei 明`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, dict, err := c.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer c.closeDictionary(dict)

			res, err := svc.Kakusu(cmd.Context(), f.input())
			if err != nil {
				return fmt.Errorf("counting strokes of %s %s: %w", f.sei, f.mei, err)
			}

			if f.json {
				return writeJSON(cmd.OutOrStdout(), kakusuOutput{
					Sei:        res.Name.SurnameText(),
					Mei:        res.Name.GivenText(),
					Characters: res.Characters,
					Counts:     res.Counts,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", res.Name.SurnameText(), res.Name.GivenText())
			fmt.Fprintf(out, "天格 %d\n人格 %d\n地格 %d\n総格 %d\n", res.Counts.Heaven, res.Counts.Personality, res.Counts.Earth, res.Counts.Total)
			if res.Counts.HasOuter {
				fmt.Fprintf(out, "外格 %d\n", res.Counts.Outer)
			}
			for _, ch := range res.Characters {
				fmt.Fprintf(out, "  %s %d (%s)\n", ch.Glyph, ch.Strokes, ch.Source)
			}
			return nil
		},
	}

	f.register(cmd)
	return cmd
}
