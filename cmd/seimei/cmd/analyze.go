package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/phrazzld/seimei-api/internal/domain/kantei"
	"github.com/phrazzld/seimei-api/internal/mcptools"
	"github.com/phrazzld/seimei-api/internal/service"
	"github.com/spf13/cobra"
)

// nameFlags holds the --sei/--mei/--json flags shared by analyze and kakusu.
type nameFlags struct {
	sei     string
	mei     string
	json    bool
	strokes map[string]int
}

func (f *nameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sei, "sei", "", "surname (required)")
	cmd.Flags().StringVar(&f.mei, "mei", "", "given name (required)")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON instead of markdown")
	cmd.Flags().StringToIntVar(&f.strokes, "strokes", nil, "stroke count overrides, e.g. 田=6,龘=48")
	_ = cmd.MarkFlagRequired("sei")
	_ = cmd.MarkFlagRequired("mei")
}

func (f *nameFlags) input() service.NameInput {
	return service.NameInput{Sei: f.sei, Mei: f.mei, Strokes: f.strokes}
}

type analysisOutput struct {
	AnalysisID string                    `json:"analysisId"`
	Sei        string                    `json:"sei"`
	Mei        string                    `json:"mei"`
	Characters []service.CharacterDetail `json:"characters"`
	Result     *kantei.ScoreResult       `json:"result"`
}

type kakusuOutput struct {
	Sei        string                    `json:"sei"`
	Mei        string                    `json:"mei"`
	Characters []service.CharacterDetail `json:"characters"`
	Counts     domain.Counts             `json:"counts"`
}

func (c *cli) newAnalyzeCmd() *cobra.Command {
	var f nameFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a name and print the full report",
		Long: `Score a name and print the full report: the five counts and their
fortunes, every category score, the total score, grade and assessment.

Example:
  seimei analyze --sei 田中 --mei 太郎
  seimei analyze --sei 田中 --mei 太郎 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, dict, err := c.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer c.closeDictionary(dict)

			a, err := svc.Analyze(cmd.Context(), service.AnalyzeInput{NameInput: f.input()})
			if err != nil {
				return fmt.Errorf("analyzing %s %s: %w", f.sei, f.mei, err)
			}

			if f.json {
				return writeJSON(cmd.OutOrStdout(), analysisOutput{
					AnalysisID: a.ID.String(),
					Sei:        a.Name.SurnameText(),
					Mei:        a.Name.GivenText(),
					Characters: a.Characters,
					Result:     a.Result,
				})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), mcptools.Report(a))
			return err
		},
	}

	f.register(cmd)
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
