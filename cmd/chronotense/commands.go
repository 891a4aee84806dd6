package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"chronotense/internal/catalog"
	"chronotense/internal/content"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chronotense",
		Short: "Generate CEFR-tailored explanations for the twelve English tenses",
		Long: `ChronoTense produces an explanation, example sentence and use case for
every English tense at a chosen CEFR level, optionally steering examples
toward modal verbs or conditionals. Without API_KEY it serves built-in
fallback content.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newLevelCmd(),
		newExampleCmd(),
		newTensesCmd(),
	)
	return root
}

func newLevelCmd() *cobra.Command {
	var (
		levelFlag string
		opts      content.Options
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "level",
		Short: "Print content for every tense at a CEFR level",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := catalog.ParseLevel(levelFlag)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), LoadConfig())
			if err != nil {
				return err
			}
			defer a.Close()

			lc := a.service.GetLevelContent(cmd.Context(), level, opts)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(lc)
			}

			share, err := content.BuildShare(lc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, share.Body)
			return err
		},
	}

	cmd.Flags().StringVarP(&levelFlag, "level", "l", string(catalog.LevelA1), "CEFR level (A1-C2)")
	cmd.Flags().BoolVar(&opts.IncludeModals, "modals", false, "steer examples toward modal verbs")
	cmd.Flags().BoolVar(&opts.IncludeConditionals, "conditionals", false, "steer examples toward conditionals")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of the plain-text digest")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var (
		levelFlag string
		tense     string
		current   string
		opts      content.Options
	)

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Generate one fresh example sentence for a tense",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := catalog.ParseLevel(levelFlag)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), LoadConfig())
			if err != nil {
				return err
			}
			defer a.Close()

			example := a.service.GetSingleExample(cmd.Context(), level, tense, current, opts)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), example)
			return err
		},
	}

	cmd.Flags().StringVarP(&levelFlag, "level", "l", string(catalog.LevelA1), "CEFR level (A1-C2)")
	cmd.Flags().StringVarP(&tense, "tense", "t", "", "tense title, e.g. \"Simple Past\"")
	cmd.Flags().StringVarP(&current, "current", "c", "", "example the new sentence must differ from")
	cmd.Flags().BoolVar(&opts.IncludeModals, "modals", false, "include a modal verb")
	cmd.Flags().BoolVar(&opts.IncludeConditionals, "conditionals", false, "structure the sentence as a conditional")
	_ = cmd.MarkFlagRequired("tense")
	return cmd
}

func newTensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tenses",
		Short: "List the tense catalog in timeline order",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTIME FRAME\tTITLE")
			for _, t := range catalog.Tenses() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.TimeFrame, t.DefaultTitle)
			}
			return tw.Flush()
		},
	}
}
