package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sneiksus/VINF2025/internal/pipeline"
	"github.com/sneiksus/VINF2025/internal/report"
)

var (
	referencePath string
	corpusPath    string
	outputPath    string
	workers       int
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge the reference table with facts mined from the article corpus",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := pipeline.Options{
			ReferencePath: cfg.Pipeline.ReferencePath,
			CorpusPath:    cfg.Pipeline.CorpusPath,
			OutputPath:    cfg.Pipeline.OutputPath,
			Workers:       cfg.EffectiveWorkers(),
		}

		if referencePath != "" {
			opts.ReferencePath = referencePath
		}

		if corpusPath != "" {
			opts.CorpusPath = corpusPath
		}

		if outputPath != "" {
			opts.OutputPath = outputPath
		}

		if workers > 0 {
			opts.Workers = workers
		}

		if opts.ReferencePath == "" || opts.CorpusPath == "" {
			return fmt.Errorf("--reference and --corpus are required (or set them in the config file)")
		}

		log.Info("🚀 starting merge",
			"reference", opts.ReferencePath,
			"corpus", opts.CorpusPath,
			"output", opts.OutputPath,
			"workers", opts.Workers)

		summary, err := pipeline.New(opts, log).Run(cmd.Context())
		if err != nil {
			return err
		}

		log.Info("✅ merge complete", "duration", summary.Duration)
		fmt.Println()
		fmt.Println(report.Render(summary))

		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVar(&referencePath, "reference", "", "Path to the reference TSV file")
	mergeCmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to the article corpus XML dump (.xml, .xml.bz2, .xml.gz)")
	mergeCmd.Flags().StringVar(&outputPath, "output", "", "Path for the merged TSV output")
	mergeCmd.Flags().IntVar(&workers, "workers", 0, "Extraction worker count (0 = number of CPUs)")

	rootCmd.AddCommand(mergeCmd)
}
