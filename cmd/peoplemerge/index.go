package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sneiksus/VINF2025/internal/index"
)

var (
	indexDataPath string
	indexDir      string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the full-text index from the merged output",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath := cfg.Pipeline.OutputPath
		if indexDataPath != "" {
			dataPath = indexDataPath
		}

		dir := cfg.Index.Dir
		if indexDir != "" {
			dir = indexDir
		}

		if _, err := os.Stat(dataPath); err != nil {
			return fmt.Errorf("data file not found at %s, run the 'merge' command first: %w", dataPath, err)
		}

		count, err := index.Build(dataPath, dir, log)
		if err != nil {
			return err
		}

		fmt.Printf("Successfully indexed %d documents into %s\n", count, dir)

		return nil
	},
}

func init() {
	indexCmd.Flags().StringVar(&indexDataPath, "data", "", "Path to the merged TSV (defaults to the merge output path)")
	indexCmd.Flags().StringVar(&indexDir, "index-dir", "", "Index directory (defaults to config index.dir)")

	rootCmd.AddCommand(indexCmd)
}
