package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sneiksus/VINF2025/internal/index"
)

var (
	searchIndexDir string
	searchLimit    int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the full-text index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.Index.Dir
		if searchIndexDir != "" {
			dir = searchIndexDir
		}

		limit := cfg.Index.SearchLimit
		if searchLimit > 0 {
			limit = searchLimit
		}

		result, err := index.Search(dir, args[0], limit)
		if err != nil {
			return err
		}

		fmt.Printf("%d matches\n", result.Total)

		for i, hit := range result.Hits {
			name, _ := hit.Fields["name"].(string)
			fmt.Printf("%2d. %s (score %.3f)\n", i+1, name, hit.Score)

			fields := make([]string, 0, len(hit.Fields))
			for f := range hit.Fields {
				if f != "name" {
					fields = append(fields, f)
				}
			}

			sort.Strings(fields)

			for _, f := range fields {
				fmt.Printf("      %s: %v\n", f, hit.Fields[f])
			}
		}

		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchIndexDir, "index-dir", "", "Index directory (defaults to config index.dir)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum hits to print (defaults to config index.search_limit)")

	rootCmd.AddCommand(searchCmd)
}
