package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ehrlich-b/blocksolver/internal/blocksolver"
	"github.com/ehrlich-b/blocksolver/internal/method"
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate and cache the block solver's move and pruning tables",
	Long: `Generate builds every move and pruning table the blocksolver
algorithm needs and writes them under --tables, so later solves load
cached tables instead of regenerating them from scratch.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("tables")
		if dir == "" {
			dir = blocksolver.DefaultTablesDir
		}

		steps := []struct {
			name  string
			build func(string) error
		}{
			{"DLB_222", func(d string) error { _, err := method.BuildDLB222(d); return err }},
			{"DB_223", func(d string) error { _, err := method.BuildDB223(d); return err }},
			{"F2L-1", func(d string) error { _, err := method.BuildF2L1(d); return err }},
			{"RouxFirstBlock", func(d string) error { _, err := method.BuildRouxFirstBlock(d); return err }},
		}

		for _, s := range steps {
			fmt.Printf("Generating %s tables...\n", s.name)
			start := time.Now()
			if err := s.build(dir); err != nil {
				fmt.Printf("Error generating %s tables: %v\n", s.name, err)
				os.Exit(1)
			}
			fmt.Printf("  done in %v\n", time.Since(start))
		}
	},
}

func init() {
	genCmd.Flags().StringP("tables", "t", blocksolver.DefaultTablesDir, "Directory to cache generated tables in")
	rootCmd.AddCommand(genCmd)
}
