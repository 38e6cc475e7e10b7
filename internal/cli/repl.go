package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ehrlich-b/blocksolver/internal/blocksolver"
	"github.com/ehrlich-b/blocksolver/internal/cube"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively scramble and solve a cube",
	Long: `Repl opens a line-editing prompt with history and tab
completion for driving the block solver by hand: scramble the cube with
a move sequence, solve it, and inspect the result without restarting
the process between attempts.`,
	Run: func(cmd *cobra.Command, args []string) {
		tablesDir, _ := cmd.Flags().GetString("tables")
		runRepl(tablesDir)
	},
}

func init() {
	replCmd.Flags().StringP("tables", "t", blocksolver.DefaultTablesDir, "Directory holding cached move and pruning tables")
	rootCmd.AddCommand(replCmd)
}

var replCommands = []string{"scramble", "solve", "show", "reset", "help", "quit"}

func runRepl(tablesDir string) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(lineSoFar string) []string {
		var matches []string
		for _, c := range replCommands {
			if strings.HasPrefix(c, lineSoFar) {
				matches = append(matches, c)
			}
		}
		return matches
	})

	c := cube.NewCube(3)
	solver := blocksolver.New(tablesDir)

	fmt.Println("blocksolver repl. Commands: scramble <moves>, solve, show, reset, help, quit")
	for {
		input, err := line.Prompt("blocksolver> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			fmt.Println("error reading line:", err)
			return
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			fmt.Println("scramble <moves>  apply a move sequence (e.g. scramble R U F2 D L')")
			fmt.Println("solve             run the block solver on the current cube")
			fmt.Println("show              print the current cube state")
			fmt.Println("reset             return to the solved cube")
		case "reset":
			c = cube.NewCube(3)
		case "show":
			fmt.Println(c.StringWithColor(true))
		case "scramble":
			moves, err := cube.ParseScramble(strings.Join(fields[1:], " "))
			if err != nil {
				fmt.Println("error parsing scramble:", err)
				continue
			}
			c.ApplyMoves(moves)
		case "solve":
			result, err := solver.Solve(c)
			if err != nil {
				fmt.Println("error solving:", err)
				continue
			}
			var b strings.Builder
			for i, m := range result.Solution {
				if i > 0 {
					b.WriteString(" ")
				}
				b.WriteString(m.String())
			}
			fmt.Printf("solution (%d moves, %v): %s\n", result.Steps, result.Duration, b.String())
		default:
			fmt.Printf("unknown command %q, type help for a list\n", fields[0])
		}
	}
}
