package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/blocksolver/internal/cube"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <scramble> <solution>",
	Short: "Verify that a solution solves a scramble",
	Long: `Verify applies a scramble followed by a candidate solution to a
solved cube and checks that the result is solved again. Use it to sanity
check a solution returned by solve before trusting it.

Examples:
  cube verify "R U R' U'" "U R U' R'"
  cube verify "R U R' U' F R F'" "F R' F' U R U' R'" --verbose`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		solution := args[1]

		dimension, _ := cmd.Flags().GetInt("dimension")
		verbose, _ := cmd.Flags().GetBool("verbose")
		headless, _ := cmd.Flags().GetBool("headless")
		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		c := cube.NewCube(dimension)

		scrambleMoves, err := cube.ParseScramble(scramble)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing scramble: %v\n", err)
			}
			os.Exit(1)
		}
		c.ApplyMoves(scrambleMoves)

		if verbose && !headless {
			fmt.Printf("After scramble (%s):\n%s\n", scramble, c.UnfoldedString(useColor, useUnicode))
		}

		solutionMoves, err := cube.ParseScramble(solution)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing solution: %v\n", err)
			}
			os.Exit(1)
		}
		c.ApplyMoves(solutionMoves)

		if verbose && !headless {
			fmt.Printf("After solution (%s):\n%s\n", solution, c.UnfoldedString(useColor, useUnicode))
		}

		if c.IsSolved() {
			if !headless {
				fmt.Printf("PASS: solution solves the scramble\n")
				fmt.Printf("Scramble move count: %d\n", len(scrambleMoves))
				fmt.Printf("Solution move count: %d\n", len(solutionMoves))
			}
			os.Exit(0)
		}

		if !headless {
			fmt.Printf("FAIL: cube is not solved after applying the solution\n")
			if !verbose {
				fmt.Printf("Tip: use --verbose to see the cube states\n")
			}
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().IntP("dimension", "d", 3, "Cube dimension (2, 3, 4, etc.)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show cube states after each stage")
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for pass, 1 for fail (no output)")
	verifyCmd.Flags().BoolP("color", "c", false, "Use colored output")
	verifyCmd.Flags().Bool("letters", false, "Use colored letters instead of blocks")
}
