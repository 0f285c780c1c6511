package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukeharte/wizard-arena/internal/chooser"
	"github.com/lukeharte/wizard-arena/internal/engine"
	"github.com/lukeharte/wizard-arena/internal/game"
	"github.com/lukeharte/wizard-arena/internal/roster"
)

// maxRounds caps a simulated match so stalls (for example two heal-heavy
// wizards) still terminate.
const maxRounds = 200

var (
	flagSeed    int64
	flagMatches int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "arena-sim",
	Short: "Run AI-vs-AI wizard matches from the built-in roster",
	Long: `arena-sim pits roster wizards against each other using the heuristic
chooser. Matches are fully seeded: the same seed always produces the same
sequence of pairings, rolls and outcomes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSim(flagSeed, flagMatches, flagVerbose)
	},
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 1, "base random seed")
	rootCmd.Flags().IntVar(&flagMatches, "matches", 1, "number of matches to simulate")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "print every action")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSim(seed int64, matches int, verbose bool) error {
	if matches < 1 {
		return fmt.Errorf("matches must be at least 1")
	}
	enemies := roster.Enemies()
	pick := rand.New(rand.NewSource(seed))

	wins := map[string]int{}
	draws := 0
	for i := 0; i < matches; i++ {
		a := enemies[pick.Intn(len(enemies))]
		b := enemies[pick.Intn(len(enemies))]
		for b.Name == a.Name {
			b = enemies[pick.Intn(len(enemies))]
		}

		matchSeed := seed + int64(i)*1000
		winner, rounds, err := runMatch(&a.Wizard, &b.Wizard, matchSeed, verbose)
		if err != nil {
			return err
		}
		if winner == "" {
			draws++
			fmt.Printf("match %d: %s vs %s: no winner after %d rounds (seed %d)\n", i+1, a.Name, b.Name, rounds, matchSeed)
			continue
		}
		wins[winner]++
		fmt.Printf("match %d: %s vs %s: %s wins in %d rounds (seed %d)\n", i+1, a.Name, b.Name, winner, rounds, matchSeed)
	}

	if matches > 1 {
		fmt.Println("\ntotals:")
		for _, e := range enemies {
			if n := wins[e.Name]; n > 0 {
				fmt.Printf("  %-28s %d\n", e.Name, n)
			}
		}
		if draws > 0 {
			fmt.Printf("  %-28s %d\n", "(no winner)", draws)
		}
	}
	return nil
}

// runMatch plays one seeded match to knockout or the round cap. Returns the
// winning wizard's name ("" when the cap is hit) and the rounds played.
func runMatch(w1, w2 *game.Wizard, seed int64, verbose bool) (string, int, error) {
	gs := engine.NewGameState()
	gs.Initialize(w1, w2, rand.New(rand.NewSource(seed)))

	pickers := [2]chooser.Chooser{chooser.NewHeuristic(), chooser.NewHeuristic()}
	actionCount := 0

	for round := 1; round <= maxRounds; round++ {
		if round > 1 {
			gs.IncrementMana()
		}
		gs.ClearExpiredEffects(0)
		gs.ClearExpiredEffects(1)

		for seat := 0; seat < 2; seat++ {
			self := gs.Players[seat]
			enemy := gs.Players[1-seat]

			affordable := game.AffordableActions(game.AvailableActions(self.Wizard), self.CurrentMana)
			if len(affordable) == 0 {
				continue
			}
			enemyAffordable := game.AffordableActions(game.AvailableActions(enemy.Wizard), enemy.CurrentMana)

			idx, err := pickers[seat].Choose(self, enemy, affordable, enemyAffordable, seat == 0)
			if err != nil {
				return "", round, err
			}
			msg, err := gs.PerformAction(seat, affordable[idx], rand.New(rand.NewSource(seed+int64(actionCount))))
			if err != nil {
				return "", round, err
			}
			actionCount++
			if verbose {
				fmt.Printf("  [round %d] %s\n", round, msg)
			}
			if gs.GetWinner() != nil {
				break
			}
		}

		if w := gs.GetWinner(); w != nil {
			return w.Name, round, nil
		}
	}
	return "", maxRounds, nil
}
