package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/bench"
)

var (
	benchIterations int
	benchKinds      []string
)

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 0, "operations per run (0 = scenario default)")
	benchCmd.Flags().StringSliceVar(&benchKinds, "kinds", nil, "repository kinds to compare (default all)")
	rootCmd.AddCommand(benchCmd)
}

var benchCmd = &cobra.Command{
	Use:   "bench [SCENARIO...]",
	Short: "Compare repository kinds on timed workloads",
	Long: `Time workloads against fresh repositories of each kind.

Scenarios:
  add-first      ` + bench.AddFirst.Description() + `
  add-last       ` + bench.AddLast.Description() + `
  random-access  ` + bench.RandomAccess.Description() + `
  delete-first   ` + bench.DeleteFirst.Description() + `

With no scenario every one is run.`,
	RunE: runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	scenarios := bench.Scenarios()
	if len(args) > 0 {
		scenarios = scenarios[:0:0]
		for _, a := range args {
			sc, err := bench.ParseScenario(a)
			if err != nil {
				return err
			}
			scenarios = append(scenarios, sc)
		}
	}

	kinds := domain.RepositoryKinds()
	if len(benchKinds) > 0 {
		kinds = kinds[:0:0]
		for _, k := range benchKinds {
			kind, err := domain.ParseRepositoryKind(k)
			if err != nil {
				return err
			}
			kinds = append(kinds, kind)
		}
	}

	ctx := cmd.Context()
	pb := newProgressBar(os.Stderr, len(scenarios)*len(kinds))
	var results []bench.Result
	for _, sc := range scenarios {
		for _, kind := range kinds {
			pb.step(len(results), fmt.Sprintf("%s on %s", sc, kind.DisplayName()))
			res, err := bench.Run(ctx, sc, []domain.RepositoryKind{kind}, benchIterations)
			if err != nil {
				pb.finish()
				return err
			}
			results = append(results, res...)
		}
	}
	pb.finish()

	return printBenchResults(cmd, results)
}

func printBenchResults(cmd *cobra.Command, results []bench.Result) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tREPOSITORY\tOPS\tTOTAL\tPER OP")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Scenario,
			r.Kind.DisplayName(),
			humanize.Comma(int64(r.Iterations)),
			r.Elapsed.Round(time.Microsecond),
			r.PerOp(),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if best := fastestPerScenario(results); len(best) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFastest: %s\n", strings.Join(best, ", "))
	}
	return nil
}

// fastestPerScenario names the quickest kind of each scenario, in run order.
func fastestPerScenario(results []bench.Result) []string {
	var order []bench.Scenario
	best := make(map[bench.Scenario]bench.Result)
	for _, r := range results {
		cur, seen := best[r.Scenario]
		if !seen {
			order = append(order, r.Scenario)
		}
		if !seen || r.Elapsed < cur.Elapsed {
			best[r.Scenario] = r
		}
	}
	out := make([]string, len(order))
	for i, sc := range order {
		out[i] = fmt.Sprintf("%s → %s", sc, best[sc].Kind.DisplayName())
	}
	return out
}
