package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/tutu-network/salesdesk/internal/domain"
)

var reportJSON bool

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the dashboard and summary as JSON")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the month-by-month dashboard and summary",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	svc := sess.Service
	out := cmd.OutOrStdout()

	if reportJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Kind      domain.RepositoryKind `json:"kind"`
			Dashboard []domain.DashboardRow `json:"dashboard"`
			Summary   domain.Summary        `json:"summary"`
		}{svc.Kind(), svc.Dashboard(), svc.Summary()})
	}

	rows := svc.Dashboard()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No months recorded.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tSALE\tTARGET\tDIFF\tTARGET MET")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%+.2f\t%s\n",
			r.Month+1, money(r.Sale), money(r.Target), r.Sale-r.Target, r.Compliance)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return printSummary(out, svc.Summary())
}

func printSummary(out io.Writer, s domain.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Months:\t%d\n", s.Months)
	fmt.Fprintf(w, "Total sales:\t%s\n", money(s.TotalSales))
	fmt.Fprintf(w, "Total targets:\t%s\n", money(s.TotalTargets))
	fmt.Fprintf(w, "Mean sale:\t%s (σ %s)\n", money(s.MeanSale), money(s.StdDevSale))
	fmt.Fprintf(w, "Mean target:\t%s (σ %s)\n", money(s.MeanTarget), money(s.StdDevTarget))
	fmt.Fprintf(w, "Targets met:\t%d of %d\n", s.MonthsMet, s.Months)
	return w.Flush()
}

// money renders v with two decimals and thousands separators.
func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// printMetrics writes every salesdesk series from the default registry.
func printMetrics(out io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tLABELS\tVALUE")
	for _, f := range families {
		if !strings.HasPrefix(f.GetName(), "salesdesk_") {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(labels)

			var value string
			switch {
			case m.GetCounter() != nil:
				value = humanize.Ftoa(m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				value = humanize.Ftoa(m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				value = fmt.Sprintf("count=%d sum=%.4fs", h.GetSampleCount(), h.GetSampleSum())
			default:
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", strings.TrimPrefix(f.GetName(), "salesdesk_"), strings.Join(labels, ","), value)
		}
	}
	return w.Flush()
}
