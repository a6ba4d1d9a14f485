package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tutu-network/salesdesk/internal/app/sales"
	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/dsa"
	"github.com/tutu-network/salesdesk/internal/session"
)

func init() {
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session",
	Long: `Start an interactive session over one in-memory service.
Months and regions are numbered from 1. Type 'help' for the command list.`,
	Args: cobra.NoArgs,
	RunE: runShellCmd,
}

func runShellCmd(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	return runShell(cmd.Context(), sess, os.Stdin, os.Stdout)
}

// shell is one interactive session. The tree is the last snapshot built
// from sales and is dropped on reset.
type shell struct {
	ctx  context.Context
	sess *session.Session
	svc  *sales.Service
	out  io.Writer
	tree *dsa.BST
}

type shellCommand struct {
	usage string
	help  string
	run   func(sh *shell, args []string) error
}

var shellCommands map[string]shellCommand

func init() {
	shellCommands = map[string]shellCommand{
		"list":          {"list", "show every month with sale, target and compliance", cmdList},
		"add-first":     {"add-first SALE TARGET", "insert a month at the front", cmdAddFirst},
		"add-last":      {"add-last SALE TARGET", "append a month", cmdAddLast},
		"insert-after":  {"insert-after MONTH SALE TARGET", "insert a month after MONTH", cmdInsertAfter},
		"update":        {"update MONTH SALE TARGET", "replace both values of MONTH", cmdUpdate},
		"update-sale":   {"update-sale MONTH SALE", "replace the sale of MONTH (regions follow)", cmdUpdateSale},
		"update-target": {"update-target MONTH TARGET", "replace the target of MONTH", cmdUpdateTarget},
		"delete":        {"delete MONTH", "delete MONTH", cmdDelete},
		"delete-first":  {"delete-first", "delete the first month", cmdDeleteFirst},
		"delete-last":   {"delete-last", "delete the last month", cmdDeleteLast},
		"reverse":       {"reverse sales|targets", "reverse one entity (linked kinds only)", cmdReverse},
		"dedupe":        {"dedupe sales|targets", "delete months whose value repeats an earlier one", cmdDedupe},
		"remove-value":  {"remove-value sales|targets VALUE", "delete the first month holding VALUE", cmdRemoveValue},
		"find-ge":       {"find-ge sales|targets VALUE", "find the first month at or above VALUE", cmdFindGE},
		"tree":          {"tree build|inorder|preorder|postorder|search V|delete V|info", "search tree over sales", cmdTree},
		"region":        {"region show|available|assigned R|assign R MONTH|release R MONTH|set R MONTH V", "regional matrix", cmdRegion},
		"order":         {"order add DESC|process|finalize|cancel|active|history", "order queue", cmdOrder},
		"calc":          {"calc EXPRESSION", "convert to postfix and evaluate", cmdCalc},
		"summary":       {"summary", "totals, means and deviations", cmdSummary},
		"reset":         {"reset array|singly|doubly", "discard all data and rebuild with a repository kind", cmdReset},
		"status":        {"status", "session, repository kind and sizes", cmdStatus},
		"stats":         {"stats", "in-process metrics", cmdStats},
		"health":        {"health", "run invariant checks", cmdHealth},
		"help":          {"help", "this list", cmdHelp},
	}
}

// runShell reads commands from in until EOF or quit.
func runShell(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sh := &shell{ctx: ctx, sess: sess, svc: sess.Service, out: out}
	fmt.Fprintf(out, "salesdesk shell (%s). Type 'help' for commands, 'quit' to exit.\n",
		sh.svc.Kind().DisplayName())

	scanner := newLineScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		name := strings.ToLower(fields[0])
		if name == "quit" || name == "exit" {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		cmd, ok := shellCommands[name]
		if !ok {
			fmt.Fprintf(out, "Unknown command %q. Type 'help' for commands.\n", name)
			continue
		}
		if err := cmd.run(sh, fields[1:]); err != nil {
			sh.report(name, err)
		}
	}
	return scanner.Err()
}

// report prints err; misuse is also logged since the caller skipped a
// precondition the shell exposes.
func (sh *shell) report(name string, err error) {
	if errors.Is(err, domain.ErrMisuse) {
		sh.sess.Log.Warn().Err(err).Str("command", name).Msg("command rejected")
	}
	fmt.Fprintf(sh.out, "Error (%s): %v\n", errorClass(err), err)
}

func (sh *shell) printf(format string, a ...any) {
	fmt.Fprintf(sh.out, format, a...)
}

// ─── Argument Parsing ───────────────────────────────────────────────────────

func (sh *shell) value(input, field string) (float64, error) {
	return sh.svc.Options().Range.ParseValue(input, field)
}

func (sh *shell) pair(saleIn, targetIn string) (float64, float64, error) {
	sale, err := sh.value(saleIn, "sale")
	if err != nil {
		return 0, 0, err
	}
	target, err := sh.value(targetIn, "target")
	return sale, target, err
}

// number parses a free value (search keys, thresholds) without range limits.
func number(input, field string) (float64, error) {
	s, err := domain.RequireText(input, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrNotANumber, field, input)
	}
	return v, nil
}

// ─── Records ────────────────────────────────────────────────────────────────

func cmdList(sh *shell, args []string) error {
	rows := sh.svc.Dashboard()
	if len(rows) == 0 {
		sh.printf("No months recorded. Use 'add-last SALE TARGET' to add one.\n")
		return nil
	}
	w := tabwriter.NewWriter(sh.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tSALE\tTARGET\tTARGET MET")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%s\n", r.Month+1, r.Sale, r.Target, r.Compliance)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	sh.printf("%d of %d months, %s\n", len(rows), sh.svc.Capacity(), sh.svc.Kind().DisplayName())
	return nil
}

func addPair(sh *shell, args []string, usage string, add func(sale, target float64) error) error {
	if len(args) != 2 {
		return errUsage(usage)
	}
	sale, target, err := sh.pair(args[0], args[1])
	if err != nil {
		return err
	}
	if err := add(sale, target); err != nil {
		return err
	}
	sh.printf("Recorded %.2f / %.2f (%d months).\n", sale, target, sh.svc.Len())
	return nil
}

func cmdAddFirst(sh *shell, args []string) error {
	return addPair(sh, args, "add-first SALE TARGET", sh.svc.AddFirst)
}

func cmdAddLast(sh *shell, args []string) error {
	return addPair(sh, args, "add-last SALE TARGET", sh.svc.AddLast)
}

func cmdInsertAfter(sh *shell, args []string) error {
	if len(args) != 3 {
		return errUsage("insert-after MONTH SALE TARGET")
	}
	month, err := domain.ParseIndex(args[0], "month")
	if err != nil {
		return err
	}
	return addPair(sh, args[1:], "insert-after MONTH SALE TARGET", func(s, t float64) error {
		return sh.svc.InsertAfter(month, s, t)
	})
}

func cmdUpdate(sh *shell, args []string) error {
	if len(args) != 3 {
		return errUsage("update MONTH SALE TARGET")
	}
	month, err := domain.ParseIndex(args[0], "month")
	if err != nil {
		return err
	}
	sale, target, err := sh.pair(args[1], args[2])
	if err != nil {
		return err
	}
	if err := sh.svc.UpdateRecord(month, sale, target); err != nil {
		return err
	}
	sh.printf("Month %d updated.\n", month+1)
	return nil
}

func updateOne(sh *shell, args []string, field string, update func(int, float64) error) error {
	if len(args) != 2 {
		return errUsage(fmt.Sprintf("update-%s MONTH %s", field, strings.ToUpper(field)))
	}
	month, err := domain.ParseIndex(args[0], "month")
	if err != nil {
		return err
	}
	v, err := sh.value(args[1], field)
	if err != nil {
		return err
	}
	if err := update(month, v); err != nil {
		return err
	}
	sh.printf("Month %d %s set to %.2f.\n", month+1, field, v)
	return nil
}

func cmdUpdateSale(sh *shell, args []string) error {
	return updateOne(sh, args, "sale", sh.svc.UpdateSale)
}

func cmdUpdateTarget(sh *shell, args []string) error {
	return updateOne(sh, args, "target", sh.svc.UpdateTarget)
}

func cmdDelete(sh *shell, args []string) error {
	if len(args) != 1 {
		return errUsage("delete MONTH")
	}
	month, err := domain.ParseIndex(args[0], "month")
	if err != nil {
		return err
	}
	if err := sh.svc.DeleteRecord(month); err != nil {
		return err
	}
	sh.printf("Month %d deleted (%d left).\n", month+1, sh.svc.Len())
	return nil
}

func cmdDeleteFirst(sh *shell, args []string) error {
	if err := sh.svc.DeleteFirst(); err != nil {
		return err
	}
	sh.printf("First month deleted (%d left).\n", sh.svc.Len())
	return nil
}

func cmdDeleteLast(sh *shell, args []string) error {
	if err := sh.svc.DeleteLast(); err != nil {
		return err
	}
	sh.printf("Last month deleted (%d left).\n", sh.svc.Len())
	return nil
}

// ─── Advanced ───────────────────────────────────────────────────────────────

func entityArg(args []string, n int, usage string) (domain.Entity, error) {
	if len(args) != n {
		return "", errUsage(usage)
	}
	return domain.ParseEntity(args[0])
}

func cmdReverse(sh *shell, args []string) error {
	e, err := entityArg(args, 1, "reverse sales|targets")
	if err != nil {
		return err
	}
	if err := sh.svc.Reverse(e); err != nil {
		return err
	}
	values := sh.svc.Sales()
	if e == domain.EntityTargets {
		values = sh.svc.Targets()
	}
	sh.printf("%s reversed: %s\n", e, formatValues(values))
	return nil
}

func cmdDedupe(sh *shell, args []string) error {
	e, err := entityArg(args, 1, "dedupe sales|targets")
	if err != nil {
		return err
	}
	n, err := sh.svc.RemoveDuplicates(e)
	if err != nil {
		return err
	}
	if n == 0 {
		sh.printf("No duplicate %s found.\n", e)
		return nil
	}
	sh.printf("Removed %d month(s) with duplicate %s.\n", n, e)
	return nil
}

func cmdRemoveValue(sh *shell, args []string) error {
	e, err := entityArg(args, 2, "remove-value sales|targets VALUE")
	if err != nil {
		return err
	}
	v, err := number(args[1], "value")
	if err != nil {
		return err
	}
	ok, err := sh.svc.RemoveByValue(e, v)
	if err != nil {
		return err
	}
	if !ok {
		sh.printf("No month has %s %.2f.\n", e, v)
		return nil
	}
	sh.printf("Removed the first month with %s %.2f.\n", e, v)
	return nil
}

func cmdFindGE(sh *shell, args []string) error {
	e, err := entityArg(args, 2, "find-ge sales|targets VALUE")
	if err != nil {
		return err
	}
	t, err := number(args[1], "threshold")
	if err != nil {
		return err
	}
	i, err := sh.svc.FindFirstAtLeast(e, t)
	if err != nil {
		return err
	}
	if i < 0 {
		sh.printf("No month has %s at or above %.2f.\n", e, t)
		return nil
	}
	sh.printf("First month with %s >= %.2f: month %d.\n", e, t, i+1)
	return nil
}

// ─── Tree ───────────────────────────────────────────────────────────────────

func (sh *shell) currentTree() (*dsa.BST, error) {
	if sh.tree == nil {
		t, err := sh.svc.BuildSalesTree()
		if err != nil {
			return nil, err
		}
		sh.tree = t
	}
	return sh.tree, nil
}

func formatEntries(entries []dsa.Entry) string {
	if len(entries) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%.2f", e.Value)
		if e.Frequency > 1 {
			parts[i] += fmt.Sprintf(" x%d", e.Frequency)
		}
	}
	return strings.Join(parts, ", ")
}

func cmdTree(sh *shell, args []string) error {
	const usage = "tree build|inorder|preorder|postorder|search V|delete V|info"
	if len(args) == 0 {
		return errUsage(usage)
	}
	if args[0] == "build" {
		t, err := sh.svc.BuildSalesTree()
		if err != nil {
			return err
		}
		sh.tree = t
		sh.printf("Tree built from %d sales: %d distinct values, height %d.\n", sh.svc.Len(), t.Len(), t.Height())
		return nil
	}

	t, err := sh.currentTree()
	if err != nil {
		return err
	}
	switch args[0] {
	case "inorder":
		sh.printf("In-order: %s\n", formatEntries(t.InOrder()))
	case "preorder":
		sh.printf("Pre-order: %s\n", formatEntries(t.PreOrder()))
	case "postorder":
		sh.printf("Post-order: %s\n", formatEntries(t.PostOrder()))
	case "info":
		lo, _ := t.Min()
		hi, _ := t.Max()
		sh.printf("%d distinct values, height %d, min %.2f, max %.2f\n", t.Len(), t.Height(), lo.Value, hi.Value)
	case "search", "delete":
		if len(args) != 2 {
			return errUsage("tree " + args[0] + " VALUE")
		}
		v, err := number(args[1], "value")
		if err != nil {
			return err
		}
		if args[0] == "delete" {
			if !t.Delete(v) {
				sh.printf("%.2f is not in the tree.\n", v)
				return nil
			}
			sh.printf("Deleted %.2f from the tree (sales data unchanged).\n", v)
			return nil
		}
		res, ok := t.Search(v)
		if !ok {
			sh.printf("%.2f is not in the tree.\n", v)
			return nil
		}
		sh.printf("Found %.2f (frequency %d) at level %d", res.Node.Value, res.Node.Frequency, res.Level)
		if res.HasParent {
			sh.printf(", %s of %.2f", res.Position, res.Parent.Value)
		} else {
			sh.printf(", %s", res.Position)
		}
		sh.printf(".\n")
	default:
		return errUsage(usage)
	}
	return nil
}

// ─── Regional ───────────────────────────────────────────────────────────────

func cmdRegion(sh *shell, args []string) error {
	const usage = "region show|available|assigned R|assign R MONTH|release R MONTH|set R MONTH V"
	if len(args) == 0 {
		return errUsage(usage)
	}
	switch args[0] {
	case "show":
		return printMatrix(sh)
	case "available":
		slots := sh.svc.AvailableMonths()
		if len(slots) == 0 {
			sh.printf("Every recorded month is assigned.\n")
		}
		for _, s := range slots {
			sh.printf("  %s\n", s.Label())
		}
		return nil
	case "assigned":
		if len(args) != 2 {
			return errUsage("region assigned REGION")
		}
		r, err := domain.ParseIndex(args[1], "region")
		if err != nil {
			return err
		}
		slots := sh.svc.AssignedMonths(r)
		if len(slots) == 0 {
			sh.printf("Region %d holds no months.\n", r+1)
		}
		for _, s := range slots {
			sh.printf("  %s\n", s.Label())
		}
		return nil
	case "assign", "release":
		if len(args) != 3 {
			return errUsage("region " + args[0] + " REGION MONTH")
		}
		r, err := domain.ParseIndex(args[1], "region")
		if err != nil {
			return err
		}
		m, err := domain.ParseIndex(args[2], "month")
		if err != nil {
			return err
		}
		if args[0] == "assign" {
			if err := sh.svc.AssignMonth(r, m); err != nil {
				return err
			}
			sh.printf("Month %d assigned to region %d.\n", m+1, r+1)
			return nil
		}
		if err := sh.svc.ReleaseMonth(r, m); err != nil {
			return err
		}
		sh.printf("Month %d released from region %d.\n", m+1, r+1)
		return nil
	case "set":
		if len(args) != 4 {
			return errUsage("region set REGION MONTH VALUE")
		}
		r, err := domain.ParseIndex(args[1], "region")
		if err != nil {
			return err
		}
		m, err := domain.ParseIndex(args[2], "month")
		if err != nil {
			return err
		}
		v, err := sh.value(args[3], "value")
		if err != nil {
			return err
		}
		if !sh.svc.AssignRegional(r, m, v) {
			return fmt.Errorf("%w: region %d, month %d", domain.ErrIndexOutOfRange, r+1, m+1)
		}
		sh.printf("Region %d month %d set to %.2f.\n", r+1, m+1, v)
		return nil
	}
	return errUsage(usage)
}

func printMatrix(sh *shell) error {
	m := sh.svc.RegionalMatrix()
	_, months := sh.svc.RegionalShape()
	w := tabwriter.NewWriter(sh.out, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "REGION\t")
	for c := 0; c < months; c++ {
		fmt.Fprintf(w, "M%d\t", c+1)
	}
	fmt.Fprintln(w)
	for r, row := range m {
		fmt.Fprintf(w, "%d\t", r+1)
		for _, v := range row {
			if v == 0 {
				fmt.Fprint(w, "-\t")
			} else {
				fmt.Fprintf(w, "%.2f\t", v)
			}
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// ─── Orders ─────────────────────────────────────────────────────────────────

func cmdOrder(sh *shell, args []string) error {
	const usage = "order add DESC|process|finalize|cancel|active|history"
	if len(args) == 0 {
		return errUsage(usage)
	}
	switch args[0] {
	case "add":
		o, err := sh.svc.EnqueueOrder(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		sh.printf("Queued %s. %d pending.\n", formatOrder(o), sh.svc.PendingOrders())
	case "process":
		o, ok, err := sh.svc.ProcessNextOrder()
		if err != nil {
			return err
		}
		if !ok {
			sh.printf("No pending orders.\n")
			return nil
		}
		sh.printf("Processing %s.\n", formatOrder(o))
	case "finalize":
		o, err := sh.svc.FinalizeCurrentOrder()
		if err != nil {
			return err
		}
		sh.printf("Completed %s.\n", formatOrder(o))
	case "cancel":
		o, err := sh.svc.CancelNextOrder()
		if err != nil {
			return err
		}
		sh.printf("Cancelled %s.\n", formatOrder(o))
	case "active":
		return printOrders(sh, sh.svc.ActiveOrders(), "No active orders.")
	case "history":
		return printOrders(sh, sh.svc.OrderHistory(), "No finished orders.")
	default:
		return errUsage(usage)
	}
	return nil
}

func printOrders(sh *shell, orders []domain.Order, empty string) error {
	if len(orders) == 0 {
		sh.printf("%s\n", empty)
		return nil
	}
	w := tabwriter.NewWriter(sh.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tCREATED\tDESCRIPTION")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", o.ID, o.Status, o.CreatedAt.Format("15:04:05"), o.Description)
	}
	return w.Flush()
}

// ─── Calculator & Reports ───────────────────────────────────────────────────

func cmdCalc(sh *shell, args []string) error {
	if len(args) == 0 {
		return errUsage("calc EXPRESSION")
	}
	postfix, err := sh.svc.ToPostfix(strings.Join(args, " "))
	if err != nil {
		return err
	}
	sh.printf("Postfix: %s\n", postfix)
	v, err := sh.svc.Evaluate(postfix)
	if err != nil {
		return err
	}
	sh.printf("Result:  %s\n", formatResult(v))
	return nil
}

func cmdSummary(sh *shell, args []string) error {
	return printSummary(sh.out, sh.svc.Summary())
}

func cmdReset(sh *shell, args []string) error {
	if len(args) != 1 {
		return errUsage("reset array|singly|doubly")
	}
	kind, err := domain.ParseRepositoryKind(args[0])
	if err != nil {
		return err
	}
	if err := sh.svc.Reset(kind); err != nil {
		return err
	}
	sh.tree = nil
	sh.printf("Reset to %s with %d months.\n", kind.DisplayName(), sh.svc.Len())
	return nil
}

func cmdStatus(sh *shell, args []string) error {
	w := tabwriter.NewWriter(sh.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Session:\t%s\n", sh.sess.ID)
	fmt.Fprintf(w, "Repository:\t%s\n", sh.svc.Kind().DisplayName())
	fmt.Fprintf(w, "Months:\t%d of %d\n", sh.svc.Len(), sh.svc.Capacity())
	fmt.Fprintf(w, "Advanced ops:\t%t\n", sh.svc.SupportsAdvancedOps(domain.EntitySales))
	fmt.Fprintf(w, "Pending orders:\t%d\n", sh.svc.PendingOrders())
	if o, ok := sh.svc.CurrentOrder(); ok {
		fmt.Fprintf(w, "In process:\t%s\n", formatOrder(o))
	}
	return w.Flush()
}

func cmdStats(sh *shell, args []string) error {
	return printMetrics(sh.out)
}

func cmdHealth(sh *shell, args []string) error {
	statuses := sh.sess.Health.RunAll(sh.ctx)
	w := tabwriter.NewWriter(sh.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHECK\tSTATUS\tDETAIL")
	for _, s := range statuses {
		state := "ok"
		if !s.Healthy {
			state = "FAIL"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, state, s.Error)
	}
	return w.Flush()
}

func cmdHelp(sh *shell, args []string) error {
	w := tabwriter.NewWriter(sh.out, 0, 0, 2, ' ', 0)
	for _, name := range slices.Sorted(maps.Keys(shellCommands)) {
		c := shellCommands[name]
		fmt.Fprintf(w, "  %s\t%s\n", c.usage, c.help)
	}
	fmt.Fprintf(w, "  quit\tleave the shell\n")
	return w.Flush()
}
