package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutu-network/salesdesk/internal/app/calculator"
)

func init() {
	calcCmd.AddCommand(calcPostfixCmd, calcEvalCmd, calcRunCmd)
	rootCmd.AddCommand(calcCmd)
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Convert and evaluate arithmetic expressions",
	Long: `Convert infix expressions to postfix and evaluate postfix expressions.
Operators: + - * / ^ and parentheses. Operators of equal precedence,
including ^, group left to right: 2^3^2 is 64.`,
}

var calcPostfixCmd = &cobra.Command{
	Use:     "postfix EXPRESSION",
	Short:   "Convert an infix expression to postfix",
	Example: `  salesdesk calc postfix "3 + 4 * 2"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := calculator.ToPostfix(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var calcEvalCmd = &cobra.Command{
	Use:     "eval POSTFIX",
	Short:   "Evaluate a space-separated postfix expression",
	Example: `  salesdesk calc eval "5 1 2 + 4 * + 3 -"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := calculator.Evaluate(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatResult(v))
		return nil
	},
}

var calcRunCmd = &cobra.Command{
	Use:   "run EXPRESSION",
	Short: "Convert an infix expression and evaluate it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postfix, v, err := calculator.Calculate(strings.Join(args, " "))
		if postfix != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Postfix: %s\n", postfix)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Result:  %s\n", formatResult(v))
		return nil
	},
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
