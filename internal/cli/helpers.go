package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/session"
)

// newLineScanner creates a line scanner from a reader.
func newLineScanner(r io.Reader) *bufio.Scanner {
	return bufio.NewScanner(r)
}

// openSession builds a session from config, applying the global flags.
func openSession() (*session.Session, error) {
	return session.New(func(cfg *session.Config) {
		if flagKind != "" {
			cfg.Repository.Kind = flagKind
		}
		if flagNoDemo {
			cfg.Demo.Preload = false
		}
	})
}

func errUsage(usage string) error {
	return fmt.Errorf("%w: usage: %s", domain.ErrValidation, usage)
}

// errorClass names the category of err for display.
func errorClass(err error) string {
	switch {
	case errors.Is(err, domain.ErrMisuse):
		return "not allowed"
	case errors.Is(err, domain.ErrCapacity):
		return "limit reached"
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return "bad index"
	case errors.Is(err, domain.ErrArithmetic):
		return "arithmetic error"
	case errors.Is(err, domain.ErrParse):
		return "syntax error"
	case errors.Is(err, domain.ErrValidation):
		return "invalid input"
	}
	return "error"
}

func formatValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatOrder(o domain.Order) string {
	return fmt.Sprintf("#%d %q (%s)", o.ID, o.Description, o.Status)
}
