package sales

import (
	"github.com/tutu-network/salesdesk/internal/app/calculator"
	"github.com/tutu-network/salesdesk/internal/infra/metrics"
)

// ToPostfix converts an infix expression to postfix.
func (s *Service) ToPostfix(infix string) (string, error) {
	out, err := calculator.ToPostfix(infix)
	metrics.CalculatorEvaluations.WithLabelValues("postfix", resultLabel(err)).Inc()
	return out, err
}

// Evaluate computes a postfix expression.
func (s *Service) Evaluate(postfix string) (float64, error) {
	v, err := calculator.Evaluate(postfix)
	metrics.CalculatorEvaluations.WithLabelValues("evaluate", resultLabel(err)).Inc()
	return v, err
}
