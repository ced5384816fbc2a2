package closure

import (
	"fmt"

	"github.com/PaesslerAG/gval"
)

var exprLang = gval.Arithmetic()

// Evaluate computes a rendered derivation independently of the Engine,
// honouring the precedence implied by its parentheses.
func Evaluate(expression string) (float64, error) {
	result, err := gval.Evaluate(expression, nil, exprLang)
	if err != nil {
		return 0, err
	}

	value, isFloat := result.(float64)
	if !isFloat {
		return 0, fmt.Errorf("expected float, got: %v", result)
	}
	return value, nil
}

// Verify re-evaluates the rendered solution and checks it hits the target
func (e *Engine) Verify() error {
	expression, err := e.RenderSolution()
	if err != nil {
		return err
	}

	value, err := Evaluate(expression)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", expression, err)
	}
	if value != float64(e.target) {
		return fmt.Errorf("%q evaluates to %v, not %d", expression, value, e.target)
	}
	return nil
}
