package spreadsheet

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const FormulaPrefix = "="

var ErrInvalidFormula = errors.New("invalid formula")

// Evaluator computes the numeric result of a formula text
type Evaluator interface {
	Evaluate(formula string) (float64, error)
}

// FormulaEvaluator supports exactly one binary operation over two unsigned
// decimal literals: `=<number> <op> <number>` with op one of + - * /.
// References, functions and longer expressions are rejected.
type FormulaEvaluator struct {
	pattern  *regexp.Regexp
	programs map[string]*vm.Program
	vmPool   sync.Pool
}

func NewFormulaEvaluator() *FormulaEvaluator {
	e := &FormulaEvaluator{
		pattern:  regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*([+\-*/])\s*(\d+(?:\.\d+)?)\s*$`),
		programs: make(map[string]*vm.Program, 4),
		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}

	for _, operator := range []string{"+", "-", "*", "/"} {
		e.programs[operator] = mustCompile("left " + operator + " right")
	}

	return e
}

var defaultEvaluator = NewFormulaEvaluator()

func DefaultEvaluator() *FormulaEvaluator {
	return defaultEvaluator
}

func (e *FormulaEvaluator) IsFormula(text string) bool {
	return strings.HasPrefix(text, FormulaPrefix)
}

func (e *FormulaEvaluator) Evaluate(formula string) (float64, error) {
	if !e.IsFormula(formula) {
		return 0, fmt.Errorf("%q: %w: missing %s prefix", formula, ErrInvalidFormula, FormulaPrefix)
	}

	match := e.pattern.FindStringSubmatch(strings.TrimPrefix(formula, FormulaPrefix))
	if match == nil {
		return 0, fmt.Errorf("%q: %w", formula, ErrInvalidFormula)
	}

	left, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %s", formula, ErrInvalidFormula, err)
	}
	right, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %s", formula, ErrInvalidFormula, err)
	}

	operator := match[2]
	if operator == "/" && right == 0 {
		return 0, nil
	}

	v := e.vmPool.Get().(*vm.VM)
	output, err := v.Run(e.programs[operator], operandsEnv(left, right))
	e.vmPool.Put(v)
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %s", formula, ErrInvalidFormula, err)
	}

	return output.(float64), nil
}

// EvaluateOrZero is the cell policy: whatever cannot be evaluated is 0
func (e *FormulaEvaluator) EvaluateOrZero(formula string) float64 {
	result, err := e.Evaluate(formula)
	if err != nil {
		return 0
	}
	return result
}

func mustCompile(code string) *vm.Program {
	program, err := expr.Compile(code, expr.Env(operandsEnv(0, 0)), expr.AsFloat64(), expr.DisableAllBuiltins())
	if err != nil {
		panic(fmt.Errorf("compile %q: %w", code, err))
	}
	return program
}

func operandsEnv(left float64, right float64) map[string]any {
	return map[string]any{
		"left":  left,
		"right": right,
	}
}
