package spreadsheet

import "strings"

// Cell holds either a literal value or a formula. A formula cell keeps the
// evaluated number as its value.
type Cell struct {
	row       int
	col       int
	value     Value
	formula   string
	readOnly  bool
	evaluator Evaluator

	valueChanged   Signal[struct{}]
	formulaChanged Signal[struct{}]

	// set once a worksheet re-emits this cell's changes
	wired bool
}

func NewCell(row int, col int) *Cell {
	return NewCellWithEvaluator(row, col, defaultEvaluator)
}

func NewCellWithEvaluator(row int, col int, evaluator Evaluator) *Cell {
	return &Cell{
		row:       row,
		col:       col,
		evaluator: evaluator,
	}
}

func (c *Cell) Row() int {
	return c.row
}

func (c *Cell) Column() int {
	return c.col
}

func (c *Cell) Value() Value {
	return c.value
}

func (c *Cell) Formula() string {
	return c.formula
}

func (c *Cell) IsReadOnly() bool {
	return c.readOnly
}

// SetReadOnly only records the flag. Callers editing on behalf of a user check it.
func (c *Cell) SetReadOnly(readOnly bool) {
	c.readOnly = readOnly
}

func (c *Cell) ValueChanged() *Signal[struct{}] {
	return &c.valueChanged
}

func (c *Cell) FormulaChanged() *Signal[struct{}] {
	return &c.formulaChanged
}

// IsEmpty reports a cell without formula and without value
func (c *Cell) IsEmpty() bool {
	return c.formula == "" && c.value.IsEmpty()
}

func (c *Cell) SetValue(value Value) {
	hadFormula := c.formula != ""
	c.formula = ""

	if !c.value.Equal(value) {
		c.value = value
		c.valueChanged.Emit(struct{}{})
	}

	if hadFormula {
		c.formulaChanged.Emit(struct{}{})
	}
}

func (c *Cell) SetFormula(formula string) {
	if c.formula == formula {
		return
	}

	c.formula = formula
	c.evaluateFormula()
	c.formulaChanged.Emit(struct{}{})
}

// DisplayText shows the formula source rather than its result when a formula is set
func (c *Cell) DisplayText() string {
	if c.formula != "" {
		return c.formula
	}
	return c.value.String()
}

// evaluateFormula leaves the value alone for text without the "=" prefix but
// still reports a value change.
func (c *Cell) evaluateFormula() {
	if c.formula == "" {
		return
	}

	if !strings.HasPrefix(c.formula, FormulaPrefix) {
		c.valueChanged.Emit(struct{}{})
		return
	}

	result, err := c.evaluator.Evaluate(c.formula)
	if err != nil {
		result = 0
	}

	c.value = NumberValue(result)
	c.valueChanged.Emit(struct{}{})
}
