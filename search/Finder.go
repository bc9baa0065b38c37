// Package search finds and replaces text in the cells of a worksheet.
package search

import (
	"errors"
	"regexp"
	"strings"

	"github.com/vanish000/Spreadsheet/spreadsheet"
)

var ErrReadOnly = errors.New("cell is read-only")

var ErrCellMissing = errors.New("cell no longer exists")

var wordSeparator = regexp.MustCompile(`\W+`)

type Options struct {
	CaseSensitive bool
	WholeWord     bool
}

// Result points at a matching cell. It is not updated when the worksheet changes.
type Result struct {
	Row  int
	Col  int
	Text string
}

// Find scans the declared extent row by row and matches against the display text
func Find(worksheet *spreadsheet.Worksheet, text string, options Options) []Result {
	if text == "" {
		return nil
	}

	var results []Result
	for _, position := range worksheet.Positions() {
		if position.Row >= worksheet.RowCount() || position.Column >= worksheet.ColumnCount() {
			continue
		}

		cell, _ := worksheet.CellAt(position.Row, position.Column)
		display := cell.DisplayText()
		if matches(display, text, options) {
			results = append(results, Result{Row: position.Row, Col: position.Column, Text: display})
		}
	}

	return results
}

// ReplaceAt rewrites the cell a result points at. Text starting with "=" is
// stored as a formula, anything else as a text value.
func ReplaceAt(worksheet *spreadsheet.Worksheet, result Result, text string, replacement string, options Options) error {
	cell, ok := worksheet.CellAt(result.Row, result.Col)
	if !ok {
		return ErrCellMissing
	}
	if cell.IsReadOnly() {
		return ErrReadOnly
	}

	display := cell.DisplayText()
	replaced := pattern(text, options).ReplaceAllLiteralString(display, replacement)
	if replaced == display {
		return nil
	}

	if strings.HasPrefix(replaced, spreadsheet.FormulaPrefix) {
		cell.SetFormula(replaced)
	} else {
		cell.SetValue(spreadsheet.TextValue(replaced))
	}
	return nil
}

// ReplaceAll returns the number of rewritten cells. Read-only cells are left alone.
func ReplaceAll(worksheet *spreadsheet.Worksheet, text string, replacement string, options Options) (int, error) {
	replaced := 0
	for _, result := range Find(worksheet, text, options) {
		err := ReplaceAt(worksheet, result, text, replacement, options)
		if errors.Is(err, ErrReadOnly) {
			continue
		}
		if err != nil {
			return replaced, err
		}
		replaced++
	}

	return replaced, nil
}

func matches(display string, text string, options Options) bool {
	if !options.WholeWord {
		if options.CaseSensitive {
			return strings.Contains(display, text)
		}
		return strings.Contains(strings.ToLower(display), strings.ToLower(text))
	}

	for _, word := range wordSeparator.Split(display, -1) {
		if word == text || (!options.CaseSensitive && strings.EqualFold(word, text)) {
			return true
		}
	}
	return false
}

func pattern(text string, options Options) *regexp.Regexp {
	expression := regexp.QuoteMeta(text)
	if options.WholeWord {
		expression = `\b` + expression + `\b`
	}
	if !options.CaseSensitive {
		expression = `(?i)` + expression
	}
	return regexp.MustCompile(expression)
}
