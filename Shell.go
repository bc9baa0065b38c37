package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/vanish000/Spreadsheet/codec"
	"github.com/vanish000/Spreadsheet/contracts"
	"github.com/vanish000/Spreadsheet/search"
	"github.com/vanish000/Spreadsheet/spreadsheet"
)

var ErrUnknownCommand = errors.New("unknown command")

var ErrUsage = errors.New("usage")

var ErrUnsupportedFileType = errors.New("unsupported file type")

type shellCommand struct {
	usage       string
	description string
	run         func(s *Shell, args []string, line string) error
}

var shellCommands map[string]shellCommand

func init() {
	shellCommands = map[string]shellCommand{
		"help":    {"help", "list commands", (*Shell).help},
		"sheets":  {"sheets", "list worksheets", (*Shell).sheets},
		"sheet":   {"sheet <index>", "switch the current worksheet", (*Shell).sheet},
		"add":     {"add [name]", "append a worksheet", (*Shell).add},
		"remove":  {"remove <index>", "remove a worksheet", (*Shell).remove},
		"rename":  {"rename <name>", "rename the current worksheet", (*Shell).rename},
		"resize":  {"resize <rows> <columns>", "change the declared size of the current worksheet", (*Shell).resize},
		"set":     {"set <cell> <content>", "write a value, or a formula when content starts with =", (*Shell).set},
		"get":     {"get <cell>", "show one cell", (*Shell).get},
		"clear":   {"clear <cell>", "empty one cell", (*Shell).clear},
		"lock":    {"lock <cell>", "make a cell read-only", (*Shell).lock},
		"unlock":  {"unlock <cell>", "make a cell editable", (*Shell).unlock},
		"show":    {"show", "print the cells of the current worksheet", (*Shell).show},
		"find":    {"find <text> [-c] [-w]", "search the current worksheet (-c case sensitive, -w whole word)", (*Shell).find},
		"next":    {"next", "go to the next search result", (*Shell).next},
		"prev":    {"prev", "go to the previous search result", (*Shell).prev},
		"replace": {"replace <text> <replacement> [-c] [-w]", "replace in every editable cell of the current worksheet", (*Shell).replace},
		"save":    {"save <file>", "write the workbook (.json or .xlsx) or the current worksheet (.csv)", (*Shell).save},
		"load":    {"load <file>", "read the workbook (.json or .xlsx) or the current worksheet (.csv)", (*Shell).load},
	}
}

// Shell runs text commands against one workbook
type Shell struct {
	workbook    *spreadsheet.Workbook
	out         io.Writer
	cellAddress contracts.CellAddressParser
	cursor      *search.Cursor
}

func NewShell(workbook *spreadsheet.Workbook, out io.Writer) *Shell {
	return &Shell{
		workbook:    workbook,
		out:         out,
		cellAddress: NewCellAddress(),
	}
}

// Execute runs one command line. It reports true when the shell should stop.
func (s *Shell) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	if quit, _ := isQuit(line); quit {
		return true, nil
	}

	name := strings.ToLower(fields[0])

	command, ok := shellCommands[name]
	if !ok {
		return false, fmt.Errorf("%s: %w", fields[0], ErrUnknownCommand)
	}

	return false, command.run(s, fields[1:], line)
}

// Run reads commands with an interactive prompt until exit
func (s *Shell) Run() {
	p := prompt.New(
		func(in string) {
			if _, err := s.Execute(in); err != nil {
				fmt.Fprintf(s.out, "error: %s\n", err)
			}
		},
		s.complete,
		prompt.OptionTitle("Spreadsheet"),
		prompt.OptionPrefix("sheet> "),
		prompt.OptionLivePrefix(func() (string, bool) {
			return s.workbook.CurrentWorksheet().Name() + "> ", true
		}),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			quit, _ := isQuit(in)
			return breakline && quit
		}),
	)
	p.Run()
}

func (s *Shell) complete(d prompt.Document) []prompt.Suggest {
	if strings.Contains(d.TextBeforeCursor(), " ") {
		return []prompt.Suggest{}
	}

	suggestions := make([]prompt.Suggest, 0, len(shellCommands)+1)
	for name, command := range shellCommands {
		suggestions = append(suggestions, prompt.Suggest{Text: name, Description: command.description})
	}
	suggestions = append(suggestions, prompt.Suggest{Text: "exit", Description: "leave the shell"})
	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Text < suggestions[j].Text
	})

	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}

func (s *Shell) help(args []string, line string) error {
	names := make([]string, 0, len(shellCommands))
	for name := range shellCommands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(s.out, "  %-40s %s\n", shellCommands[name].usage, shellCommands[name].description)
	}
	fmt.Fprintf(s.out, "  %-40s %s\n", "exit", "leave the shell")
	return nil
}

func (s *Shell) sheets(args []string, line string) error {
	for index, worksheet := range s.workbook.Worksheets() {
		marker := " "
		if index == s.workbook.CurrentIndex() {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %d %s (%dx%d)\n", marker, index, worksheet.Name(), worksheet.RowCount(), worksheet.ColumnCount())
	}
	return nil
}

func (s *Shell) sheet(args []string, line string) error {
	index, err := s.worksheetIndex(args)
	if err != nil {
		return err
	}

	s.workbook.SetCurrentWorksheet(index)
	s.cursor = nil
	return nil
}

func (s *Shell) add(args []string, line string) error {
	worksheet := s.workbook.AddWorksheet(restOfLine(line, 1))
	fmt.Fprintf(s.out, "added %s\n", worksheet.Name())
	return nil
}

func (s *Shell) remove(args []string, line string) error {
	index, err := s.worksheetIndex(args)
	if err != nil {
		return err
	}
	if s.workbook.WorksheetCount() <= 1 {
		return contracts.LastWorksheetError
	}

	s.workbook.RemoveWorksheet(index)
	s.cursor = nil
	return nil
}

func (s *Shell) rename(args []string, line string) error {
	name := restOfLine(line, 1)
	if name == "" {
		return fmt.Errorf("%w: %s", ErrUsage, shellCommands["rename"].usage)
	}

	s.workbook.CurrentWorksheet().SetName(name)
	return nil
}

func (s *Shell) resize(args []string, line string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s", ErrUsage, shellCommands["resize"].usage)
	}

	rowCount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUsage, shellCommands["resize"].usage)
	}
	columnCount, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUsage, shellCommands["resize"].usage)
	}

	s.workbook.CurrentWorksheet().Resize(rowCount, columnCount)
	return nil
}

func (s *Shell) set(args []string, line string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: %s", ErrUsage, shellCommands["set"].usage)
	}

	cell, position, err := s.editableCell(args[0])
	if err != nil {
		return err
	}

	content := restOfLine(line, 2)
	switch {
	case strings.HasPrefix(content, spreadsheet.FormulaPrefix):
		cell.SetFormula(content)
	case content == "":
		cell.SetValue(spreadsheet.EmptyValue())
	default:
		if number, err := strconv.ParseFloat(content, 64); err == nil {
			cell.SetValue(spreadsheet.NumberValue(number))
		} else {
			cell.SetValue(spreadsheet.TextValue(content))
		}
	}

	s.printCell(position, cell)
	return nil
}

func (s *Shell) get(args []string, line string) error {
	position, err := s.position(args, "get")
	if err != nil {
		return err
	}

	cell, _ := s.workbook.CurrentWorksheet().CellAt(position.Row, position.Column)
	s.printCell(position, cell)
	return nil
}

func (s *Shell) clear(args []string, line string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s", ErrUsage, shellCommands["clear"].usage)
	}

	cell, _, err := s.editableCell(args[0])
	if err != nil {
		return err
	}

	cell.SetValue(spreadsheet.EmptyValue())
	return nil
}

func (s *Shell) lock(args []string, line string) error {
	return s.setReadOnly(args, "lock", true)
}

func (s *Shell) unlock(args []string, line string) error {
	return s.setReadOnly(args, "unlock", false)
}

func (s *Shell) show(args []string, line string) error {
	worksheet := s.workbook.CurrentWorksheet()
	for _, position := range worksheet.Positions() {
		cell, _ := worksheet.CellAt(position.Row, position.Column)
		if !cell.IsEmpty() {
			s.printCell(position, cell)
		}
	}
	return nil
}

func (s *Shell) find(args []string, line string) error {
	words, options := searchArguments(args)
	if len(words) != 1 {
		return fmt.Errorf("%w: %s", ErrUsage, shellCommands["find"].usage)
	}

	results := search.Find(s.workbook.CurrentWorksheet(), words[0], options)
	s.cursor = search.NewCursor(results)
	fmt.Fprintf(s.out, "%d found\n", len(results))

	if len(results) > 0 {
		return s.next(nil, "")
	}
	return nil
}

func (s *Shell) next(args []string, line string) error {
	return s.move(s.cursorOrEmpty().Next)
}

func (s *Shell) prev(args []string, line string) error {
	return s.move(s.cursorOrEmpty().Previous)
}

func (s *Shell) replace(args []string, line string) error {
	words, options := searchArguments(args)
	if len(words) != 2 {
		return fmt.Errorf("%w: %s", ErrUsage, shellCommands["replace"].usage)
	}

	replaced, err := search.ReplaceAll(s.workbook.CurrentWorksheet(), words[0], words[1], options)
	if err != nil {
		return err
	}

	s.cursor = nil
	fmt.Fprintf(s.out, "%d replaced\n", replaced)
	return nil
}

func (s *Shell) save(args []string, line string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s", ErrUsage, shellCommands["save"].usage)
	}
	return SaveFile(s.workbook, args[0])
}

func (s *Shell) load(args []string, line string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s", ErrUsage, shellCommands["load"].usage)
	}

	s.cursor = nil
	return LoadFile(s.workbook, args[0])
}

func (s *Shell) move(step func() (search.Result, bool)) error {
	result, ok := step()
	if !ok {
		fmt.Fprintln(s.out, "no results")
		return nil
	}

	position := spreadsheet.CellPosition{Row: result.Row, Column: result.Col}
	cell, _ := s.workbook.CurrentWorksheet().CellAt(result.Row, result.Col)
	s.printCell(position, cell)
	return nil
}

func (s *Shell) cursorOrEmpty() *search.Cursor {
	if s.cursor == nil {
		return search.NewCursor(nil)
	}
	return s.cursor
}

func (s *Shell) setReadOnly(args []string, name string, readOnly bool) error {
	position, err := s.position(args, name)
	if err != nil {
		return err
	}

	s.workbook.CurrentWorksheet().Cell(position.Row, position.Column).SetReadOnly(readOnly)
	return nil
}

func (s *Shell) editableCell(address string) (*spreadsheet.Cell, spreadsheet.CellPosition, error) {
	row, col, err := s.cellAddress.Parse(address)
	position := spreadsheet.CellPosition{Row: row, Column: col}
	if err != nil {
		return nil, position, err
	}

	cell := s.workbook.CurrentWorksheet().Cell(row, col)
	if cell.IsReadOnly() {
		return nil, position, fmt.Errorf("%s: %w", address, contracts.CellReadOnlyError)
	}
	return cell, position, nil
}

func (s *Shell) position(args []string, name string) (spreadsheet.CellPosition, error) {
	if len(args) != 1 {
		return spreadsheet.CellPosition{}, fmt.Errorf("%w: %s", ErrUsage, shellCommands[name].usage)
	}

	row, col, err := s.cellAddress.Parse(args[0])
	return spreadsheet.CellPosition{Row: row, Column: col}, err
}

func (s *Shell) worksheetIndex(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: worksheet index expected", ErrUsage)
	}

	index, err := strconv.Atoi(args[0])
	if err != nil || s.workbook.Worksheet(index) == nil {
		return 0, fmt.Errorf("%s: %w", args[0], contracts.WorksheetNotFoundError)
	}
	return index, nil
}

func (s *Shell) printCell(position spreadsheet.CellPosition, cell *spreadsheet.Cell) {
	address := s.cellAddress.Format(position.Row, position.Column)
	if cell == nil || cell.IsEmpty() {
		fmt.Fprintf(s.out, "%s: (empty)\n", address)
		return
	}

	line := address + ": " + cell.DisplayText()
	if cell.Formula() != "" {
		line += " = " + cell.Value().String()
	}
	if cell.IsReadOnly() {
		line += " [read-only]"
	}
	fmt.Fprintln(s.out, line)
}

func isQuit(line string) (bool, string) {
	name := strings.ToLower(strings.TrimSpace(line))
	return name == "exit" || name == "quit", name
}

func searchArguments(args []string) ([]string, search.Options) {
	options := search.Options{}
	words := make([]string, 0, len(args))

	for _, arg := range args {
		switch arg {
		case "-c":
			options.CaseSensitive = true
		case "-w":
			options.WholeWord = true
		default:
			words = append(words, arg)
		}
	}
	return words, options
}

// restOfLine returns the line after its first skip fields, inner spacing kept
func restOfLine(line string, skip int) string {
	rest := strings.TrimSpace(line)
	for i := 0; i < skip && rest != ""; i++ {
		end := strings.IndexAny(rest, " \t")
		if end < 0 {
			return ""
		}
		rest = strings.TrimSpace(rest[end:])
	}
	return rest
}

// LoadFile picks the reader by extension. A csv file is read into the current worksheet.
func LoadFile(workbook *spreadsheet.Workbook, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return codec.LoadWorkbook(workbook, path)
	case ".xlsx":
		return codec.ImportXlsx(workbook, path)
	case ".csv":
		return codec.ImportCsv(workbook.CurrentWorksheet(), path)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFileType)
	}
}

// SaveFile picks the writer by extension. A csv file receives the current worksheet.
func SaveFile(workbook *spreadsheet.Workbook, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return codec.SaveWorkbook(workbook, path)
	case ".xlsx":
		return codec.ExportXlsx(workbook, path)
	case ".csv":
		return codec.ExportCsv(workbook.CurrentWorksheet(), path)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFileType)
	}
}
