package spreadsheet

import "strconv"

type ValueKind uint8

const (
	ValueKindEmpty ValueKind = iota
	ValueKindNumber
	ValueKindText
)

// Value is the content of a cell: nothing, a number or a text.
type Value struct {
	kind   ValueKind
	number float64
	text   string
}

func EmptyValue() Value {
	return Value{}
}

func NumberValue(number float64) Value {
	return Value{kind: ValueKindNumber, number: number}
}

func TextValue(text string) Value {
	return Value{kind: ValueKindText, text: text}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsEmpty() bool {
	return v.kind == ValueKindEmpty
}

func (v Value) Number() (float64, bool) {
	return v.number, v.kind == ValueKindNumber
}

func (v Value) Text() (string, bool) {
	return v.text, v.kind == ValueKindText
}

// Equal compares kind and payload, so NumberValue(5) differs from TextValue("5")
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case ValueKindNumber:
		return v.number == other.number
	case ValueKindText:
		return v.text == other.text
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case ValueKindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case ValueKindText:
		return v.text
	default:
		return ""
	}
}
