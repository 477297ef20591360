package expense

import (
	"fmt"
	"strings"

	"github.com/etnz/expense/date"
	"github.com/shopspring/decimal"
)

// segmentSeparator joins the four segments of an encoded record.
const segmentSeparator = "      |      "

// DateMode selects how the date segment of a persisted record is decoded.
type DateMode int

const (
	// KeepDate uses the persisted date.
	KeepDate DateMode = iota
	// Restamp ignores the persisted date and dates the record today, which is
	// how the first versions of the file format were read back.
	Restamp
)

func (m DateMode) String() string {
	switch m {
	case KeepDate:
		return "keep"
	case Restamp:
		return "restamp"
	default:
		return "unknown"
	}
}

// Encode returns the single line representation of r, without line break.
func (r Record) Encode() string {
	var b strings.Builder
	b.WriteString("description : ")
	b.WriteString(r.description)
	b.WriteString(segmentSeparator)
	b.WriteString("amount : ")
	b.WriteString(r.amount.String())
	b.WriteString(segmentSeparator)
	b.WriteString("date : ")
	b.WriteString(r.on.String())
	b.WriteString(segmentSeparator)
	b.WriteString("category : ")
	b.WriteString(r.category)
	return b.String()
}

func (r Record) String() string { return r.Encode() }

// DecodeRecord parses a line produced by Record.Encode.
//
// The line is split on '|', each of the first four segments is cut on its
// first ':' and the value is trimmed. Labels are not checked, only the order
// of the segments matters.
func DecodeRecord(line string, mode DateMode) (Record, error) {
	segments := strings.Split(line, "|")
	if len(segments) < 4 {
		return Record{}, &FormatError{Text: line, Reason: "expected 4 segments separated by '|'"}
	}
	var values [4]string
	for i := range values {
		_, value, ok := strings.Cut(segments[i], ":")
		if !ok {
			return Record{}, &FormatError{Text: line, Reason: fmt.Sprintf("segment %d has no ':'", i+1)}
		}
		values[i] = strings.TrimSpace(value)
	}

	amount, err := decimal.NewFromString(values[1])
	if err != nil {
		return Record{}, &FormatError{Text: line, Reason: "invalid amount", Err: err}
	}

	on := date.Today()
	if mode == KeepDate {
		on, err = date.Parse(values[2])
		if err != nil {
			return Record{}, &FormatError{Text: line, Reason: "invalid date", Err: err}
		}
	}
	return NewRecordOn(on, values[0], amount, values[3]), nil
}
