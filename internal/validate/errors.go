package validate

import "fmt"

// Error is a dataset validation failure. Exactly one Error surfaces per
// failing run (fail-fast). Dataset, Row and Field are filled in where
// the failure is scoped to a file, a CSV row and a column; Row counts
// from 1 with the header as row 1, so data rows start at 2.
type Error struct {
	Dataset string
	Row     int
	Field   string
	Msg     string
}

func (e *Error) Error() string {
	switch {
	case e.Dataset == "":
		return e.Msg
	case e.Row == 0:
		return fmt.Sprintf("%s: %s", e.Dataset, e.Msg)
	default:
		return fmt.Sprintf("%s: row %d %s", e.Dataset, e.Row, e.Msg)
	}
}

// rowError builds a row-scoped Error with a formatted message.
func rowError(dataset string, row int, field, format string, args ...interface{}) *Error {
	return &Error{
		Dataset: dataset,
		Row:     row,
		Field:   field,
		Msg:     fmt.Sprintf(format, args...),
	}
}
