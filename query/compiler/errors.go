package compiler

import "fmt"

// InvalidIdentifierError reports a table or column name that failed
// validation. The offending name is kept verbatim for the caller.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier: %q", e.Name)
}
