package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned when text does not name a member of a symbol table.
var ErrUnknownName = errors.New("unknown symbol name")

// lookupName resolves text against one or more parallel name tables.
func lookupName(kind, text string, tables ...[]string) (int, error) {
	for _, names := range tables {
		for i, n := range names {
			if n == text {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, kind, text)
}

// nameAt returns names[i] or a placeholder when i is out of range.
func nameAt(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("?(%d)", i)
	}
	return names[i]
}
