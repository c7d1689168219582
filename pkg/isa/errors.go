package isa

import (
	"fmt"
)

// UnknownISAError is returned when a target token has no registry entry
// under that exact name. Feature suffixes are significant, so "gfx906" and
// "gfx906:xnack-" are distinct names.
type UnknownISAError struct {
	Name string
}

// Error returns the error message.
func (e UnknownISAError) Error() string {
	return fmt.Sprintf("unknown gfx target %q", e.Name)
}

func NewUnknownISA(name string) error {
	return UnknownISAError{Name: name}
}

type duplicateEntryError struct {
	name string
}

// Error returns the error message.
func (e duplicateEntryError) Error() string {
	return fmt.Sprintf("duplicate isa entry %q", e.name)
}

func newDuplicateEntry(name string) error {
	return duplicateEntryError{name: name}
}
