package gamedb

import "fmt"

// NotFoundError is returned when no database file exists for a game.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("game database not found: %s", e.Path)
}

// UnknownInstructionError is returned by lookups when no record matches the
// requested id or name.
type UnknownInstructionError struct {
	Ref string
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction: %s", e.Ref)
}

// NoValueError is returned when a symbolic operand name has no bound value
// in a given slot. There is no fallback: a name carries no inherent value.
type NoValueError struct {
	Slot uint32
	Name string
}

func (e *NoValueError) Error() string {
	return fmt.Sprintf("no value associated with %q in slot %d", e.Name, e.Slot)
}
