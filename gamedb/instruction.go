package gamedb

import "fmt"

// Instruction is the decoded metadata for one opcode: its identifier, total
// encoded size, argument layout descriptor, display name, block role and the
// symbolic names bound to raw operand values.
type Instruction struct {
	ID          uint32      `yaml:"id"`
	Size        uint32      `yaml:"size"`
	Args        string      `yaml:"args"`
	Name        string      `yaml:"name"`
	CodeBlock   CodeBlock   `yaml:"codeBlock"`
	NamedValues NamedValues `yaml:"namedValues"`
}

// DecodeArgs returns the ordered operand layout for this instruction.
func (ins *Instruction) DecodeArgs() []Arg {
	return DecodeArgs(ins.Args, ins.Size)
}

// GetValue returns the raw value bound to a symbolic name in the given
// operand slot. Not recoverable on a miss: a name has no inherent value.
func (ins *Instruction) GetValue(slot uint32, name string) (int32, error) {
	v, ok := ins.NamedValues.value(slot, name)
	if !ok {
		return 0, &NoValueError{Slot: slot, Name: name}
	}
	return v, nil
}

// GetName returns the symbolic name bound to a raw value in the given
// operand slot. A miss is expected and recoverable: callers fall back to
// displaying the raw value.
func (ins *Instruction) GetName(slot uint32, value int32) (string, bool) {
	return ins.NamedValues.name(slot, value)
}

// InstructionName returns the display name, synthesizing one from the id
// when the record has none. The result is never empty.
func (ins *Instruction) InstructionName() string {
	if ins.Name == "" {
		return fmt.Sprintf("Unknown%d", ins.ID)
	}
	return ins.Name
}

// IsJumpEntry reports whether this instruction starts a jump-table block,
// as opposed to an ordinary block.
func (ins *Instruction) IsJumpEntry() bool {
	return ins.CodeBlock == BeginJumpEntry
}
