package gamedb

import "fmt"

// CodeBlock marks an instruction's role in the script's block structure.
// The disassembler uses it for nesting; it has no further meaning here.
type CodeBlock int

const (
	// NoBlock is the zero value: the instruction has no structural role.
	NoBlock CodeBlock = iota
	// Begin opens a block.
	Begin
	// BeginJumpEntry opens a block that is also a jump-table entry point.
	BeginJumpEntry
	// End closes the current block.
	End
)

func (c CodeBlock) String() string {
	switch c {
	case NoBlock:
		return "NoBlock"
	case Begin:
		return "Begin"
	case BeginJumpEntry:
		return "BeginJumpEntry"
	case End:
		return "End"
	default:
		return fmt.Sprintf("CodeBlock(%d)", int(c))
	}
}

// UnmarshalYAML decodes the codeBlock tag from its wire spelling.
func (c *CodeBlock) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	switch s {
	case "NoBlock", "":
		*c = NoBlock
	case "Begin":
		*c = Begin
	case "BeginJumpEntry":
		*c = BeginJumpEntry
	case "End":
		*c = End
	default:
		return fmt.Errorf("unknown code block tag %q", s)
	}
	return nil
}

// MarshalYAML encodes the tag back in its wire spelling.
func (c CodeBlock) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
