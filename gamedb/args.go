package gamedb

import "fmt"

// ArgKind defines the encoding of a single instruction operand.
type ArgKind int

const (
	// ArgInt is a 4-byte signed integer operand.
	ArgInt ArgKind = iota
	// ArgString16 is a fixed 16-byte NUL-padded string operand.
	ArgString16
	// ArgString32 is a fixed 32-byte NUL-padded string operand.
	ArgString32
	// ArgUnknown is untyped trailing operand space not covered by the descriptor.
	ArgUnknown
)

// Arg describes one operand slot: its kind and its encoded width in bytes.
type Arg struct {
	Kind ArgKind
	Size uint32
}

func (a Arg) String() string {
	switch a.Kind {
	case ArgInt:
		return "int"
	case ArgString16:
		return "16s"
	case ArgString32:
		return "32s"
	default:
		return fmt.Sprintf("unknown(%d)", a.Size)
	}
}

// DecodeArgs decodes a compact argument descriptor into the ordered operand
// layout of an instruction whose total encoded size is size bytes (the first
// 4 bytes of which are the opcode id). The scan is byte-wise and lenient:
// 'i' emits an int, "16s" and "32s" emit fixed strings, and any other byte
// is skipped. Descriptor space left untyped relative to the declared size is
// emitted as one trailing unknown operand.
func DecodeArgs(descriptor string, size uint32) []Arg {
	var args []Arg
	var consumed uint32

	desc := []byte(descriptor)
	for len(desc) > 0 {
		switch {
		case desc[0] == 'i':
			args = append(args, Arg{Kind: ArgInt, Size: 4})
			consumed += 4
			desc = desc[1:]
		case len(desc) >= 3 && desc[0] == '1' && desc[1] == '6' && desc[2] == 's':
			args = append(args, Arg{Kind: ArgString16, Size: 16})
			consumed += 16
			desc = desc[3:]
		case len(desc) >= 3 && desc[0] == '3' && desc[1] == '2' && desc[2] == 's':
			args = append(args, Arg{Kind: ArgString32, Size: 32})
			consumed += 32
			desc = desc[3:]
		default:
			desc = desc[1:]
		}
	}

	// The guard order matters: size is unsigned, so size-4 must not underflow.
	if size >= 4 && consumed < size-4 {
		args = append(args, Arg{Kind: ArgUnknown, Size: size - consumed - 4})
	}

	return args
}
