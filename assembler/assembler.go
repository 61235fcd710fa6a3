// Package assembler turns text script listings back into binary script
// streams. It is the exact inverse of the disassembler: a listing produced
// from a stream reassembles to the identical bytes.
package assembler

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/Urethramancer/gamescript/gamedb"
)

// Assembler holds the database used to resolve mnemonics and operands.
type Assembler struct {
	db *gamedb.GameDB
}

// New creates an Assembler for one game's instruction set.
func New(db *gamedb.GameDB) *Assembler {
	return &Assembler{db: db}
}

// Assemble parses a listing and emits the binary script stream. Comments
// start with ';' and run to end of line; indentation and blank lines are
// ignored. Each remaining line is one instruction: a mnemonic followed by
// comma-separated operands matching the instruction's declared layout.
func (asm *Assembler) Assemble(src string) ([]byte, error) {
	var out bytes.Buffer

	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if c := strings.IndexRune(line, ';'); c != -1 {
			line = line[:c]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var mnemonic, operandStr string
		if sp := strings.IndexAny(line, " \t"); sp == -1 {
			mnemonic = line
		} else {
			mnemonic = line[:sp]
			operandStr = strings.TrimSpace(line[sp:])
		}

		ins, err := asm.find(mnemonic)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		if err := encodeInstruction(&out, ins, operandStr); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return out.Bytes(), nil
}

// find resolves a mnemonic to its instruction record. The synthetic
// Unknown<id> form produced for nameless records resolves through the id.
func (asm *Assembler) find(mnemonic string) (*gamedb.Instruction, error) {
	ins, err := asm.db.FindByName(mnemonic)
	if err == nil {
		return ins, nil
	}
	if rest, ok := strings.CutPrefix(mnemonic, "Unknown"); ok {
		if id, perr := strconv.ParseUint(rest, 10, 32); perr == nil {
			return asm.db.FindByID(uint32(id))
		}
	}
	return nil, err
}

func encodeInstruction(out *bytes.Buffer, ins *gamedb.Instruction, operandStr string) error {
	args := ins.DecodeArgs()
	operands := splitOperands(operandStr)
	if len(operands) != len(args) {
		return fmt.Errorf("%s takes %d operands, got %d", ins.InstructionName(), len(args), len(operands))
	}

	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], ins.ID)
	out.Write(word[:])

	for slot, arg := range args {
		if err := encodeOperand(out, ins, uint32(slot), arg, operands[slot]); err != nil {
			return fmt.Errorf("%s operand %d: %w", ins.InstructionName(), slot, err)
		}
	}
	return nil
}

func encodeOperand(out *bytes.Buffer, ins *gamedb.Instruction, slot uint32, arg gamedb.Arg, token string) error {
	switch arg.Kind {
	case gamedb.ArgInt:
		v, err := parseInt(ins, slot, token)
		if err != nil {
			return err
		}
		var word [4]byte
		binary.LittleEndian.PutUint32(word[:], uint32(v))
		out.Write(word[:])
	case gamedb.ArgString16, gamedb.ArgString32:
		s, err := strconv.Unquote(token)
		if err != nil {
			return fmt.Errorf("bad string operand %s", token)
		}
		if len(s) > int(arg.Size) {
			return fmt.Errorf("string operand exceeds %d bytes", arg.Size)
		}
		out.WriteString(s)
		out.Write(make([]byte, int(arg.Size)-len(s)))
	default:
		raw, ok := strings.CutPrefix(token, "0x")
		if !ok {
			return fmt.Errorf("expected hex data, got %s", token)
		}
		b, err := hex.DecodeString(raw)
		if err != nil {
			return fmt.Errorf("bad hex data %s", token)
		}
		if len(b) != int(arg.Size) {
			return fmt.Errorf("hex data is %d bytes, layout needs %d", len(b), arg.Size)
		}
		out.Write(b)
	}
	return nil
}

// parseInt accepts a literal integer (decimal or 0x-prefixed) or a symbolic
// name bound for the slot. An unbound name is an error: it has no value to
// fall back on.
func parseInt(ins *gamedb.Instruction, slot uint32, token string) (int32, error) {
	if v, err := strconv.ParseInt(token, 0, 32); err == nil {
		return int32(v), nil
	}
	return ins.GetValue(slot, token)
}

// splitOperands splits on commas outside of quoted strings.
func splitOperands(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var result []string
	quoted := false
	escaped := false
	last := 0
	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quoted:
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			result = append(result, strings.TrimSpace(s[last:i]))
			last = i + 1
		}
	}
	return append(result, strings.TrimSpace(s[last:]))
}
