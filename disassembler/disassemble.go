// Package disassembler renders binary game script streams as text listings.
// It owns no instruction knowledge of its own: opcode ids, operand layouts
// and symbolic operand names all come from the game database.
package disassembler

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/Urethramancer/gamescript/gamedb"
)

// indentStep is the indentation emitted per open block level.
const indentStep = "    "

// Disassemble walks a script stream and renders one instruction per line.
// Block roles drive nesting: Begin and BeginJumpEntry indent the lines that
// follow, End closes the innermost block, and jump-table entries are set off
// by a blank line. Unknown opcodes and truncated streams are errors carrying
// the byte offset.
func Disassemble(db *gamedb.GameDB, code []byte) (string, error) {
	var out strings.Builder
	indent := 0

	for pc := 0; pc < len(code); {
		if len(code)-pc < 4 {
			return "", fmt.Errorf("truncated instruction header at offset 0x%X", pc)
		}
		id := binary.LittleEndian.Uint32(code[pc:])
		ins, err := db.FindByID(id)
		if err != nil {
			return "", fmt.Errorf("offset 0x%X: %w", pc, err)
		}

		args := ins.DecodeArgs()
		size := 0
		for _, a := range args {
			size += int(a.Size)
		}
		if pc+4+size > len(code) {
			return "", fmt.Errorf("truncated operands for %s at offset 0x%X", ins.InstructionName(), pc)
		}

		operands := renderOperands(ins, args, code[pc+4:pc+4+size])

		if ins.CodeBlock == gamedb.End && indent > 0 {
			indent--
		}
		if ins.IsJumpEntry() && out.Len() > 0 {
			out.WriteByte('\n')
		}

		pad := strings.Repeat(indentStep, indent)
		if len(operands) > 0 {
			fmt.Fprintf(&out, "%s%s %s\n", pad, ins.InstructionName(), strings.Join(operands, ", "))
		} else {
			fmt.Fprintf(&out, "%s%s\n", pad, ins.InstructionName())
		}

		if ins.CodeBlock == gamedb.Begin || ins.CodeBlock == gamedb.BeginJumpEntry {
			indent++
		}

		pc += 4 + size
	}

	return out.String(), nil
}

// renderOperands formats each operand of one instruction. Integer operands
// show their symbolic name when the database binds one, strings are quoted
// with trailing NULs trimmed, and untyped trailing bytes render as hex.
func renderOperands(ins *gamedb.Instruction, args []gamedb.Arg, data []byte) []string {
	operands := make([]string, 0, len(args))
	for slot, arg := range args {
		chunk := data[:arg.Size]
		data = data[arg.Size:]

		switch arg.Kind {
		case gamedb.ArgInt:
			v := int32(binary.LittleEndian.Uint32(chunk))
			if name, ok := ins.GetName(uint32(slot), v); ok {
				operands = append(operands, name)
			} else {
				operands = append(operands, strconv.FormatInt(int64(v), 10))
			}
		case gamedb.ArgString16, gamedb.ArgString32:
			operands = append(operands, strconv.Quote(trimString(chunk)))
		default:
			operands = append(operands, "0x"+hex.EncodeToString(chunk))
		}
	}
	return operands
}

// trimString cuts a fixed-width string field at its first NUL.
func trimString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
