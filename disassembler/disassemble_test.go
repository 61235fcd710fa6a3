package disassembler_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/Urethramancer/gamescript/disassembler"
	"github.com/Urethramancer/gamescript/gamedb"
)

const testDB = `instructions:
  - id: 0x0
    size: 4
    args: ""
    name: scriptEnd
    codeBlock: End
  - id: 0x12
    size: 12
    args: "ii"
    name: setState
    namedValues:
      - slot: 0
        value: 3
        name: kStateIdle
      - slot: 1
        value: 1
        name: kFlagLoop
  - id: 0x15
    size: 28
    args: "16s"
    name: sprite
  - id: 0x20
    size: 24
    args: "16si"
    name: beginState
    codeBlock: Begin
  - id: 0x30
    size: 8
    args: "i"
    name: ""
  - id: 0x40
    size: 8
    args: "i"
    name: jumpEntry
    codeBlock: BeginJumpEntry
`

func testGameDB(t *testing.T) *gamedb.GameDB {
	t.Helper()
	db, err := gamedb.Parse([]byte(testDB))
	if err != nil {
		t.Fatalf("failed to parse test database: %v", err)
	}
	return db
}

// Script stream builder helpers.

func word(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func fixed(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	return b
}

func script(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestDisassemble(t *testing.T) {
	db := testGameDB(t)

	code := script(
		word(0x20), fixed("main", 16), word(7), // beginState "main", 7
		word(0x12), word(3), word(1), // setState kStateIdle, kFlagLoop
		word(0x15), fixed("char.png", 16), []byte{1, 2, 3, 4, 5, 6, 7, 8}, // sprite + 8 unknown bytes
		word(0x30), word(0xFFFFFFFF), // Unknown48 -1
		word(0x0), // scriptEnd
		word(0x40), word(2), // jumpEntry 2
		word(0x12), word(5), word(0), // setState with unbound values
		word(0x0),
	)

	want := `beginState "main", 7
    setState kStateIdle, kFlagLoop
    sprite "char.png", 0x0102030405060708
    Unknown48 -1
scriptEnd

jumpEntry 2
    setState 5, 0
scriptEnd
`

	got, err := disassembler.Disassemble(db, code)
	if err != nil {
		t.Fatalf("Disassemble failed: %v", err)
	}
	if got != want {
		t.Errorf("listing mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisassembleEmpty(t *testing.T) {
	got, err := disassembler.Disassemble(testGameDB(t), nil)
	if err != nil {
		t.Fatalf("Disassemble failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty listing, got %q", got)
	}
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	_, err := disassembler.Disassemble(testGameDB(t), word(0x99))
	if err == nil {
		t.Fatal("expected an error for an opcode missing from the database")
	}
	var unknown *gamedb.UnknownInstructionError
	if !errors.As(err, &unknown) {
		t.Errorf("expected UnknownInstructionError, got %v", err)
	}
}

func TestDisassembleTruncated(t *testing.T) {
	db := testGameDB(t)

	// Header cut short.
	if _, err := disassembler.Disassemble(db, []byte{0x12, 0x00}); err == nil {
		t.Error("expected an error for a truncated header")
	}

	// Operands cut short.
	code := script(word(0x12), word(3)) // setState with one of two ints
	if _, err := disassembler.Disassemble(db, code); err == nil {
		t.Error("expected an error for truncated operands")
	}
}
