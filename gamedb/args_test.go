package gamedb_test

import (
	"reflect"
	"testing"

	"github.com/Urethramancer/gamescript/gamedb"
)

func TestDecodeArgs(t *testing.T) {
	tests := []struct {
		descriptor string
		size       uint32
		want       []gamedb.Arg
	}{
		// Fully typed layouts, no padding.
		{"ii", 12, []gamedb.Arg{
			{Kind: gamedb.ArgInt, Size: 4},
			{Kind: gamedb.ArgInt, Size: 4},
		}},
		{"16si", 24, []gamedb.Arg{
			{Kind: gamedb.ArgString16, Size: 16},
			{Kind: gamedb.ArgInt, Size: 4},
		}},
		{"32s", 36, []gamedb.Arg{
			{Kind: gamedb.ArgString32, Size: 32},
		}},
		// Header-only instruction.
		{"", 4, nil},
		// Incomplete descriptor: leftover operand space becomes one
		// trailing unknown.
		{"i", 20, []gamedb.Arg{
			{Kind: gamedb.ArgInt, Size: 4},
			{Kind: gamedb.ArgUnknown, Size: 12},
		}},
		{"", 10, []gamedb.Arg{
			{Kind: gamedb.ArgUnknown, Size: 6},
		}},
		// Declared argument space already meets or exceeds the
		// header-adjusted size: no padding.
		{"16s", 16, []gamedb.Arg{
			{Kind: gamedb.ArgString16, Size: 16},
		}},
		{"i", 8, []gamedb.Arg{
			{Kind: gamedb.ArgInt, Size: 4},
		}},
		// Unrecognized descriptor bytes are skipped, not errors.
		{"i,i", 12, []gamedb.Arg{
			{Kind: gamedb.ArgInt, Size: 4},
			{Kind: gamedb.ArgInt, Size: 4},
		}},
		{"x16sz", 20, []gamedb.Arg{
			{Kind: gamedb.ArgString16, Size: 16},
		}},
		// A lone '1' or '3' is descriptor noise without the full token.
		{"1s", 8, []gamedb.Arg{
			{Kind: gamedb.ArgUnknown, Size: 4},
		}},
		// Sizes below the 4-byte header never produce padding.
		{"", 3, nil},
		{"", 0, nil},
	}

	for _, tt := range tests {
		got := gamedb.DecodeArgs(tt.descriptor, tt.size)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DecodeArgs(%q, %d) = %v, want %v", tt.descriptor, tt.size, got, tt.want)
		}
	}
}

func TestDecodeArgsDeterministic(t *testing.T) {
	first := gamedb.DecodeArgs("i16s32si", 80)
	second := gamedb.DecodeArgs("i16s32si", 80)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("decode is not deterministic: %v != %v", first, second)
	}
}
