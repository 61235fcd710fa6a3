// Package gamedb resolves opcode ids in proprietary game script bytecode to
// instruction metadata. Each supported game has one declarative YAML database
// describing its opcode set; once loaded, a database is immutable and all
// lookups are pure reads, safe for concurrent use.
package gamedb

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// DBFolder is the default directory holding one database file per game.
const DBFolder = "static_db"

// GameDB holds the opcode set of one game, in declaration order.
type GameDB struct {
	Instructions []*Instruction `yaml:"instructions"`
}

// Load reads the database for the named game from the default folder.
func Load(game string) (*GameDB, error) {
	return LoadFrom(DBFolder, game)
}

// LoadFrom reads dir/<game>.yml. A missing file is a NotFoundError;
// a structurally invalid one surfaces the decoding error unchanged.
func LoadFrom(dir, game string) (*GameDB, error) {
	path := filepath.Join(dir, game+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path}
	}

	db, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

// Parse decodes a database from raw YAML.
func Parse(data []byte) (*GameDB, error) {
	var db GameDB
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// FindByID returns the first instruction declared with the given opcode id.
func (db *GameDB) FindByID(id uint32) (*Instruction, error) {
	for _, ins := range db.Instructions {
		if ins.ID == id {
			return ins, nil
		}
	}
	return nil, &UnknownInstructionError{Ref: fmt.Sprintf("0x%X", id)}
}

// FindByName returns the first instruction declared with the given name.
func (db *GameDB) FindByName(name string) (*Instruction, error) {
	for _, ins := range db.Instructions {
		if ins.Name == name {
			return ins, nil
		}
	}
	return nil, &UnknownInstructionError{Ref: name}
}
