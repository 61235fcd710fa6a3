package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Urethramancer/gamescript/assembler"
	"github.com/Urethramancer/gamescript/disassembler"
	"github.com/Urethramancer/gamescript/gamedb"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func main() {
	var (
		dbDir   string
		verbose bool
		output  string
		dump    bool
	)

	rootCmd := &cobra.Command{
		Use:   "gamescript",
		Short: "Disassemble and reassemble proprietary game script bytecode",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&dbDir, "db", gamedb.DBFolder, "game database directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	viewCmd := &cobra.Command{
		Use:   "view <game> <script>",
		Short: "Disassemble a binary script to a text listing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadDB(dbDir, args[0])
			if err != nil {
				return err
			}

			code, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			text, err := disassembler.Disassemble(db, code)
			if err != nil {
				return fmt.Errorf("disassembly failed: %w", err)
			}

			if output == "" {
				fmt.Print(text)
				return nil
			}
			return os.WriteFile(output, []byte(text), 0644)
		},
	}
	viewCmd.Flags().StringVarP(&output, "output", "o", "", "write the listing to a file instead of stdout")

	rebuildCmd := &cobra.Command{
		Use:   "rebuild <game> <listing>",
		Short: "Reassemble a text listing into a binary script",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadDB(dbDir, args[0])
			if err != nil {
				return err
			}

			src, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			code, err := assembler.New(db).Assemble(string(src))
			if err != nil {
				return fmt.Errorf("assembly failed: %w", err)
			}

			out := output
			if out == "" {
				out = strings.TrimSuffix(args[1], ".txt") + ".bin"
			}
			slog.Debug("writing script", "file", out, "bytes", len(code))
			return os.WriteFile(out, code, 0644)
		},
	}
	rebuildCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: listing name with .bin)")

	infoCmd := &cobra.Command{
		Use:   "info <game>",
		Short: "Summarize a game's instruction database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadDB(dbDir, args[0])
			if err != nil {
				return err
			}

			if dump {
				spew.Dump(db)
				return nil
			}

			fmt.Printf("%s: %d instructions\n", args[0], len(db.Instructions))
			for _, ins := range db.Instructions {
				layout := make([]string, 0, 4)
				for _, a := range ins.DecodeArgs() {
					layout = append(layout, a.String())
				}
				fmt.Printf("  0x%04X %-24s size %3d  [%s]\n", ins.ID, ins.InstructionName(), ins.Size, strings.Join(layout, " "))
			}
			return nil
		},
	}
	infoCmd.Flags().BoolVar(&dump, "dump", false, "dump the full decoded database structure")

	rootCmd.AddCommand(viewCmd, rebuildCmd, infoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadDB(dir, game string) (*gamedb.GameDB, error) {
	db, err := gamedb.LoadFrom(dir, game)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded game database", "game", game, "instructions", len(db.Instructions))
	return db, nil
}
