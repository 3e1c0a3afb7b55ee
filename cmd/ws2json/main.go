// Command ws2json extracts translatable dialogue from a WS2 script into a
// flat JSON array, and reimplants an edited array back into the script.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/advhd-tools/ws2kit/bytecode"
	"github.com/advhd-tools/ws2kit/disassembler"
	"github.com/advhd-tools/ws2kit/jsontext"
)

func main() {
	root := &cobra.Command{
		Use:   "ws2json",
		Short: "extract and reimplant WS2 dialogue text as JSON",
	}
	root.AddCommand(extractCmd(), importCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <in.ws2> <out.json>",
		Short: "extract dialogue text to a JSON array",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			entries := jsontext.Extract(raw, disassembler.ModeAuto)
			if entries == nil {
				entries = []jsontext.Entry{}
			}

			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshalling entries: %w", err)
			}
			return os.WriteFile(args[1], out, 0o644)
		},
	}
}

func importCmd() *cobra.Command {
	var encryptFlag string

	cmd := &cobra.Command{
		Use:   "import <orig.ws2> <in.json> <out.ws2>",
		Short: "reimplant an edited JSON array into a copy of the original script",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseEncryptFlag(encryptFlag)
			if err != nil {
				return err
			}

			wsInfo, err := os.Stat(args[0])
			if err != nil {
				return fmt.Errorf("stat %s: %w", args[0], err)
			}
			jsonInfo, err := os.Stat(args[1])
			if err != nil {
				return fmt.Errorf("stat %s: %w", args[1], err)
			}
			if wsInfo.IsDir() != jsonInfo.IsDir() {
				return jsontext.ErrModeMismatch
			}

			log := logrus.New()
			sink := bytecode.WarnSink{Log: log}

			if !wsInfo.IsDir() {
				return importOne(args[0], args[1], args[2], mode, &sink)
			}
			return importDir(args[0], args[1], args[2], mode, &sink)
		},
	}
	cmd.Flags().StringVar(&encryptFlag, "encrypt", "auto", "original obfuscation state: auto|encrypted|decrypted")
	return cmd
}

func importOne(wsPath, jsonPath, outPath string, mode disassembler.Mode, sink bytecode.Sink) error {
	origRaw, err := os.ReadFile(wsPath)
	if err != nil {
		return fmt.Errorf("reading original script: %w", err)
	}

	jsonRaw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("reading JSON entries: %w", err)
	}
	var entries []jsontext.Entry
	if err := json.Unmarshal(jsonRaw, &entries); err != nil {
		return fmt.Errorf("parsing JSON entries: %w", err)
	}

	out, err := jsontext.Import(origRaw, entries, outPath, mode, sink)
	if err != nil {
		return fmt.Errorf("importing: %w", err)
	}
	return os.WriteFile(outPath, out, 0o644)
}

// importDir pairs every *.ws2 file under wsDir with a same-relative-path
// *.json file under jsonDir, writing results under outDir. A missing JSON
// counterpart fails that one file without aborting the batch.
func importDir(wsDir, jsonDir, outDir string, mode disassembler.Mode, sink bytecode.Sink) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating outdir: %w", err)
	}

	failed := 0
	total := 0
	err := filepath.WalkDir(wsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".ws2") {
			return nil
		}
		total++

		rel, err := filepath.Rel(wsDir, path)
		if err != nil {
			return err
		}
		jsonPath := filepath.Join(jsonDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".json")
		outPath := filepath.Join(outDir, rel)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}

		if err := perFile(func() error { return importOne(path, jsonPath, outPath, mode, sink) }); err != nil {
			sink.Line(fmt.Sprintf("%s: %v", path, err))
			failed++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", wsDir, err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, total)
	}
	return nil
}

// perFile runs fn, turning a panic (a malformed script or JSON tripping an
// unexported assumption somewhere in the import path) into an error so one
// bad pairing can't abort the rest of a batch.
func perFile(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func parseEncryptFlag(s string) (disassembler.Mode, error) {
	switch s {
	case "auto":
		return disassembler.ModeAuto, nil
	case "encrypted":
		return disassembler.ModeEncrypted, nil
	case "decrypted":
		return disassembler.ModeDecrypted, nil
	default:
		return disassembler.ModeAuto, fmt.Errorf("--encrypt expects auto, encrypted or decrypted, got %q", s)
	}
}
