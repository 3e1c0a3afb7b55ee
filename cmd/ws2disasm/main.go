// Command ws2disasm disassembles WS2 bytecode to text, reassembles text
// back to bytecode, and runs the raw byte-rotate codec standalone.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/advhd-tools/ws2kit/assembler"
	"github.com/advhd-tools/ws2kit/bytecode"
	"github.com/advhd-tools/ws2kit/disassembler"
)

func main() {
	log := logrus.New()
	sink := bytecode.WarnSink{Log: log}

	app := cli.NewApp()
	app.Name = "ws2disasm"
	app.Usage = "disassemble, reassemble and codec WS2 bytecode scripts"
	app.UsageText = "ws2disasm <input> [outdir]\n   ws2disasm --assemble <in.asm.txt> <out.ws2> [--no-encrypt]\n   ws2disasm --tool <encrypt|decrypt> <input> <outdir>"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "assemble", Usage: "assemble disassembly text back into bytecode"},
		cli.BoolFlag{Name: "no-encrypt", Usage: "write the assembled output without re-applying the byte-rotate codec"},
		cli.StringFlag{Name: "tool", Usage: "run the standalone codec: encrypt|decrypt"},
	}
	app.Action = func(c *cli.Context) error {
		switch {
		case c.Bool("assemble"):
			return runAssemble(c, &sink)
		case c.String("tool") != "":
			return runTool(c, &sink)
		default:
			return runDisassemble(c, &sink)
		}
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDisassemble(c *cli.Context, sink bytecode.Sink) error {
	if c.NArg() < 1 {
		return cli.NewExitError("usage: ws2disasm <input> [outdir]", 1)
	}
	input := c.Args().Get(0)
	outdir := c.Args().Get(1)

	files, err := findWS2Files(input)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	failed := 0
	for _, f := range files {
		if err := perFile(func() error { return disassembleOne(f, outdir) }); err != nil {
			sink.Line(fmt.Sprintf("%s: %v", f, err))
			failed++
		}
	}
	if failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d files failed", failed, len(files)), 1)
	}
	return nil
}

// perFile runs fn, turning a panic (a malformed input tripping an
// unexported slice-bounds assumption somewhere in the decode path) into an
// error so one bad file can't abort the rest of a batch.
func perFile(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func disassembleOne(path, outdir string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	res := disassembler.Disassemble(raw, disassembler.ModeAuto)
	lines := disassembler.RenderText(res)

	outPath := path + ".asm.txt"
	if outdir != "" {
		outPath = filepath.Join(outdir, filepath.Base(path)+".asm.txt")
		if err := os.MkdirAll(outdir, 0o755); err != nil {
			return fmt.Errorf("creating outdir: %w", err)
		}
	}
	return os.WriteFile(outPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}

func runAssemble(c *cli.Context, sink bytecode.Sink) error {
	if c.NArg() < 2 {
		return cli.NewExitError("usage: ws2disasm --assemble <in.asm.txt> <out.ws2> [--no-encrypt]", 1)
	}
	inPath := c.Args().Get(0)
	outPath := c.Args().Get(1)

	text, err := os.ReadFile(inPath)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("reading source: %v", err), 1)
	}

	code, err := assembler.Assemble(string(text), sink)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("assembling: %v", err), 1)
	}

	if !c.Bool("no-encrypt") {
		code = bytecode.Encode(code)
	}
	if err := os.WriteFile(outPath, code, 0o644); err != nil {
		return cli.NewExitError(fmt.Sprintf("writing output: %v", err), 1)
	}
	return nil
}

func runTool(c *cli.Context, sink bytecode.Sink) error {
	mode := c.String("tool")
	if mode != "encrypt" && mode != "decrypt" {
		return cli.NewExitError("--tool expects encrypt or decrypt", 1)
	}
	if c.NArg() < 2 {
		return cli.NewExitError("usage: ws2disasm --tool <encrypt|decrypt> <input> <outdir>", 1)
	}
	input := c.Args().Get(0)
	outdir := c.Args().Get(1)

	files, err := findWS2Files(input)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return cli.NewExitError(fmt.Sprintf("creating outdir: %v", err), 1)
	}

	failed := 0
	for _, f := range files {
		err := perFile(func() error {
			raw, err := os.ReadFile(f)
			if err != nil {
				return err
			}
			var out []byte
			if mode == "encrypt" {
				out = bytecode.Encode(raw)
			} else {
				out = bytecode.Decode(raw)
			}
			dst := filepath.Join(outdir, filepath.Base(f))
			return os.WriteFile(dst, out, 0o644)
		})
		if err != nil {
			sink.Line(fmt.Sprintf("%s: %v", f, err))
			failed++
		}
	}
	if failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d files failed", failed, len(files)), 1)
	}
	return nil
}

// findWS2Files resolves input to a list of .ws2 files: itself if it's a
// file, or every .ws2 file found recursively (case-insensitive) if it's a
// directory.
func findWS2Files(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", input, err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	var files []string
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".ws2") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", input, err)
	}
	return files, nil
}
