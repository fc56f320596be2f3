package main

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"gigaasm/pkg/asm"
	"gigaasm/pkg/cpu"
	"gigaasm/pkg/utils"
)

func newAsmCmd() *cobra.Command {
	var outPath string
	var debug bool

	cmd := &cobra.Command{
		Use:   "asm sourceFile",
		Short: "Assemble a source file into a binary image",
		Long: `Asm runs both assembler passes over sourceFile and writes the
instruction words little-endian to the output file. The output defaults to
the source path with its extension replaced by .bin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := args[0]
			src, err := utils.ReadSource(inPath)
			if err != nil {
				return fmt.Errorf("failed to read input file %q: %w", inPath, err)
			}

			prog, err := asm.Assemble(src)
			if err != nil {
				return fmt.Errorf("%s:%w", inPath, err)
			}
			if debug {
				pp.Fprintf(cmd.ErrOrStderr(), "Labels: %v\n", prog.Labels)
				pp.Fprintf(cmd.ErrOrStderr(), "Source map: %v\n", prog.SourceMap)
			}

			if outPath == "" {
				outPath = utils.DefaultOutputPath(inPath)
			}
			if err := utils.WriteBinary(outPath, prog.Bytes()); err != nil {
				return fmt.Errorf("failed to write binary file %q: %w", outPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "assembled %d words -> %s\n", len(prog.Words), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output binary file path (default: input with .bin extension)")
	cmd.Flags().BoolVar(&debug, "debug", false, "dump the label table and source map to stderr")
	return cmd
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens sourceFile",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := utils.ReadSource(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input file %q: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			l := asm.NewLexer(src)
			for tok := l.Next(); tok.Kind != asm.EOF; tok = l.Next() {
				fmt.Fprintln(out, tok)
			}
			fmt.Fprintln(out, "EOF")
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "parse sourceFile",
		Short: "Print the statements parsed from a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := utils.ReadSource(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input file %q: %w", args[0], err)
			}

			stmts, err := asm.Parse(src)
			if err != nil {
				return fmt.Errorf("%s:%w", args[0], err)
			}

			out := cmd.OutOrStdout()
			for _, s := range stmts {
				fmt.Fprintln(out, s)
			}
			if debug {
				pp.Fprintln(cmd.ErrOrStderr(), stmts)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "dump the statement values to stderr")
	return cmd
}

func newDisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dis binaryFile",
		Short: "Disassemble a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read binary file %q: %w", args[0], err)
			}

			vm := cpu.NewCPU()
			if err := vm.LoadBytes(image); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			for ; int(vm.PC) < vm.LoadedWords; vm.PC++ {
				inst, err := vm.Fetch()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%3d: %04X  %s\n", vm.PC, inst.Raw, inst)
			}
			return nil
		},
	}
}
