package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gigasm",
		Short: "Assembler and toolkit for the Giga-ALU 4-bit CPU",
		Long: `gigasm assembles Giga-ALU source into 16-bit instruction words and
inspects the intermediate stages: the token stream, the parsed statements and
the disassembly of an assembled binary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newAsmCmd(), newTokensCmd(), newParseCmd(), newDisCmd())
	return rootCmd
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gigasm: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
