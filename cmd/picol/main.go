// Command picol is an interactive shell and file-mode runner for the
// swatcl command interpreter (SPEC_FULL §2.3, §5).
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/antirez/picol/swatcl"
)

const maxFileSize = 16 * 1024 // spec §6: file mode caps input at 16 KiB

var (
	maxRecursion int
	verbose      bool
	debugDump    bool
)

var rootCmd = &cobra.Command{
	Use:          "picol [file]",
	Short:        "picol",
	Long:         "picol is an embeddable Tcl-like command interpreter: a REPL with no arguments, or a one-shot file evaluator given a path.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxRecursion, "max-recursion", swatcl.DefaultMaxRecursionLevel, "override the nesting-depth bound shared by eval and expr")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log each evaluated line and its return code at debug level")
	rootCmd.PersistentFlags().BoolVar(&debugDump, "debug-dump", false, "pretty-print interpreter state (frames, commands) to stderr after each top-level evaluation")
}

func run(cmd *cobra.Command, args []string) error {
	log, closer, err := newSessionLogger(verbose)
	if err != nil {
		return err
	}
	defer closer()

	interp := swatcl.NewInterpreter()
	interp.SetMaxRecursionLevel(maxRecursion)

	if len(args) == 1 {
		return runFile(interp, args[0], log)
	}
	runREPL(interp, log)
	return nil
}

func runFile(interp *swatcl.Interpreter, path string, log *logrus.Entry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(data) > maxFileSize {
		data = data[:maxFileSize]
	}

	code, evalErr := interp.Evaluate(string(data))
	log.WithField("code", int(code)).Debug("file evaluated")
	if debugDump {
		dumpState(interp)
	}
	if evalErr != nil {
		fmt.Fprintln(os.Stderr, evalErr.Error())
	}
	// File mode always exits 0 regardless of outcome (SPEC_FULL §4,
	// "CLI exit-status nuance"; spec §6).
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
