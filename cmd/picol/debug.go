package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"

	"github.com/antirez/picol/swatcl"
)

// dumpState pretty-prints the interpreter's frames and command table to
// stderr, in the spirit of the teacher's evaluator.dumpStacks() but
// using a real pretty-printer (SPEC_FULL §2.3).
func dumpState(interp *swatcl.Interpreter) {
	fmt.Fprintln(os.Stderr, repr.String(interp.Snapshot(), repr.Indent("  ")))
}
