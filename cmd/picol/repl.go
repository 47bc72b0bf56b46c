package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/antirez/picol/swatcl"
)

// runREPL reads lines from stdin, evaluates each through interp, and
// prints "[<code>] <result>" when the result is non-empty (spec §6).
// It loops until EOF on stdin; an evaluation error is reported but
// never ends the session (SPEC_FULL §4, "CLI exit-status nuance").
func runREPL(interp *swatcl.Interpreter, log *logrus.Entry) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("picol> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Println()
			return
		}

		code, evalErr := interp.Evaluate(line)
		log.WithFields(logrus.Fields{"line": line, "code": int(code)}).Debug("line evaluated")
		if debugDump {
			dumpState(interp)
		}

		result := interp.Result()
		if evalErr != nil {
			result = evalErr.Error()
		}
		if result != "" {
			fmt.Printf("[%d] %s\n", code, result)
		}
	}
}
