package swatcl

import (
	"io"
	"os"
)

// ReturnCode is the out-of-band signal accompanying every evaluation
// (spec §3, §4.2). It travels alongside the interpreter's result
// string rather than as part of the error value, since BREAK/CONTINUE/
// RETURN are routine control flow, not failures.
type ReturnCode int

const (
	ReturnOK ReturnCode = iota
	ReturnError
	ReturnReturn
	ReturnBreak
	ReturnContinue
)

// DefaultMaxRecursionLevel is the depth bound shared by eval and expr
// recursion (spec §3, MAX_RECURSION_LEVEL). Each Interpreter starts
// from this value but holds its own bound in a field, so the CLI's
// --max-recursion flag can override it for testing without reaching
// into interpreter internals.
const DefaultMaxRecursionLevel = 128

// Interpreter holds all state for one isolated instance of the
// language: the call-frame stack, the command table, the current
// nesting level, and the single result register (spec §3,
// "Interpreter State"). An Interpreter must never be used from more
// than one goroutine at a time (spec §5).
type Interpreter struct {
	level        int
	maxRecursion int
	frames       []*callFrame
	commands     map[string]*Command
	result       string
	out          io.Writer
}

// NewInterpreter constructs a ready-to-use interpreter with the core
// command set registered, a single (global) call frame, and 'puts'
// writing to os.Stdout. Use SetOutput to redirect it, e.g. in tests.
func NewInterpreter() *Interpreter {
	i := &Interpreter{
		maxRecursion: DefaultMaxRecursionLevel,
		frames:       []*callFrame{newCallFrame()},
		commands:     make(map[string]*Command),
		out:          os.Stdout,
	}
	i.registerCoreCommands()
	return i
}

// SetOutput redirects where 'puts' writes (spec SPEC_FULL §2.2: this
// is always separate from the diagnostic log file).
func (i *Interpreter) SetOutput(w io.Writer) {
	i.out = w
}

// writeOutput writes s to the configured output stream, silently
// discarding it if none was ever set (should not happen outside of a
// zero-value Interpreter{}, which nothing in this package constructs).
func (i *Interpreter) writeOutput(s string) {
	if i.out != nil {
		io.WriteString(i.out, s)
	}
}

// SetMaxRecursionLevel overrides the nesting bound (spec §3); intended
// for the CLI's --max-recursion flag and for tests that exercise the
// nesting-limit property (spec §8) without constructing 128 levels of
// input.
func (i *Interpreter) SetMaxRecursionLevel(n int) {
	i.maxRecursion = n
}

// Result returns the interpreter's current result register.
func (i *Interpreter) Result() string {
	return i.result
}

// setResult updates the result register. Every command sets this
// before returning (spec §3).
func (i *Interpreter) setResult(s string) {
	i.result = s
}

// enterLevel bumps the nesting counter, returning an error if doing so
// would exceed the configured bound. Callers must invoke leaveLevel on
// every exit path, including early returns -- see eval.go and expr.go,
// which always pair it with a defer.
func (i *Interpreter) enterLevel() *TclError {
	i.level++
	if i.level > i.maxRecursion {
		i.level--
		return NewTclError(ENesting, "Nesting too deep")
	}
	return nil
}

// leaveLevel decrements the nesting counter. Call it only after a
// successful enterLevel: a failed enterLevel has already backed out its
// own increment, so a further leaveLevel would unbalance the counter.
// eval.go and expr.go only call leaveLevel on the success path of
// enterLevel, by construction.
func (i *Interpreter) leaveLevel() {
	i.level--
}

// InvokeCommand looks up argv[0] in the command table and invokes it.
// The command leaves its output in the result register; on failure the
// error's message is placed there too, so Result() and the returned
// error's text agree (this mirrors the C original's single result
// register with a convenience Go return).
func (i *Interpreter) InvokeCommand(argv []string) (ReturnCode, *TclError) {
	if len(argv) == 0 {
		return ReturnError, NewTclError(EStructural, "InvokeCommand called without arguments")
	}
	cmd, ok := i.getCommand(argv[0])
	if !ok {
		err := Errorf(ECommand, "No such command '%s'", argv[0])
		i.setResult(err.Error())
		return ReturnError, err
	}
	code, err := cmd.Fn(i, argv, cmd)
	if err != nil {
		i.setResult(err.Error())
		return ReturnError, err
	}
	return code, nil
}

// registerCoreCommands installs the built-in command set (spec §4.6).
func (i *Interpreter) registerCoreCommands() {
	i.RegisterCommand("set", commandSet)
	i.RegisterCommand("expr", commandExpr)
	i.RegisterCommand("if", commandIf)
	i.RegisterCommand("while", commandWhile)
	i.RegisterCommand("break", commandBreak)
	i.RegisterCommand("continue", commandContinue)
	i.RegisterCommand("proc", commandProc)
	i.RegisterCommand("return", commandReturn)
	i.RegisterCommand("puts", commandPuts)
}
