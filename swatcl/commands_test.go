package swatcl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandSetArity(t *testing.T) {
	i := NewInterpreter()
	_, err := i.Evaluate("set")
	assert.Error(t, err)
	assert.Equal(t, "Wrong number of args for set", err.Error())
}

func TestCommandSetReadMissingVariable(t *testing.T) {
	i := NewInterpreter()
	_, err := i.Evaluate("set nope")
	require.Error(t, err)
	assert.Equal(t, `Can't read "nope": no such variable`, err.Error())
}

func TestCommandPutsWritesToConfiguredOutput(t *testing.T) {
	i := NewInterpreter()
	var buf bytes.Buffer
	i.SetOutput(&buf)
	code, err := i.Evaluate("puts hello")
	assert.NoError(t, err)
	assert.Equal(t, ReturnOK, code)
	assert.Equal(t, "hello\n", buf.String())
}

func TestCommandPutsNoNewline(t *testing.T) {
	i := NewInterpreter()
	var buf bytes.Buffer
	i.SetOutput(&buf)
	_, err := i.Evaluate("puts -nonewline hi")
	assert.NoError(t, err)
	assert.Equal(t, "hi", buf.String())
}

func TestCommandPutsArity(t *testing.T) {
	i := NewInterpreter()
	_, err := i.Evaluate("puts a b c")
	assert.Error(t, err)
}

func TestCommandWhileLoopsUntilConditionFalse(t *testing.T) {
	i := NewInterpreter()
	script := `set i 0
set sum 0
while {$i < 5} { set sum [expr $sum+$i]; set i [expr $i+1] }`
	code, err := i.Evaluate(script)
	require.NoError(t, err)
	assert.Equal(t, ReturnOK, code)
	v, err := i.GetVariable("sum")
	require.NoError(t, err)
	assert.Equal(t, "10", v)
}

func TestCommandWhileBreak(t *testing.T) {
	i := NewInterpreter()
	script := `set i 0
while {1} { set i [expr $i+1]; if {$i == 3} { break } }`
	_, err := i.Evaluate(script)
	require.NoError(t, err)
	v, err := i.GetVariable("i")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestCommandWhileContinue(t *testing.T) {
	i := NewInterpreter()
	script := `set i 0
set sum 0
while {$i < 5} {
  set i [expr $i+1]
  if {[expr $i == 2]} { continue }
  set sum [expr $sum+$i]
}`
	_, err := i.Evaluate(script)
	require.NoError(t, err)
	v, err := i.GetVariable("sum")
	require.NoError(t, err)
	assert.Equal(t, "13", v)
}

func TestCommandIfElseifChain(t *testing.T) {
	i := NewInterpreter()
	script := `proc classify {n} {
  if {$n < 0} { return negative } elseif {$n == 0} { return zero } else { return positive }
}
classify -5`
	code, err := i.Evaluate(script)
	require.NoError(t, err)
	assert.Equal(t, ReturnOK, code)
	assert.Equal(t, "negative", i.Result())

	_, err = i.Evaluate("classify 0")
	require.NoError(t, err)
	assert.Equal(t, "zero", i.Result())

	_, err = i.Evaluate("classify 7")
	require.NoError(t, err)
	assert.Equal(t, "positive", i.Result())
}

func TestCommandBreakOutsideLoopArity(t *testing.T) {
	i := NewInterpreter()
	code, err := i.Evaluate("break extra")
	assert.Error(t, err)
	assert.Equal(t, ReturnError, code)
}

func TestCommandBreakLeaksAsBreakCodeAtTopLevel(t *testing.T) {
	i := NewInterpreter()
	code, err := i.Evaluate("break")
	assert.NoError(t, err)
	assert.Equal(t, ReturnBreak, code)
}

func TestProcParameterUppercaseRejected(t *testing.T) {
	i := NewInterpreter()
	_, err := i.Evaluate("proc bad {X} { return $X }")
	require.NoError(t, err)
	_, err = i.Evaluate("bad 1")
	require.Error(t, err)
	assert.Equal(t, "Procedure parameter 'X' can't be a global (upcase first character)", err.Error())
}

func TestProcArityMismatch(t *testing.T) {
	i := NewInterpreter()
	_, err := i.Evaluate("proc add {a b} { expr $a+$b }")
	require.NoError(t, err)
	_, err = i.Evaluate("add 1")
	require.Error(t, err)
	assert.Equal(t, "Proc 'add' called with wrong arg num", err.Error())
}

func TestReturnDefaultsToEmptyResult(t *testing.T) {
	i := NewInterpreter()
	_, err := i.Evaluate("proc noop {} { return }")
	require.NoError(t, err)
	code, err := i.Evaluate("noop")
	require.NoError(t, err)
	assert.Equal(t, ReturnOK, code)
	assert.Equal(t, "", i.Result())
}

func TestCommandRegistrationReplacesHandler(t *testing.T) {
	i := NewInterpreter()
	called := 0
	i.RegisterCommand("mark", func(ip *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
		called = 1
		ip.setResult("first")
		return ReturnOK, nil
	})
	i.RegisterCommand("mark", func(ip *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
		called = 2
		ip.setResult("second")
		return ReturnOK, nil
	})
	code, err := i.Evaluate("mark")
	require.NoError(t, err)
	assert.Equal(t, ReturnOK, code)
	assert.Equal(t, "second", i.Result())
	assert.Equal(t, 2, called)
}

func TestUnknownCommandError(t *testing.T) {
	i := NewInterpreter()
	_, err := i.Evaluate("frobnicate")
	require.Error(t, err)
	assert.Equal(t, "No such command 'frobnicate'", err.Error())
}
