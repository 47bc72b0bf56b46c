package swatcl

import "strings"

// commandSet implements 'set varName ?newValue?' (spec §4.6). With one
// argument it reads the variable; with two it assigns and returns the
// new value.
func commandSet(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
	if len(argv) == 2 {
		v, err := i.GetVariable(argv[1])
		if err != nil {
			return ReturnError, NewTclError(EVariable, "Can't read \""+argv[1]+"\": no such variable")
		}
		i.setResult(v)
		return ReturnOK, nil
	}
	if len(argv) == 3 {
		if err := i.SetVariable(argv[1], argv[2]); err != nil {
			return ReturnError, err
		}
		i.setResult(argv[2])
		return ReturnOK, nil
	}
	return ReturnError, arityError(argv[0])
}

// commandExpr implements 'expr arg ?arg ...?' by joining the arguments
// with single spaces (as the tokenizer already split them apart) and
// evaluating the result as an arithmetic/boolean expression (spec
// §4.5, §4.6).
func commandExpr(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
	if len(argv) < 2 {
		return ReturnError, arityError(argv[0])
	}
	text := strings.Join(argv[1:], " ")
	v, err := i.evalExpr(text)
	if err != nil {
		return ReturnError, err
	}
	i.setResult(formatNumber(v))
	return ReturnOK, nil
}

// evalCondition evaluates cond as a boolean-valued expression,
// re-entering through Evaluate with an "expr " prefix so that the
// condition receives the same variable/command substitution pass as
// any other word before the arithmetic evaluator ever sees it (spec
// §4.6, 'if'/'while'). This mirrors the original implementation's
// trick of building "expr " + s and calling picolEval on it rather
// than invoking the expression evaluator directly.
func evalCondition(i *Interpreter, cond string) (bool, ReturnCode, *TclError) {
	code, err := i.Evaluate("expr " + cond)
	if err != nil {
		return false, ReturnError, err
	}
	if code != ReturnOK {
		return false, code, nil
	}
	v, cerr := i.evalExpr(i.Result())
	if cerr != nil {
		return false, ReturnError, cerr
	}
	return v != 0, ReturnOK, nil
}

// commandIf implements 'if cond body {elseif cond body}* ?else body?'
// (spec §4.6). Clauses are walked two words at a time; a zero result
// advances past the clause and expects the next word to be either
// 'elseif' (continue the loop) or 'else' (final, unconditional body).
// Any other shape -- including a dangling 'else' with no body -- is
// reported as the same arity error as a plain wrong-argument-count
// call, matching picol.c's picolCommandIf.
func commandIf(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
	if len(argv) < 3 {
		return ReturnError, arityError(argv[0])
	}

	idx := 1
	for {
		if idx+1 >= len(argv) {
			return ReturnError, arityError(argv[0])
		}
		cond, body := argv[idx], argv[idx+1]

		truth, code, err := evalCondition(i, cond)
		if err != nil {
			return ReturnError, err
		}
		if code != ReturnOK {
			return code, nil
		}
		if truth {
			return i.Evaluate(body)
		}
		idx += 2

		if idx == len(argv) {
			i.setResult("")
			return ReturnOK, nil
		}
		switch argv[idx] {
		case "elseif":
			idx++
			continue
		case "else":
			if idx+1 >= len(argv) {
				return ReturnError, arityError(argv[0])
			}
			return i.Evaluate(argv[idx+1])
		default:
			return ReturnError, arityError(argv[0])
		}
	}
}

// commandWhile implements 'while cond body' (spec §4.6). BREAK stops
// the loop and resolves to OK; CONTINUE skips to the next condition
// check; any other non-OK code (RETURN, ERR) propagates unchanged to
// the caller.
func commandWhile(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
	if len(argv) != 3 {
		return ReturnError, arityError(argv[0])
	}
	for {
		truth, code, err := evalCondition(i, argv[1])
		if err != nil {
			return ReturnError, err
		}
		if code != ReturnOK {
			return code, nil
		}
		if !truth {
			i.setResult("")
			return ReturnOK, nil
		}

		code, err = i.Evaluate(argv[2])
		if err != nil {
			return ReturnError, err
		}
		switch code {
		case ReturnBreak:
			i.setResult("")
			return ReturnOK, nil
		case ReturnContinue:
			continue
		case ReturnOK:
			continue
		default:
			return code, nil
		}
	}
}

// commandBreak implements 'break' (spec §4.6): takes no arguments and
// signals ReturnBreak to the innermost enclosing 'while'.
func commandBreak(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
	if len(argv) != 1 {
		return ReturnError, arityError(argv[0])
	}
	i.setResult("")
	return ReturnBreak, nil
}

// commandContinue implements 'continue' (spec §4.6).
func commandContinue(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
	if len(argv) != 1 {
		return ReturnError, arityError(argv[0])
	}
	i.setResult("")
	return ReturnContinue, nil
}

// commandReturn implements 'return ?value?' (spec §4.6): sets the
// result and signals ReturnReturn so invokeProcedure stops executing
// the procedure body and surfaces the value as the call's result.
func commandReturn(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
	if len(argv) > 2 {
		return ReturnError, arityError(argv[0])
	}
	if len(argv) == 2 {
		i.setResult(argv[1])
	} else {
		i.setResult("")
	}
	return ReturnReturn, nil
}

// commandProc implements 'proc name arglist body' (spec §4.6),
// registering a new user-defined command.
func commandProc(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
	if len(argv) != 4 {
		return ReturnError, arityError(argv[0])
	}
	i.registerProc(argv[1], argv[2], argv[3])
	i.setResult("")
	return ReturnOK, nil
}

// commandPuts implements 'puts ?-nonewline? string' (spec §4.6),
// writing to the interpreter's configured output stream -- stdout by
// default, always bypassing the log file (spec SPEC_FULL §2.2).
func commandPuts(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
	if len(argv) == 2 {
		i.writeOutput(argv[1] + "\n")
		i.setResult("")
		return ReturnOK, nil
	}
	if len(argv) == 3 && argv[1] == "-nonewline" {
		i.writeOutput(argv[2])
		i.setResult("")
		return ReturnOK, nil
	}
	return ReturnError, arityError(argv[0])
}

// invokeProcedure is the CommandFunc bound to every name registered
// with registerProc. It binds actual arguments to formal parameters in
// a fresh call frame, evaluates the body, and unwinds RETURN into OK
// (spec §4.6, "Procedure call"). The frame is released via defer so it
// comes off the stack on every exit path, including an error or a
// non-local BREAK/CONTINUE escaping an unguarded loop -- the teacher's
// own invokeProcedure popped the frame only on the fall-through path,
// leaking frames on error.
func invokeProcedure(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError) {
	params := strings.Fields(cmd.ArgList)
	if len(argv)-1 != len(params) {
		return ReturnError, Errorf(EArity, "Proc '%s' called with wrong arg num", argv[0])
	}

	i.pushFrame()
	defer i.popFrame()

	for idx, p := range params {
		if isGlobalName(p) {
			return ReturnError, Errorf(EStructural, "Procedure parameter '%s' can't be a global (upcase first character)", p)
		}
		if err := i.SetVariable(p, argv[idx+1]); err != nil {
			return ReturnError, err
		}
	}

	code, err := i.Evaluate(cmd.Body)
	if err != nil {
		return ReturnError, err
	}
	if code == ReturnReturn {
		return ReturnOK, nil
	}
	return code, nil
}
