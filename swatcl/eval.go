package swatcl

import "strings"

// decodeEscapes processes backslash escapes in an Esc token's text, per
// spec §4.2 step 4: \n, \t, \r map to their control characters;
// \<anything else> maps to the literal second character; a trailing
// lone backslash is preserved verbatim.
func decodeEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		if c != '\\' || idx+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		idx++
		switch s[idx] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[idx])
		}
	}
	return b.String()
}

// Evaluate drives the Tokenizer over text, performing variable and
// command substitution, escape decoding, and word concatenation, then
// dispatches each assembled command through the registry (spec §4.2).
// It is re-entrant: command substitution ('[...]') and procedure bodies
// invoke it recursively, bounded by the shared nesting-level counter.
func (i *Interpreter) Evaluate(text string) (ReturnCode, *TclError) {
	i.setResult("")
	if err := i.enterLevel(); err != nil {
		i.setResult(err.Error())
		return ReturnError, err
	}
	defer i.leaveLevel()

	tok := NewTokenizer(text)
	var argv []string
	prevKind := Eol

	for {
		t, lerr := tok.Next()
		if lerr != nil {
			i.setResult(lerr.Error())
			return ReturnError, lerr
		}

		if t.Kind == Eof {
			code, err := i.finalizeCommand(&argv)
			if err != nil {
				return ReturnError, err
			}
			return code, nil
		}

		word := t.Text
		switch t.Kind {
		case Var:
			v, verr := i.GetVariable(word)
			if verr != nil {
				err := Errorf(EVariable, "No such variable '%s'", word)
				i.setResult(err.Error())
				return ReturnError, err
			}
			word = v

		case Cmd:
			code, cerr := i.Evaluate(word)
			if cerr != nil {
				return ReturnError, cerr
			}
			if code != ReturnOK {
				return code, nil
			}
			word = i.result

		case Esc:
			word = decodeEscapes(word)

		case Str:
			// no processing needed

		case Sep:
			prevKind = Sep
			continue

		case Eol:
			code, err := i.finalizeCommand(&argv)
			if err != nil {
				return ReturnError, err
			}
			if code != ReturnOK {
				return code, nil
			}
			prevKind = Eol
			continue
		}

		if prevKind == Sep || prevKind == Eol {
			argv = append(argv, word)
		} else {
			argv[len(argv)-1] += word
		}
		prevKind = t.Kind
	}
}

// finalizeCommand dispatches the assembled argv (if any) through the
// command registry and clears it for the next command.
func (i *Interpreter) finalizeCommand(argv *[]string) (ReturnCode, *TclError) {
	if len(*argv) == 0 {
		return ReturnOK, nil
	}
	code, err := i.InvokeCommand(*argv)
	*argv = nil
	return code, err
}
