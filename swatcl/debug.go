package swatcl

// DebugState is a snapshot of an Interpreter's internals, exported
// solely so a caller (the CLI's --debug-dump flag) can pretty-print it
// without reaching into unexported fields. It is not used by the
// interpreter itself.
type DebugState struct {
	Level    int
	Frames   []map[string]string
	Commands []string
	Result   string
}

// Snapshot captures the interpreter's current state for diagnostics.
func (i *Interpreter) Snapshot() DebugState {
	frames := make([]map[string]string, len(i.frames))
	for idx, f := range i.frames {
		frames[idx] = f.vars
	}
	names := make([]string, 0, len(i.commands))
	for name := range i.commands {
		names = append(names, name)
	}
	return DebugState{
		Level:    i.level,
		Frames:   frames,
		Commands: names,
		Result:   i.result,
	}
}
