package swatcl

// callFrame is a frame within the call stack of the interpreter,
// holding the variable bindings local to one procedure invocation (or,
// for frames[0], the globals). Spec §3 describes this as a linked
// list with a parent back-pointer; a slice-backed stack is equivalent
// since frames never have siblings, and it is how the teacher's own
// swatcl/interpreter.go models the call stack.
type callFrame struct {
	vars map[string]string
}

func newCallFrame() *callFrame {
	return &callFrame{vars: make(map[string]string)}
}

// isGlobalName reports whether name is selected for global scope by
// the casing rule in spec §4.3: an uppercase first character walks to
// the top frame.
func isGlobalName(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}

// frameFor returns the frame that get/set should operate on for name,
// given the current (innermost) frame and the stack it belongs to.
func frameFor(frames []*callFrame, name string) *callFrame {
	if isGlobalName(name) {
		return frames[0]
	}
	return frames[len(frames)-1]
}

// GetVariable resolves name against the appropriate frame (global or
// current, per casing) and returns its value.
func (i *Interpreter) GetVariable(name string) (string, *TclError) {
	if len(i.frames) == 0 {
		return "", NewTclError(ENoFrame, "no call frames on the stack")
	}
	f := frameFor(i.frames, name)
	v, ok := f.vars[name]
	if !ok {
		return "", Errorf(EVariable, "Variable '%s' undefined", name)
	}
	return v, nil
}

// SetVariable assigns name to value in the appropriate frame (global or
// current, per casing), creating the binding if it does not exist.
func (i *Interpreter) SetVariable(name, value string) *TclError {
	if len(i.frames) == 0 {
		return NewTclError(ENoFrame, "no call frames on the stack")
	}
	f := frameFor(i.frames, name)
	f.vars[name] = value
	return nil
}

// pushFrame adds a new, empty call frame on top of the stack.
func (i *Interpreter) pushFrame() {
	i.frames = append(i.frames, newCallFrame())
}

// popFrame removes and discards the top-most call frame. Its variables
// go with it; Go's GC reclaims them once unreferenced.
func (i *Interpreter) popFrame() {
	last := len(i.frames) - 1
	i.frames = i.frames[:last]
}
