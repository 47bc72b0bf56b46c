package swatcl

// CommandFunc implements a built-in or user-defined command. argv[0] is
// the command name; cmd is the Command record itself, which for
// user-defined procedures carries the ArgList/Body the handler needs
// (spec §3, "Command").
type CommandFunc func(i *Interpreter, argv []string, cmd *Command) (ReturnCode, *TclError)

// Command is a registered name/handler binding. ArgList and Body are
// populated only for procedures created with 'proc'; built-ins leave
// them empty.
type Command struct {
	Name    string
	Fn      CommandFunc
	ArgList string
	Body    string
}

// RegisterCommand adds or replaces the named command. Replacing an
// existing command installs a fresh record under the name, so the old
// handler and any ArgList/Body it carried are dropped, matching spec
// §4.4 ("Redefinition replaces the handler... newest entry wins").
func (i *Interpreter) RegisterCommand(name string, fn CommandFunc) {
	i.commands[name] = &Command{Name: name, Fn: fn}
}

// registerProc registers name as a user-defined procedure with the
// given parameter list and body text.
func (i *Interpreter) registerProc(name, arglist, body string) {
	i.commands[name] = &Command{Name: name, Fn: invokeProcedure, ArgList: arglist, Body: body}
}

// getCommand looks up a command by name.
func (i *Interpreter) getCommand(name string) (*Command, bool) {
	c, ok := i.commands[name]
	return c, ok
}
