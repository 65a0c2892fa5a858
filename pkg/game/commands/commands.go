package commands

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Interp is the console-facing command interpreter. It satisfies the
// console's Evaluator interface: expression-like commands (those that
// produce a result representation) go through Eval, statements through
// Exec.
type Interp struct {
	cvars    *Registry
	evalable mapset.Set[string]
	print    func(s string)
}

// New creates an interpreter over the given cvar registry. Output goes
// nowhere until SetPrinter is called.
func New(cvars *Registry) *Interp {
	evalable := mapset.New[string]()
	evalable.Put("get")
	evalable.Put("echo")

	return &Interp{
		cvars:    cvars,
		evalable: evalable,
		print:    func(string) {},
	}
}

// SetPrinter directs statement output (help, list, ...) to fn.
func (i *Interp) SetPrinter(fn func(s string)) {
	i.print = fn
}

// Cvars returns the backing registry.
func (i *Interp) Cvars() *Registry { return i.cvars }

// CanEval reports whether cmd produces a result representation.
func (i *Interp) CanEval(cmd string) bool {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return false
	}
	return i.evalable.Has(strings.ToLower(fields[0]))
}

// Eval runs a result-producing command and returns its representation.
func (i *Interp) Eval(cmd string) (string, error) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return "", fmt.Errorf("not evaluable: %q", cmd)
	}

	switch strings.ToLower(fields[0]) {
	case "get":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: get <cvar>")
		}
		name := strings.ToLower(fields[1])
		value, ok := i.cvars.Get(name)
		if !ok {
			return "", fmt.Errorf("unknown cvar: %s", name)
		}
		return fmt.Sprintf("%s = %q", name, value), nil
	case "echo":
		return strings.Join(fields[1:], " "), nil
	}
	return "", fmt.Errorf("not evaluable: %q", cmd)
}

// Exec runs a statement command. An empty command is a no-op.
func (i *Interp) Exec(cmd string) error {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return nil
	}

	switch command := strings.ToLower(fields[0]); command {
	case "set":
		if len(fields) < 3 {
			return fmt.Errorf("usage: set <cvar> <value>")
		}
		name := strings.ToLower(fields[1])
		value := strings.Join(fields[2:], " ")
		i.cvars.Set(name, value)
		i.print(fmt.Sprintf("%s = %q\n", name, value))
		return nil

	case "list":
		names := i.cvars.Names()
		i.print(fmt.Sprintf("cvars (%d):\n", len(names)))
		for _, name := range names {
			value, _ := i.cvars.Get(name)
			i.print(fmt.Sprintf("  %s = %q\n", name, value))
		}
		return nil

	case "help":
		i.print("commands:\n")
		i.print("  get <cvar>           - read a configuration variable\n")
		i.print("  set <cvar> <value>   - write a configuration variable\n")
		i.print("  list                 - list all cvars\n")
		i.print("  echo <text>          - evaluate to <text>\n")
		i.print("  clear                - clear console output\n")
		i.print("  help                 - show this help\n")
		return nil

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", command)
	}
}
