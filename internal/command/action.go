package command

import "fmt"

// Action is the uniform shape every registered command reduces to.
type Action func(args []Arg) error

// Param0 adapts a zero-argument closure into an Action, rejecting any call
// made with arguments.
func Param0(f func() error) Action {
	return func(args []Arg) error {
		if len(args) != 0 {
			return fmt.Errorf("command: expected 0 arguments, got %d", len(args))
		}
		return f()
	}
}

// Param1 adapts a single-argument closure into an Action, converting the
// sole Arg with conv before calling f.
func Param1[A any](conv Converter[A], f func(A) error) Action {
	return func(args []Arg) error {
		if len(args) != 1 {
			return fmt.Errorf("command: expected 1 argument, got %d", len(args))
		}
		a, err := conv(args[0])
		if err != nil {
			return err
		}
		return f(a)
	}
}

// Param2 adapts a two-argument closure into an Action.
func Param2[A, B any](ca Converter[A], cb Converter[B], f func(A, B) error) Action {
	return func(args []Arg) error {
		if len(args) != 2 {
			return fmt.Errorf("command: expected 2 arguments, got %d", len(args))
		}
		a, err := ca(args[0])
		if err != nil {
			return err
		}
		b, err := cb(args[1])
		if err != nil {
			return err
		}
		return f(a, b)
	}
}

// Variadic adapts a closure taking the raw argument vector, for commands
// whose arity varies at runtime (e.g. write's optional path, or commands
// registered from scripts).
func Variadic(f func([]Arg) error) Action {
	return f
}
