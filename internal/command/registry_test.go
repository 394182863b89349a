package command

import "testing"

func TestRegisterAndExecute(t *testing.T) {
	r := NewRegistry()
	var got string
	err := r.Register(Command{
		Name: "echo",
		Action: Param1(AsString, func(s string) error {
			got = s
			return nil
		}),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Execute(`echo "hello world"`); err != nil {
		t.Fatal(err)
	}
	if got != "hello world" {
		t.Fatalf("got %q, want %q", got, "hello world")
	}
}

func TestRegisterDuplicateNameIsError(t *testing.T) {
	r := NewRegistry()
	cmd := Command{Name: "noop", Action: Param0(func() error { return nil })}
	if err := r.Register(cmd); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(cmd); err == nil {
		t.Fatal("expected an error registering a duplicate name")
	}
}

func TestExecuteUnknownCommandIsError(t *testing.T) {
	r := NewRegistry()
	if err := r.Execute("nonexistent"); err == nil {
		t.Fatal("expected an error executing an unregistered command")
	}
}

func TestListIsSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.Register(Command{Name: name, Action: Param0(func() error { return nil })})
	}
	got := r.List()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParam2WrongArityIsError(t *testing.T) {
	action := Param2(AsString, AsInteger, func(string, int32) error { return nil })
	if err := action([]Arg{String("one")}); err == nil {
		t.Fatal("expected an arity error with only one argument")
	}
}
