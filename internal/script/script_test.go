package script

import (
	"strings"
	"testing"

	"github.com/kaku-editor/kaku/internal/engine"
)

func TestRegisterCommandAndExec(t *testing.T) {
	e := engine.New()
	s := New(e)
	defer s.Close()

	if err := s.LoadString(`
		calls = 0
		Editor.register_command("greet", "says hi", function(name)
			calls = calls + 1
		end)
		Editor.exec("greet bob")
	`, "test"); err != nil {
		t.Fatal(err)
	}

	if got := s.L.GetGlobal("calls").String(); got != "1" {
		t.Fatalf("calls = %s, want 1", got)
	}
}

func TestRegisterDuplicateCommandIsError(t *testing.T) {
	e := engine.New()
	s := New(e)
	defer s.Close()

	err := s.LoadString(`
		Editor.register_command("quit", "dup", function() end)
	`, "test")
	if err == nil {
		t.Fatal("expected an error registering a name that already exists")
	}
}

func TestBindDefaultsToNormalMode(t *testing.T) {
	e := engine.New()
	s := New(e)
	defer s.Close()

	if err := s.LoadString(`Editor.bind("g g", "goto-start")`, "test"); err != nil {
		t.Fatal(err)
	}
}

func TestBindWithExplicitMode(t *testing.T) {
	e := engine.New()
	s := New(e)
	defer s.Close()

	if err := s.LoadString(`Editor.bind("g g", "insert", "insert hi")`, "test"); err != nil {
		t.Fatal(err)
	}
}

func TestCreateBufferAndView(t *testing.T) {
	e := engine.New()
	s := New(e)
	defer s.Close()

	if err := s.LoadString(`
		buf = Editor.create_buffer()
		view = Editor.create_view_for_buffer(buf)
		Editor.set_active_view(view)
		active = Editor.get_active_view()
	`, "test"); err != nil {
		t.Fatal(err)
	}

	if len(e.Views) != 2 {
		t.Fatalf("len(e.Views) = %d, want 2 (scratch + new)", len(e.Views))
	}
}

func TestViewSelectionsRoundTrip(t *testing.T) {
	e := engine.New()
	s := New(e)
	defer s.Close()

	if err := s.LoadString(`
		view = Editor.get_active_view()
		view:add_selection({head = 3, anchor = 0})
		sels = view:get_selections()
		count = #sels
	`, "test"); err != nil {
		t.Fatal(err)
	}

	if got := s.L.GetGlobal("count").String(); got != "2" {
		t.Fatalf("count = %s, want 2", got)
	}

	v := e.ActiveViewPtr()
	if len(v.Selections) != 2 {
		t.Fatalf("len(v.Selections) = %d, want 2", len(v.Selections))
	}
	added := v.Selections[1]
	if added.Start != 0 || added.End != 3 {
		t.Fatalf("added selection = %+v, want {0,3}", added)
	}
}

func TestExecReturnsStructuredCommandsList(t *testing.T) {
	e := engine.New()
	s := New(e)
	defer s.Close()

	if err := s.LoadString(`
		result = Editor.exec("commands")
		result_count = #result
	`, "test"); err != nil {
		t.Fatal(err)
	}

	buf := e.BufferFor(e.ActiveViewPtr())
	if !strings.Contains(buf.Name, "commands") {
		t.Fatalf("active buffer name = %q, want the *commands* transient buffer", buf.Name)
	}
	if got := s.L.GetGlobal("result_count").String(); got == "0" || got == "" {
		t.Fatalf("result_count = %q, want a positive count", got)
	}
}
