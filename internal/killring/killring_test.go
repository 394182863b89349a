package killring

import (
	"reflect"
	"testing"
)

func TestGetEmpty(t *testing.T) {
	r := New()
	if _, ok := r.Get(); ok {
		t.Fatal("Get() on empty ring should fail")
	}
}

func TestGetForCursorCountExtendsLast(t *testing.T) {
	r := New()
	r.Push(Entry{Text: []string{"a", "b"}})

	got, ok := r.GetForCursorCount(4)
	if !ok {
		t.Fatal("expected ok")
	}
	want := []string{"a", "b", "b", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRotateForwardAndBackward(t *testing.T) {
	r := New()
	r.Push(Entry{Text: []string{"1"}})
	r.Push(Entry{Text: []string{"2"}})
	r.Push(Entry{Text: []string{"3"}})

	r.RotateForward()
	got, _ := r.Get()
	if got.Text[0] != "2" {
		t.Fatalf("after RotateForward newest = %v, want 2", got.Text)
	}

	r.RotateBackward()
	got, _ = r.Get()
	if got.Text[0] != "3" {
		t.Fatalf("after RotateBackward newest = %v, want 3", got.Text)
	}
}
