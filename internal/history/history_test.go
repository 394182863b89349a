package history

import "testing"

func TestRegisterEditTruncatesTail(t *testing.T) {
	h := New()
	h.RegisterEdit(HistoryAction{TextInsertion(0, "a")})
	h.RegisterEdit(HistoryAction{TextInsertion(1, "b")})

	if _, ok := h.Back(); !ok {
		t.Fatal("Back should succeed")
	}
	// cursor now 1; registering here must discard the "b" entry.
	h.RegisterEdit(HistoryAction{TextInsertion(1, "c")})

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if _, ok := h.Forward(); ok {
		t.Fatal("Forward should fail: redo tail was discarded")
	}
}

func TestBackForwardRoundTrip(t *testing.T) {
	h := New()
	a := HistoryAction{TextInsertion(0, "abc")}
	h.RegisterEdit(a)

	got, ok := h.Back()
	if !ok || len(got) != 1 || got[0].Text != "abc" {
		t.Fatalf("Back() = %+v, %v", got, ok)
	}
	if h.Cursor() != 0 {
		t.Fatalf("Cursor = %d, want 0", h.Cursor())
	}

	got2, ok := h.Forward()
	if !ok || len(got2) != 1 || got2[0].Text != "abc" {
		t.Fatalf("Forward() = %+v, %v", got2, ok)
	}
	if h.Cursor() != 1 {
		t.Fatalf("Cursor = %d, want 1", h.Cursor())
	}
}

func TestBackAtZeroReturnsFalse(t *testing.T) {
	h := New()
	if _, ok := h.Back(); ok {
		t.Fatal("Back() on empty history should fail")
	}
}

func TestForwardAtEndReturnsFalse(t *testing.T) {
	h := New()
	h.RegisterEdit(HistoryAction{TextInsertion(0, "x")})
	if _, ok := h.Forward(); ok {
		t.Fatal("Forward() at tail should fail")
	}
}
