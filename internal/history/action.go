package history

// ActionKind distinguishes the two primitive edit shapes an Action can hold.
type ActionKind uint8

const (
	// Insertion records that Text was inserted at Start.
	Insertion ActionKind = iota
	// Deletion records that DeletedText (length Len) was removed at Start.
	Deletion
)

// Action is a single primitive text mutation: either a TextInsertion or a
// TextDeletion, tagged by Kind.
type Action struct {
	Kind        ActionKind
	Start       int
	Text        string // set when Kind == Insertion
	DeletedText string // set when Kind == Deletion
	Len         int    // set when Kind == Deletion; len([]rune(DeletedText))
}

// TextInsertion builds an Insertion action.
func TextInsertion(start int, text string) Action {
	return Action{Kind: Insertion, Start: start, Text: text}
}

// TextDeletion builds a Deletion action.
func TextDeletion(start int, deletedText string, length int) Action {
	return Action{Kind: Deletion, Start: start, DeletedText: deletedText, Len: length}
}

// HistoryAction is an ordered sequence of Actions forming one reversible,
// atomic unit of undo/redo (typically: everything one built-in command did
// across all of its selections).
type HistoryAction []Action
