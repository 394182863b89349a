// Package history implements the append-with-truncation undo/redo log: an
// ordered list of HistoryAction groups plus a cursor separating past (undoable
// actions to the left) from future (redoable actions to the right).
//
// Registering a new edit always discards any redoable tail first, matching
// ordinary editor undo semantics: once you type something new after an
// undo, the old redo branch is gone.
package history
