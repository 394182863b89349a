package script

import (
	"fmt"

	"github.com/kaku-editor/kaku/internal/id"
	"github.com/kaku-editor/kaku/internal/selection"
	lua "github.com/yuin/gopher-lua"
)

const (
	bufferRefMeta = "kaku.BufferRef"
	viewRefMeta   = "kaku.ViewRef"
)

// registerRefTypes installs the BufferRef/ViewRef metatables and their
// view-side methods (get_selections, set_selections, add_selection) on L.
func (s *Script) registerRefTypes() {
	L := s.L

	bufMeta := L.NewTypeMetatable(bufferRefMeta)
	L.SetField(bufMeta, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"id": s.bufferRefID,
	}))

	viewMeta := L.NewTypeMetatable(viewRefMeta)
	L.SetField(viewMeta, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"id":             s.viewRefID,
		"get_selections": s.viewGetSelections,
		"set_selections": s.viewSetSelections,
		"add_selection":  s.viewAddSelection,
	}))
}

// newBufferRef wraps a BufferID as Lua userdata carrying the bufferRefMeta
// metatable.
func (s *Script) newBufferRef(bufID id.BufferID) *lua.LUserData {
	ud := s.L.NewUserData()
	ud.Value = bufID
	ud.Metatable = s.L.GetTypeMetatable(bufferRefMeta)
	return ud
}

// newViewRef wraps a ViewID as Lua userdata carrying the viewRefMeta
// metatable.
func (s *Script) newViewRef(viewID id.ViewID) *lua.LUserData {
	ud := s.L.NewUserData()
	ud.Value = viewID
	ud.Metatable = s.L.GetTypeMetatable(viewRefMeta)
	return ud
}

func checkBufferRef(L *lua.LState, n int) (id.BufferID, error) {
	ud, ok := L.CheckUserData(n).Value.(id.BufferID)
	if !ok {
		return 0, fmt.Errorf("script: argument %d is not a BufferRef", n)
	}
	return ud, nil
}

func checkViewRef(L *lua.LState, n int) (id.ViewID, error) {
	ud, ok := L.CheckUserData(n).Value.(id.ViewID)
	if !ok {
		return 0, fmt.Errorf("script: argument %d is not a ViewRef", n)
	}
	return ud, nil
}

func (s *Script) bufferRefID(L *lua.LState) int {
	bufID, err := checkBufferRef(L, 1)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	L.Push(lua.LNumber(bufID))
	return 1
}

func (s *Script) viewRefID(L *lua.LState) int {
	viewID, err := checkViewRef(L, 1)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	L.Push(lua.LNumber(viewID))
	return 1
}

// viewGetSelections returns the view's selection list as an array of
// {start, end, direction} tables, direction being "forward" or "back".
func (s *Script) viewGetSelections(L *lua.LState) int {
	viewID, err := checkViewRef(L, 1)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	v, ok := s.engine.Views[viewID]
	if !ok {
		L.RaiseError("script: view %d no longer exists", viewID)
		return 0
	}

	out := L.NewTable()
	for i, sel := range v.Selections {
		t := L.NewTable()
		t.RawSetString("start", lua.LNumber(sel.Start))
		t.RawSetString("end", lua.LNumber(sel.End))
		dir := "forward"
		if sel.Dir == selection.Back {
			dir = "back"
		}
		t.RawSetString("direction", lua.LString(dir))
		out.RawSetInt(i+1, t)
	}
	L.Push(out)
	return 1
}

// viewSetSelections replaces the view's selection list wholesale from a Lua
// array of selection tables, each accepting either {start,end,direction} or
// {head,anchor}.
func (s *Script) viewSetSelections(L *lua.LState) int {
	viewID, err := checkViewRef(L, 1)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	list := L.CheckTable(2)
	v, ok := s.engine.Views[viewID]
	if !ok {
		L.RaiseError("script: view %d no longer exists", viewID)
		return 0
	}

	var sels []selection.Selection
	list.ForEach(func(_, lv lua.LValue) {
		t, isTable := lv.(*lua.LTable)
		if !isTable {
			return
		}
		sels = append(sels, s.parseSelectionTable(viewID, t))
	})
	if len(sels) == 0 {
		L.RaiseError("script: set_selections requires at least one selection")
		return 0
	}
	v.Selections = sels
	return 0
}

// viewAddSelection appends one selection to the view's selection list.
func (s *Script) viewAddSelection(L *lua.LState) int {
	viewID, err := checkViewRef(L, 1)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	t := L.CheckTable(2)
	v, ok := s.engine.Views[viewID]
	if !ok {
		L.RaiseError("script: view %d no longer exists", viewID)
		return 0
	}
	v.Selections = append(v.Selections, s.parseSelectionTable(viewID, t))
	return 0
}

// parseSelectionTable accepts either {start,end,direction} or
// {head,anchor}; the latter converts to a Forward-direction selection from
// anchor to head, or, when anchor > head, to a Back-direction selection
// from head to anchor, so Head() stays at the given head.
func (s *Script) parseSelectionTable(viewID id.ViewID, t *lua.LTable) selection.Selection {
	b := newBridge(s.L)
	if head, hasHead := b.tableInt(t, "head"); hasHead {
		anchor, _ := b.tableInt(t, "anchor")
		start, end := anchor, head
		dir := selection.Forward
		if start > end {
			start, end = end, start
			dir = selection.Back
		}
		return selection.Selection{View: viewID, Start: start, End: end, Dir: dir}
	}

	start, _ := b.tableInt(t, "start")
	end, _ := b.tableInt(t, "end")
	dir := selection.Forward
	if dirStr, ok := b.tableString(t, "direction"); ok && dirStr == "back" {
		dir = selection.Back
	}
	return selection.Selection{View: viewID, Start: start, End: end, Dir: dir}
}
