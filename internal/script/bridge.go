package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// bridge converts values between Lua and Go, trimmed from the teacher's
// general-purpose plugin bridge to the shapes the Editor global actually
// exchanges with scripts: strings, numbers, bools, and tables built from
// those.
type bridge struct {
	L *lua.LState
}

func newBridge(L *lua.LState) *bridge {
	return &bridge{L: L}
}

// toGoValue converts a Lua value to a Go value.
func (b *bridge) toGoValue(lv lua.LValue) interface{} {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		return b.tableToGo(v)
	case *lua.LUserData:
		return v.Value
	default:
		return nil
	}
}

// tableToGo converts a Lua table to a Go map, or a slice if the table is a
// contiguous 1-based array.
func (b *bridge) tableToGo(t *lua.LTable) interface{} {
	maxN := t.Len()
	isArray := maxN > 0
	count := 0
	t.ForEach(func(k, _ lua.LValue) { count++ })
	if count != maxN {
		isArray = false
	}

	if isArray {
		arr := make([]interface{}, maxN)
		for i := 1; i <= maxN; i++ {
			arr[i-1] = b.toGoValue(t.RawGetInt(i))
		}
		return arr
	}

	m := make(map[string]interface{})
	t.ForEach(func(k, v lua.LValue) {
		m[k.String()] = b.toGoValue(v)
	})
	return m
}

// toLuaValue converts a Go value to a Lua value.
func (b *bridge) toLuaValue(v interface{}) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case uint64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []string:
		t := b.L.NewTable()
		for i, s := range val {
			t.RawSetInt(i+1, lua.LString(s))
		}
		return t
	case []interface{}:
		t := b.L.NewTable()
		for i, e := range val {
			t.RawSetInt(i+1, b.toLuaValue(e))
		}
		return t
	case map[string]interface{}:
		t := b.L.NewTable()
		for k, e := range val {
			t.RawSetString(k, b.toLuaValue(e))
		}
		return t
	case lua.LValue:
		return val
	default:
		return lua.LString(fmt.Sprintf("%v", val))
	}
}

// tableString requires table field key to be a Lua string.
func (b *bridge) tableString(t *lua.LTable, key string) (string, bool) {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s), true
	}
	return "", false
}

// tableInt requires table field key to be a Lua number, truncated to int.
func (b *bridge) tableInt(t *lua.LTable, key string) (int, bool) {
	if n, ok := t.RawGetString(key).(lua.LNumber); ok {
		return int(n), true
	}
	return 0, false
}
