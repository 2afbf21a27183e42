// randomize_lua.go - User-scriptable array generator via Lua

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// GenerateFromScript loads a Lua script that defines generate(n) and calls
// it for an array of n values. The function must return a table of n
// numbers; values are clamped into [1, n] so a misbehaving script can never
// break the bar layout. Any failure leaves the caller's current array
// untouched.
func GenerateFromScript(path string, n int) ([]int, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	fn := L.GetGlobal("generate")
	if fn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("script %s does not define generate(n)", path)
	}
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(n)); err != nil {
		return nil, fmt.Errorf("script %s: generate(%d): %w", path, n, err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("script %s: generate(%d) returned %s, want table", path, n, ret.Type())
	}
	if tbl.Len() != n {
		return nil, fmt.Errorf("script %s: generate(%d) returned %d values", path, n, tbl.Len())
	}

	values := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		lv := tbl.RawGetInt(i)
		num, ok := lv.(lua.LNumber)
		if !ok {
			return nil, fmt.Errorf("script %s: element %d is %s, want number", path, i, lv.Type())
		}
		v := int(num)
		if v < 1 {
			v = 1
		} else if v > n {
			v = n
		}
		values = append(values, v)
	}
	return values, nil
}
