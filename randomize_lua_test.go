// randomize_lua_test.go - Scripted generator loading and validation

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "generate.lua")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

func TestGenerateFromScript_Descending(t *testing.T) {
	path := writeScript(t, `
function generate(n)
	local t = {}
	for i = 1, n do
		t[i] = n - i + 1
	end
	return t
end
`)
	values, err := GenerateFromScript(path, 8)
	if err != nil {
		t.Fatalf("GenerateFromScript: %v", err)
	}
	for i, v := range values {
		if v != 8-i {
			t.Fatalf("values[%d] = %d, want %d", i, v, 8-i)
		}
	}
}

func TestGenerateFromScript_ClampsOutOfRange(t *testing.T) {
	path := writeScript(t, `
function generate(n)
	return {-5, 0, 1, n, n + 100, 3}
end
`)
	values, err := GenerateFromScript(path, 6)
	if err != nil {
		t.Fatalf("GenerateFromScript: %v", err)
	}
	want := []int{1, 1, 1, 6, 6, 3}
	for i, v := range values {
		if v != want[i] {
			t.Fatalf("values = %v, want %v", values, want)
		}
	}
}

func TestGenerateFromScript_MissingFile(t *testing.T) {
	if _, err := GenerateFromScript(filepath.Join(t.TempDir(), "absent.lua"), 4); err == nil {
		t.Fatalf("missing script must fail")
	}
}

func TestGenerateFromScript_MissingGenerate(t *testing.T) {
	path := writeScript(t, `local x = 1`)
	if _, err := GenerateFromScript(path, 4); err == nil {
		t.Fatalf("script without generate(n) must fail")
	}
}

func TestGenerateFromScript_WrongLength(t *testing.T) {
	path := writeScript(t, `
function generate(n)
	return {1, 2}
end
`)
	if _, err := GenerateFromScript(path, 4); err == nil {
		t.Fatalf("short table must fail, caller keeps its array")
	}
}

func TestGenerateFromScript_NonNumberElement(t *testing.T) {
	path := writeScript(t, `
function generate(n)
	return {1, "two", 3, 4}
end
`)
	if _, err := GenerateFromScript(path, 4); err == nil {
		t.Fatalf("non-number element must fail")
	}
}

func TestGenerateFromScript_RuntimeError(t *testing.T) {
	path := writeScript(t, `
function generate(n)
	error("deliberate")
end
`)
	if _, err := GenerateFromScript(path, 4); err == nil {
		t.Fatalf("script runtime error must propagate")
	}
}
