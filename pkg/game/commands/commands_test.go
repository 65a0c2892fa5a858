package commands

import (
	"strings"
	"testing"
)

func newTestInterp() (*Interp, *[]string) {
	reg := NewRegistry(map[string]string{
		"version":     "1.0",
		CvarEcho:      "1",
		CvarEchoColor: "1",
	})
	i := New(reg)
	var out []string
	i.SetPrinter(func(s string) { out = append(out, s) })
	return i, &out
}

func TestCanEval(t *testing.T) {
	i, _ := newTestInterp()
	cases := []struct {
		cmd  string
		want bool
	}{
		{"get version", true},
		{"GET version", true},
		{"echo hi", true},
		{"set version 2", false},
		{"help", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		if got := i.CanEval(tc.cmd); got != tc.want {
			t.Errorf("CanEval(%q) = %v, want %v", tc.cmd, got, tc.want)
		}
	}
}

func TestEvalGet(t *testing.T) {
	i, _ := newTestInterp()
	got, err := i.Eval("get version")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != `version = "1.0"` {
		t.Errorf("Eval(get version) = %q", got)
	}

	if _, err := i.Eval("get nosuch"); err == nil {
		t.Error("Eval of unknown cvar returned nil error")
	}
	if _, err := i.Eval("get"); err == nil {
		t.Error("Eval of bare get returned nil error")
	}
}

func TestEvalEcho(t *testing.T) {
	i, _ := newTestInterp()
	got, err := i.Eval("echo hello world")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != "hello world" {
		t.Errorf("Eval(echo) = %q, want %q", got, "hello world")
	}
}

func TestExecSetUpdatesRegistryAndWatches(t *testing.T) {
	i, out := newTestInterp()
	var watched string
	i.Cvars().Watch("version", func(v string) { watched = v })

	if err := i.Exec("set version 2.0"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if v, _ := i.Cvars().Get("version"); v != "2.0" {
		t.Errorf("cvar after set = %q, want 2.0", v)
	}
	if watched != "2.0" {
		t.Errorf("watch saw %q, want 2.0", watched)
	}
	if len(*out) == 0 || !strings.Contains((*out)[0], "2.0") {
		t.Errorf("set printed %v, want confirmation", *out)
	}
}

func TestExecListSortedOutput(t *testing.T) {
	i, out := newTestInterp()
	if err := i.Exec("list"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	// Header plus one line per cvar, alphabetical.
	if len(*out) != 4 {
		t.Fatalf("list printed %d lines, want 4", len(*out))
	}
	if !strings.Contains((*out)[1], CvarEcho) {
		t.Errorf("first listed cvar = %q, want %s", (*out)[1], CvarEcho)
	}
}

func TestExecUnknownCommand(t *testing.T) {
	i, _ := newTestInterp()
	err := i.Exec("frobnicate")
	if err == nil {
		t.Fatal("unknown command returned nil error")
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("error %q does not name the command", err)
	}
}

func TestExecEmptyIsNoop(t *testing.T) {
	i, out := newTestInterp()
	if err := i.Exec(""); err != nil {
		t.Errorf("Exec(\"\") = %v, want nil", err)
	}
	if len(*out) != 0 {
		t.Errorf("empty command printed %v", *out)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry(map[string]string{"b": "1", "a": "2", "c": "3"})
	names := reg.Names()
	for j := 1; j < len(names); j++ {
		if names[j-1] > names[j] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}
