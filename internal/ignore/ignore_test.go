package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatch(t *testing.T) {
	for _, tc := range []struct {
		name       string
		substrings []string
		want       bool
	}{
		{"test", []string{"test"}, true},
		{"latest", []string{"test"}, true},
		{"UnitTests", []string{"test"}, true},
		{"tests", []string{"TEST"}, true},
		{"src", []string{"test"}, false},
		{"include", []string{"include"}, true},
		{"includes", []string{"include"}, true},
		{"src", nil, false},
		{"src", []string{""}, false},
		{"src", []string{"", "sr"}, true},
	} {
		if got := Match(tc.name, tc.substrings); got != tc.want {
			t.Errorf("Match(%q, %q)=%v; want %v", tc.name, tc.substrings, got, tc.want)
		}
	}
}

func TestFilterCheckDir(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "build", "gen")
	f, err := New(root,
		WithSubstrings([]string{"Test", ""}),
		WithExcludedPaths([]string{out}),
	)
	if err != nil {
		t.Fatalf("New=%v", err)
	}

	for _, tc := range []struct {
		path string
		want Verdict
	}{
		{root, Keep},
		{filepath.Join(root, "src"), Keep},
		{filepath.Join(root, "src", "latest"), Substring},
		{filepath.Join(root, "unittests"), Substring},
		{filepath.Join(root, "build"), Keep},
		{out, ExcludedPath},
		{out + string(filepath.Separator), ExcludedPath},
		{filepath.Join(root, "build", "generated"), Keep},
	} {
		if got := f.CheckDir(tc.path); got != tc.want {
			t.Errorf("CheckDir(%q)=%v; want %v", tc.path, got, tc.want)
		}
	}
}

func TestFilterSubstringAppliesToNameOnly(t *testing.T) {
	root := filepath.Join(t.TempDir(), "testdata")
	f, err := New(root, WithSubstrings([]string{"testdata"}))
	if err != nil {
		t.Fatalf("New=%v", err)
	}
	if got := f.CheckDir(filepath.Join(root, "src")); got != Keep {
		t.Errorf("CheckDir(child of matching root)=%v; want keep", got)
	}
}

func TestFilterGitignore(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("generated/\n*_autogen.h\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{"generated", "src"} {
		if err := os.Mkdir(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"src/a.h", "src/b_autogen.h"} {
		if err := os.WriteFile(filepath.Join(root, filepath.FromSlash(name)), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	f, err := New(root, WithGitignore(true))
	if err != nil {
		t.Fatalf("New=%v", err)
	}
	if got := f.CheckDir(filepath.Join(root, "generated")); got != Gitignore {
		t.Errorf("CheckDir(generated)=%v; want gitignore", got)
	}
	if got := f.CheckDir(filepath.Join(root, "src")); got != Keep {
		t.Errorf("CheckDir(src)=%v; want keep", got)
	}
	if got := f.CheckFile(filepath.Join(root, "src", "b_autogen.h")); got != Gitignore {
		t.Errorf("CheckFile(b_autogen.h)=%v; want gitignore", got)
	}
	if got := f.CheckFile(filepath.Join(root, "src", "a.h")); got != Keep {
		t.Errorf("CheckFile(a.h)=%v; want keep", got)
	}

	off, err := New(root)
	if err != nil {
		t.Fatalf("New=%v", err)
	}
	if got := off.CheckDir(filepath.Join(root, "generated")); got != Keep {
		t.Errorf("CheckDir(generated) without gitignore=%v; want keep", got)
	}
}

func TestDisabledFilter(t *testing.T) {
	f := CreateDisabledFilter()
	if got := f.CheckDir("/anything/test"); got != Keep {
		t.Errorf("CheckDir=%v; want keep", got)
	}
	var nilFilter *Filter
	if got := nilFilter.CheckFile("/x.h"); got != Keep {
		t.Errorf("nil CheckFile=%v; want keep", got)
	}
}
