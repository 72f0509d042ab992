package aggregate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func clock() time.Time { return time.Date(2021, 6, 7, 8, 9, 10, 500000000, time.UTC) }

func TestRun(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base,
		"src/a.h",
		"src/core/b.h",
		"src/core/b_p.h",
		"src/tests/t.h",
		"src/readme.md",
		"include/old.h",
	)
	req := Request{
		Roots:      []string{"src", "src", "missing"},
		Include:    []string{"*.h"},
		Exclude:    []string{"*_p.h"},
		Ignore:     []string{"test"},
		OutputFile: "include/all.h",
		BaseDir:    base,
	}

	res, err := Run(context.Background(), req, WithClock(clock))
	if err != nil {
		t.Fatalf("Run=%v", err)
	}

	if diff := cmp.Diff([]string{"../src/a.h", "../src/core/b.h"}, res.Includes); diff != "" {
		t.Errorf("includes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"missing"}, res.MissingRoots); diff != "" {
		t.Errorf("missing roots mismatch (-want +got):\n%s", diff)
	}
	got, err := os.ReadFile(filepath.Join(base, "include", "all.h"))
	if err != nil {
		t.Fatal(err)
	}
	want := "/* This file was auto-generated by scripts on 2021-06-07 08:09:10.500000 */\n" +
		"#include \"../src/a.h\"\n" +
		"#include \"../src/core/b.h\"\n"
	if string(got) != want {
		t.Errorf("all.h=%q; want %q", got, want)
	}
}

func TestRunSkipsOwnOutput(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "a.h", "all.h", "sub/b.h")
	req := Request{
		Roots:      []string{"."},
		Include:    []string{"*.h"},
		OutputFile: "all.h",
		BaseDir:    base,
	}

	res, err := Run(context.Background(), req, WithClock(clock))
	if err != nil {
		t.Fatalf("Run=%v", err)
	}
	if diff := cmp.Diff([]string{"a.h", "sub/b.h"}, res.Includes); diff != "" {
		t.Errorf("includes mismatch (-want +got):\n%s", diff)
	}
}

func TestRunOutputDirNotScanned(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "a.h", "out/gen.h")
	req := Request{
		Roots:      []string{"."},
		Include:    []string{"*.h"},
		OutputFile: filepath.Join(base, "out", "all.h"),
		BaseDir:    base,
	}

	res, err := Run(context.Background(), req, WithClock(clock))
	if err != nil {
		t.Fatalf("Run=%v", err)
	}
	if diff := cmp.Diff([]string{"../a.h"}, res.Includes); diff != "" {
		t.Errorf("includes mismatch (-want +got):\n%s", diff)
	}
}
