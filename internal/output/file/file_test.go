package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/crimson-sun/lionshare/internal/model"
)

func testResult(name string, v int64) model.Result {
	return model.Result{
		ID:       "7f9c2ba4-e88f-4c1d-9d1b-5a9e1e3c1f00",
		Source:   "input.txt",
		ParsedAt: time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC),
		Entries:  []model.Entry{{Name: name, Value: v}},
		Total:    v,
		Declared: v,
	}
}

func TestWriteProducesValidNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	out, err := New(path)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := out.Write(context.Background(), testResult("Ka-50", int64(i))); err != nil {
			t.Fatalf("Write error: %v", err)
		}
	}
	out.Close()

	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		var r model.Result
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			t.Errorf("line %d: invalid JSON: %v", i, err)
		}
		if r.Total != int64(i) {
			t.Errorf("line %d: total = %d, want %d", i, r.Total, i)
		}
	}
}

func TestAppendsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	for i := 0; i < 2; i++ {
		out, err := New(path)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		out.Write(context.Background(), testResult("Ka-50", 1))
		out.Close()
	}
	data, _ := os.ReadFile(path)
	if n := strings.Count(string(data), "\n"); n != 2 {
		t.Fatalf("got %d lines, want 2", n)
	}
}

func TestRotationTriggersAtMaxSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.jsonl")

	// Each line is well over 100 bytes, so every write after the first rotates.
	out, err := New(path, WithMaxSize(200))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := out.Write(context.Background(), testResult("Tiger II (H)", 2764)); err != nil {
			t.Fatalf("Write error: %v", err)
		}
	}
	out.Close()

	if _, err := os.Stat(path + ".1"); os.IsNotExist(err) {
		t.Error("expected rotated file .1 to exist")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("current file stat error: %v", err)
	}
	if info.Size() == 0 {
		t.Error("current file is empty after rotation")
	}
}

func TestRotationKeepsTenFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.jsonl")

	out, err := New(path, WithMaxSize(1))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for i := 0; i < 15; i++ {
		out.Write(context.Background(), testResult("Ka-50", int64(i)))
	}
	out.Close()

	for i := 1; i <= maxRotated; i++ {
		if _, err := os.Stat(fmt.Sprintf("%s.%d", path, i)); err != nil {
			t.Errorf("expected %s.%d: %v", path, i, err)
		}
	}
	if _, err := os.Stat(fmt.Sprintf("%s.%d", path, maxRotated+1)); !os.IsNotExist(err) {
		t.Errorf("expected no file beyond .%d", maxRotated)
	}

	// path.1 holds the write just before the current one.
	data, _ := os.ReadFile(path + ".1")
	var r model.Result
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("invalid JSON in .1: %v", err)
	}
	if r.Total != 13 {
		t.Errorf(".1 total = %d, want 13", r.Total)
	}
}

func TestCloseFlushesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	out, err := New(path)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	out.Write(context.Background(), testResult("M41A1", 961))
	out.Close()

	data, _ := os.ReadFile(path)
	if len(data) == 0 {
		t.Error("file is empty, Close did not flush buffered data")
	}
}

func TestConcurrentWritesSafe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	out, err := New(path)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out.Write(context.Background(), testResult("M18 GMC", 1153))
		}()
	}
	wg.Wait()
	out.Close()

	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 50 {
		t.Errorf("got %d lines, want 50", len(lines))
	}
}
