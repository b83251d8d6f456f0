package leads

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		// No write happened; rejected submissions never touch the log.
		return nil
	}
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func TestFileStore_AppendCreatesDirAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "leads.jsonl")
	store := NewFileStore(path)

	lead := NewLead(&SubmitLeadRequest{
		Industry: "Handel",
		Problem:  "Brak czasu",
		Message:  "Potrzebuję pomocy",
		Contact:  "jan@x.pl",
	})

	if err := store.Append(context.Background(), lead); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var stored Lead
	if err := json.Unmarshal([]byte(lines[0]), &stored); err != nil {
		t.Fatalf("stored line is not valid JSON: %v", err)
	}
	if stored.ID != lead.ID {
		t.Errorf("expected ID %q, got %q", lead.ID, stored.ID)
	}
	if stored.Industry != "Handel" {
		t.Errorf("expected industry %q, got %q", "Handel", stored.Industry)
	}
}

func TestFileStore_AppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.jsonl")
	store := NewFileStore(path)
	ctx := context.Background()

	first := NewLead(&SubmitLeadRequest{Industry: "A", Problem: "p", Message: "m", Contact: "c"})
	second := NewLead(&SubmitLeadRequest{Industry: "B", Problem: "p", Message: "m", Contact: "c"})

	if err := store.Append(ctx, first); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := store.Append(ctx, second); err != nil {
		t.Fatalf("second append: %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var got Lead
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("first line: %v", err)
	}
	if got.ID != first.ID {
		t.Error("first record was rewritten by the second append")
	}
}

func TestFileStore_AppendFailureSurfaces(t *testing.T) {
	// A regular file where the data directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(filepath.Join(blocker, "leads.jsonl"))
	lead := NewLead(&SubmitLeadRequest{Industry: "A", Problem: "p", Message: "m", Contact: "c"})

	if err := store.Append(context.Background(), lead); err == nil {
		t.Fatal("expected error when the data directory cannot be created")
	}
}

func TestFileStore_ConcurrentAppendsLineGranularity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.jsonl")
	store := NewFileStore(path)

	const n = 20
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			lead := NewLead(&SubmitLeadRequest{Industry: "X", Problem: "p", Message: "m", Contact: "c"})
			done <- store.Append(context.Background(), lead)
		}()
	}
	for i := 0; i < n; i++ {
		if err := <-done; err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	lines := readLines(t, path)
	if len(lines) != n {
		t.Fatalf("expected %d lines, got %d", n, len(lines))
	}
	for i, line := range lines {
		var lead Lead
		if err := json.Unmarshal([]byte(line), &lead); err != nil {
			t.Fatalf("line %d corrupted: %v", i, err)
		}
	}
}
