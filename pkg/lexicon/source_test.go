package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phrases.tr")
	writeFile(t, path, `
key = greeting
language = en_au
translation = G'day

key = greeting
language = en
translation = Hello
`)

	ctx := context.Background()
	src, err := NewFileSource(ctx, path, "", nil)
	if err != nil {
		t.Fatalf("NewFileSource() error = %v", err)
	}

	rules, err := src.Rules(ctx, Query{Key: "greeting", Languages: []string{"en_au", "en"}})
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("Rules() returned %d rules, want 2", len(rules))
	}

	// A failed reload keeps the previous snapshot.
	writeFile(t, path, "key = broken\n")
	if err := src.Reload(ctx); err == nil {
		t.Fatal("Reload() of broken file: expected error, got nil")
	}
	rules, err = src.Rules(ctx, Query{Key: "greeting", Languages: []string{"en"}})
	if err != nil {
		t.Fatalf("Rules() after failed reload error = %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("Rules() after failed reload returned %d rules, want 1", len(rules))
	}

	// A successful reload swaps the snapshot.
	writeFile(t, path, "key = farewell\nlanguage = en\ntranslation = Bye\n")
	if err := src.Reload(ctx); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	rules, _ = src.Rules(ctx, Query{Key: "greeting", Languages: []string{"en"}})
	if len(rules) != 0 {
		t.Errorf("old rules still served after reload: %+v", rules)
	}
}

func TestFileSourceMissing(t *testing.T) {
	_, err := NewFileSource(context.Background(), filepath.Join(t.TempDir(), "nope.tr"), "", nil)
	if err == nil {
		t.Fatal("NewFileSource() on missing file: expected error, got nil")
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "en_au.tr"), "key = greeting\ntranslation = G'day\n")
	writeFile(t, filepath.Join(dir, "en.tr"), "key = greeting\ntranslation = Hello\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a rule file")

	ctx := context.Background()
	src, err := NewDirSource(ctx, dir, "", nil)
	if err != nil {
		t.Fatalf("NewDirSource() error = %v", err)
	}

	rules, err := src.Rules(ctx, Query{Key: "greeting", Languages: []string{"en_au"}})
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}
	if len(rules) != 1 || rules[0].Language != "en_au" || rules[0].Translation != "G'day" {
		t.Fatalf("Rules() = %+v, want the en_au greeting", rules)
	}

	rules, _ = src.Rules(ctx, Query{Key: "greeting", Languages: []string{"en_au", "en"}})
	if len(rules) != 2 {
		t.Fatalf("Rules() with chain returned %d rules, want 2", len(rules))
	}
}

func TestDirSourceExplicitLanguageWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "en.tr"), "key = k\nlanguage = en_gb\ntranslation = colour\n")

	ctx := context.Background()
	src, err := NewDirSource(ctx, dir, "", nil)
	if err != nil {
		t.Fatalf("NewDirSource() error = %v", err)
	}

	rules, _ := src.Rules(ctx, Query{Key: "k", Languages: []string{"en_gb"}})
	if len(rules) != 1 {
		t.Fatalf("explicit language field should override filename, got %+v", rules)
	}
}

func TestFileSourceLatin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fr.tr")
	// "café" with Latin-1 encoded é (0xE9).
	content := []byte("key = coffee\nlanguage = fr\ntranslation = caf\xe9\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	src, err := NewFileSource(ctx, path, "ISO-8859-1", nil)
	if err != nil {
		t.Fatalf("NewFileSource() error = %v", err)
	}

	rules, _ := src.Rules(ctx, Query{Key: "coffee", Languages: []string{"fr"}})
	if len(rules) != 1 || rules[0].Translation != "café" {
		t.Fatalf("Rules() = %+v, want café decoded to UTF-8", rules)
	}
}

func TestMemorySource(t *testing.T) {
	src, err := NewMemorySource(
		Rule{Key: "k", Language: "en", Translation: "a"},
		Rule{Key: "k", Language: "fr", Translation: "b"},
		Rule{Key: "other", Language: "en", Translation: "c"},
	)
	if err != nil {
		t.Fatalf("NewMemorySource() error = %v", err)
	}
	if src.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", src.Len())
	}

	rules, err := src.Rules(context.Background(), Query{Key: "k", Languages: []string{"en"}})
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}
	if len(rules) != 1 || rules[0].Translation != "a" {
		t.Fatalf("Rules() = %+v", rules)
	}
}

func TestMemorySourceAdd(t *testing.T) {
	src, err := NewMemorySource(Rule{Key: "k", Language: "en", Translation: "a"})
	if err != nil {
		t.Fatalf("NewMemorySource() error = %v", err)
	}

	if err := src.Add(
		Rule{Key: "k", Language: "en-AU", Translation: "b"},
		Rule{Key: "other", Language: "en", Translation: "c"},
	); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if src.Len() != 3 {
		t.Fatalf("Len() after Add = %d, want 3", src.Len())
	}

	// Added rules have their language normalized like seeded ones.
	rules, err := src.Rules(context.Background(), Query{Key: "k", Languages: []string{"en_au"}})
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}
	if len(rules) != 1 || rules[0].Translation != "b" {
		t.Fatalf("Rules() = %+v, want the added en_au rule", rules)
	}

	// A rejected batch leaves the set unchanged.
	if err := src.Add(Rule{Key: "broken"}); err == nil {
		t.Fatal("Add() with invalid rule: expected error, got nil")
	}
	if src.Len() != 3 {
		t.Errorf("Len() after rejected Add = %d, want 3", src.Len())
	}
}

func TestMemorySourceRejectsInvalid(t *testing.T) {
	if _, err := NewMemorySource(Rule{Key: "k"}); err == nil {
		t.Fatal("NewMemorySource() with invalid rule: expected error, got nil")
	}
}

func TestSQLiteSource(t *testing.T) {
	src, err := NewSQLiteSource(SQLiteConfig{Path: filepath.Join(t.TempDir(), "rules.db")})
	if err != nil {
		t.Fatalf("NewSQLiteSource() error = %v", err)
	}
	defer src.Close()

	ctx := context.Background()
	err = src.Insert(ctx,
		Rule{Key: "greeting", Language: "en_au", Priority: 1, Translation: "G'day"},
		Rule{Key: "greeting", Language: "en", Translation: "Hello"},
		Rule{Key: "greeting", Language: "en", Context: "formal", Translation: "Good day"},
	)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	rules, err := src.Rules(ctx, Query{Key: "greeting", Languages: []string{"en_au", "en"}})
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("Rules() returned %d rules, want 2 (context respected)", len(rules))
	}

	rules, err = src.Rules(ctx, Query{Key: "greeting", Context: "formal", Languages: []string{"en"}})
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}
	if len(rules) != 1 || rules[0].Translation != "Good day" {
		t.Fatalf("Rules() with context = %+v", rules)
	}

	rules, err = src.Rules(ctx, Query{Key: "greeting", Languages: nil})
	if err != nil || rules != nil {
		t.Fatalf("Rules() with empty chain = %v, %v, want nil, nil", rules, err)
	}
}

func TestDebouncer(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	fired := make(chan struct{}, 3)
	for i := 0; i < 3; i++ {
		d.Trigger(func() { fired <- struct{}{} })
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("debounced callback never fired")
	}

	select {
	case <-fired:
		t.Fatal("callback fired more than once for one burst")
	case <-time.After(100 * time.Millisecond):
	}
}
