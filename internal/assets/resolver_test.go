package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeGrammar(t *testing.T, dir, name string) {
	t.Helper()

	content := `<lexer><config><name>` + name + `</name></config><rules><state name="root"><rule pattern=".+"><token type="Text"/></rule></state></rules></lexer>`
	if err := os.WriteFile(filepath.Join(dir, name+".xml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing grammar: %v", err)
	}
}

func TestNewGrammarResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty base path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewGrammarResolver(""); err != nil {
			t.Errorf("NewGrammarResolver(\"\") unexpected error: %v", err)
		}
	})

	t.Run("existing directory", func(t *testing.T) {
		t.Parallel()

		if _, err := NewGrammarResolver(t.TempDir()); err != nil {
			t.Errorf("NewGrammarResolver() unexpected error: %v", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewGrammarResolver("/no/such/directory")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewGrammarResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := NewGrammarResolver(path)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewGrammarResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestGrammarResolver_Sources(t *testing.T) {
	t.Parallel()

	t.Run("embedded defaults", func(t *testing.T) {
		t.Parallel()

		r, err := NewGrammarResolver("")
		if err != nil {
			t.Fatal(err)
		}
		sources, err := r.Sources()
		if err != nil {
			t.Fatalf("Sources() unexpected error: %v", err)
		}

		if !containsName(sources, "jsonpath") {
			t.Errorf("embedded sources should include jsonpath, got %v", names(sources))
		}
		for _, s := range sources {
			if _, err := fs.Stat(s.FS, s.Path); err != nil {
				t.Errorf("source %s not readable: %v", s.Name, err)
			}
		}
	})

	t.Run("customs extend embedded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeGrammar(t, dir, "mylang")

		r, err := NewGrammarResolver(dir)
		if err != nil {
			t.Fatal(err)
		}
		sources, err := r.Sources()
		if err != nil {
			t.Fatalf("Sources() unexpected error: %v", err)
		}

		if !containsName(sources, "mylang") {
			t.Errorf("sources should include custom mylang, got %v", names(sources))
		}
		if !containsName(sources, "jsonpath") {
			t.Errorf("sources should keep embedded jsonpath, got %v", names(sources))
		}
	})

	t.Run("custom shadows embedded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeGrammar(t, dir, "jsonpath")

		r, err := NewGrammarResolver(dir)
		if err != nil {
			t.Fatal(err)
		}
		sources, err := r.Sources()
		if err != nil {
			t.Fatalf("Sources() unexpected error: %v", err)
		}

		count := 0
		for _, s := range sources {
			if s.Name == "jsonpath" {
				count++
				if s.Path != "jsonpath.xml" {
					t.Errorf("shadowing source path = %q, want custom file", s.Path)
				}
			}
		}
		if count != 1 {
			t.Errorf("jsonpath appears %d times, want 1", count)
		}
	})

	t.Run("non xml entries ignored", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.Mkdir(filepath.Join(dir, "sub.xml"), 0o755); err != nil {
			t.Fatal(err)
		}

		r, err := NewGrammarResolver(dir)
		if err != nil {
			t.Fatal(err)
		}
		sources, err := r.Sources()
		if err != nil {
			t.Fatalf("Sources() unexpected error: %v", err)
		}

		if containsName(sources, "notes") || containsName(sources, "sub") {
			t.Errorf("non-grammar entries leaked into sources: %v", names(sources))
		}
	})
}

func TestGrammarResolver_Lookup(t *testing.T) {
	t.Parallel()

	r, err := NewGrammarResolver("")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		grammar string
		wantErr error
	}{
		{name: "embedded found", grammar: "jsonpath"},
		{name: "missing", grammar: "nope", wantErr: ErrGrammarNotFound},
		{name: "empty name", grammar: "", wantErr: ErrInvalidGrammarName},
		{name: "path traversal slash", grammar: "../etc/passwd", wantErr: ErrInvalidGrammarName},
		{name: "path traversal backslash", grammar: `..\boot`, wantErr: ErrInvalidGrammarName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := r.Lookup(tt.grammar)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Lookup() unexpected error: %v", err)
				}
				if src.Name != tt.grammar {
					t.Errorf("Lookup() name = %q, want %q", src.Name, tt.grammar)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Lookup() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func containsName(sources []GrammarSource, name string) bool {
	for _, s := range sources {
		if s.Name == name {
			return true
		}
	}
	return false
}

func names(sources []GrammarSource) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.Name
	}
	return out
}
