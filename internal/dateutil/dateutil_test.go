package dateutil

import (
	"testing"
	"time"
)

func TestFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "dated post",
			in:   "2024-03-01-json-semantics.md",
			want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "dated post with directory",
			in:   "content/2024-03-01-json-semantics.md",
			want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "no prefix", in: "about.md"},
		{name: "short name", in: "a.md"},
		{name: "wrong separators", in: "2024_03_01-x.md"},
		{name: "invalid date", in: "2024-13-41-x.md"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FromFilename(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("FromFilename(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripDatePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-01-json-semantics.md", "json-semantics.md"},
		{"content/2024-03-01-post.md", "content/post.md"},
		{"about.md", "about.md"},
		{"content/about.md", "content/about.md"},
	}

	for _, tt := range tests {
		tt := tt
		if got := StripDatePrefix(tt.in); got != tt.want {
			t.Errorf("StripDatePrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFlexible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "rfc3339",
			in:     "2024-03-01T10:30:00Z",
			want:   time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "date and time",
			in:     "2024-03-01 10:30",
			want:   time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "date only",
			in:     "2024-03-01",
			want:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "long form",
			in:     "March 1, 2024",
			want:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "surrounding whitespace",
			in:     "  2024-03-01  ",
			want:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{name: "empty"},
		{name: "unparseable", in: "yesterday"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseFlexible(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseFlexible(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseFlexible(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
