package audio

import "testing"

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "single word",
			query: "Capricorn",
			want:  "Capricorn.mp3",
		},
		{
			name:  "space collapsed to underscore",
			query: "machine learning",
			want:  "machine_learning.mp3",
		},
		{
			name:  "accents folded and punctuation stripped",
			query: "café, mon ami!",
			want:  "cafe_mon_ami.mp3",
		},
		{
			name:  "apostrophe dropped",
			query: "don't",
			want:  "dont.mp3",
		},
		{
			name:  "hyphen runs collapse with whitespace",
			query: "state  of -- the--art",
			want:  "state_of_the_art.mp3",
		},
		{
			name:  "underscores kept as-is",
			query: "snake_case",
			want:  "snake_case.mp3",
		},
		{
			name:  "surrounding whitespace trimmed",
			query: "  hello  ",
			want:  "hello.mp3",
		},
		{
			name:  "leading and trailing hyphens become underscores",
			query: "-hello-",
			want:  "_hello_.mp3",
		},
		{
			name:  "non-decomposable letters dropped",
			query: "straße",
			want:  "strae.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFilename(tt.query); got != tt.want {
				t.Errorf("SafeFilename(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
