package newsapi

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "Stocks climbed on Monday.",
			want: "Stocks climbed on Monday.",
		},
		{
			name: "tags stripped",
			in:   "<p>Stocks <b>climbed</b> on Monday.</p>",
			want: "Stocks climbed on Monday.",
		},
		{
			name: "entities decoded",
			in:   "Profits &amp; losses",
			want: "Profits & losses",
		},
		{
			name: "script body dropped",
			in:   "<p>Visible</p><script>alert('x')</script>",
			want: "Visible",
		},
		{
			name: "style body dropped",
			in:   "<style>p{color:red}</style>Readable",
			want: "Readable",
		},
		{
			name: "whitespace collapsed",
			in:   "too   many\n\t spaces here",
			want: "too many spaces here",
		},
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.in); got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := collapseWhitespace("  leading and trailing  "); got != "leading and trailing" {
		t.Errorf("Expected trimmed result, got %q", got)
	}
}
