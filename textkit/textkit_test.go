package textkit

import (
	"reflect"
	"testing"
)

func TestRemovePunctuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		in           string
		rmWhitespace bool
		want         string
	}{
		{
			name:         "collapse whitespace",
			in:           "Hello world!\tThis is a test. :-)",
			rmWhitespace: true,
			want:         "Hello world This is a test",
		},
		{
			name:         "keep whitespace",
			in:           "Hello world!\tThis is a test. :-)",
			rmWhitespace: false,
			want:         "Hello world \tThis is a test",
		},
		{
			name:         "underscores removed",
			in:           "Network_Waymarks",
			rmWhitespace: true,
			want:         "NetworkWaymarks",
		},
		{
			name:         "empty",
			in:           "",
			rmWhitespace: true,
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RemovePunctuation(tt.in, tt.rmWhitespace); got != tt.want {
				t.Errorf("RemovePunctuation(%q, %v) = %q, want %q", tt.in, tt.rmWhitespace, got, tt.want)
			}
		})
	}
}

func TestAcronym(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		opts AcronymOptions
		want string
	}{
		{
			name: "default initials",
			in:   "This is an apple.",
			want: "TIAA",
		},
		{
			name: "only capitals",
			in:   "I'm at the University of Birmingham.",
			opts: AcronymOptions{OnlyCapitals: true},
			want: "IUB",
		},
		{
			name: "capitals in words",
			in:   `There is a "ConnectionError"!`,
			opts: AcronymOptions{CapitalsInWords: true},
			want: "TIACE",
		},
		{
			name: "only capitals in words",
			in:   `There is a "ConnectionError"!`,
			opts: AcronymOptions{OnlyCapitals: true, CapitalsInWords: true},
			want: "TCE",
		},
		{
			name: "only capitals in words keeping punctuation",
			in:   `There is a "ConnectionError"!`,
			opts: AcronymOptions{OnlyCapitals: true, CapitalsInWords: true, KeepPunctuation: true},
			want: `T"CE"!`,
		},
		{
			name: "only capitals keeping punctuation",
			in:   `There is a "ConnectionError"!`,
			opts: AcronymOptions{OnlyCapitals: true, KeepPunctuation: true},
			want: `T"C"!`,
		},
		{
			name: "capitals in words keeping punctuation",
			in:   `There is a "ConnectionError"!`,
			opts: AcronymOptions{CapitalsInWords: true, KeepPunctuation: true},
			want: `TIA"CE"!`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Acronym(tt.in, tt.opts); got != tt.want {
				t.Errorf("Acronym(%q, %+v) = %q, want %q", tt.in, tt.opts, got, tt.want)
			}
		})
	}
}

func TestExtractCapitalizedWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"Network_Waymarks", []string{"Network", "Waymarks"}},
		{"NetworkRailRetainingWall", []string{"Network", "Rail", "Retaining", "Wall"}},
		{"lowercase only", []string{"lowercase only"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := ExtractCapitalizedWords(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCapitalizedWords(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	t.Parallel()

	got := CountWords("This is an apple. That is a pear. Hello world!")
	want := map[string]int{
		"This": 1, "is": 2, "an": 1, "apple": 1, ".": 2,
		"That": 1, "a": 1, "pear": 1, "Hello": 1, "world": 1, "!": 1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountWords() = %v, want %v", got, want)
	}
}

func TestCountWords_Empty(t *testing.T) {
	t.Parallel()

	if got := CountWords(""); len(got) != 0 {
		t.Errorf("CountWords(\"\") = %v, want empty", got)
	}
}
