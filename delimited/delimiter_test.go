package delimited

import "testing"

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  rune
	}{
		{"comma", "a,b,c\n1,2,3\n4,5,6", ','},
		{"semicolon", "a;b;c\n1;2;3", ';'},
		{"tab", "a\tb\tc\n1\t2\t3", '\t'},
		{"pipe", "a|b|c\n1|2|3", '|'},
		{"no signal defaults to comma", "plain text\nmore text", ','},
		{"empty input defaults to comma", "", ','},
		{"consistency beats raw count", "a;b;c\n1;2;3\nx,y,z,w,q,r,s,t,u,v\n1;2;3\n4;5;6", ';'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDelimiter(tt.input); got != tt.want {
				t.Errorf("DetectDelimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectDelimiterSamplesFirstLines(t *testing.T) {
	// Only the first five non-empty lines are inspected; the semicolons
	// further down must not influence the result.
	input := "a,b\n1,2\n3,4\n5,6\n7,8\nx;y;z\nx;y;z\nx;y;z\nx;y;z"
	if got := DetectDelimiter(input); got != ',' {
		t.Errorf("DetectDelimiter() = %q, want %q", got, ',')
	}
}

func TestDetectDelimiterTieKeepsEarlier(t *testing.T) {
	// Equal scores for comma and pipe; the earlier-declared comma wins.
	if got := DetectDelimiter("a,b|c\n1,2|3"); got != ',' {
		t.Errorf("DetectDelimiter() = %q, want %q", got, ',')
	}
}
