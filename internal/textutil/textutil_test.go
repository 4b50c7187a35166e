package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"CASTE_NAME", 20, "CASTE_NAME"},
		{"CASTE_NAME", 5, "CASTE..."},
		{"CAFé", 4, "CAFé"},
		{"éééé", 2, "éé..."},
		{"", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestHash(t *testing.T) {
	if Hash("ab", "c") == Hash("a", "bc") {
		t.Fatal("expected part boundaries to change the hash")
	}
	if Hash("[TREE]") != Hash("[TREE]") {
		t.Fatal("expected a stable hash")
	}
	if len(Hash()) != 64 {
		t.Fatalf("expected a 64 character digest, got %q", Hash())
	}
}

func TestBracket(t *testing.T) {
	if got := Bracket([]string{"PET_VALUE:5", "FEMALE"}); got != "[PET_VALUE:5][FEMALE]" {
		t.Fatalf("Bracket() = %q", got)
	}
}
