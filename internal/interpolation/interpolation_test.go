package interpolation

import "testing"

func TestSubstitute(t *testing.T) {
	cases := []struct {
		name        string
		text        string
		args        []string
		want        string
		wantMissing int
	}{
		{"single", "PET_VALUE:!ARG1", []string{"42"}, "PET_VALUE:42", 0},
		{"no args", "PET_VALUE:!ARG1", nil, "PET_VALUE:!ARG1", 1},
		{"two digit index", "!ARG10:!ARG1", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, "j:a", 0},
		{"partial", "BODY_SIZE:!ARG1:!ARG2:!ARG3", []string{"0", "0"}, "BODY_SIZE:0:0:!ARG3", 1},
		{"zero index", "!ARG0", []string{"x"}, "!ARG0", 1},
		{"no placeholders", "LARGE_PREDATOR", []string{"x"}, "LARGE_PREDATOR", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, missing := Substitute(tc.text, tc.args)
			if got != tc.want {
				t.Fatalf("Substitute() = %q, want %q", got, tc.want)
			}
			if len(missing) != tc.wantMissing {
				t.Fatalf("missing = %+v, want %d entries", missing, tc.wantMissing)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("CV_ADD_TAG:BODY_SIZE:!ARG2:!ARG1:!ARG12")
	want := []int{2, 1, 12}
	if len(got) != len(want) {
		t.Fatalf("Placeholders() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Placeholders() = %v, want %v", got, want)
		}
	}
}
