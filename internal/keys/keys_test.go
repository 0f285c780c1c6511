package keys

import "testing"

func TestWizardKeyFromDescription(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Storm Caller", "storm_caller"},
		{"  a pyromancer   from the   deep  ", "a_pyromancer_from_the_deep"},
		{"", ""},
		{"ALREADY_ONE_WORD", "already_one_word"},
		{"tabs\tand\nnewlines", "tabs_and_newlines"},
	}
	for _, c := range cases {
		if got := WizardKeyFromDescription(c.in); got != c.want {
			t.Fatalf("WizardKeyFromDescription(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
