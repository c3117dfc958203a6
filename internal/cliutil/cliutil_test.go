package cliutil

import "testing"

func TestOutputPathDerivation(t *testing.T) {
	cases := map[string]string{
		"x.js":        "x.cpp",
		"dir/y.js":    "dir/y.cpp",
		"noextension": "noextension.cpp",
	}
	for in, want := range cases {
		if got := OutputPath(in); got != want {
			t.Errorf("OutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}
