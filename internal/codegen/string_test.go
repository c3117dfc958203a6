package codegen

import "testing"

func TestEmitStringEscapes(t *testing.T) {
	cases := map[string]string{
		"a":    `"a"`,
		`\n`:   `"\n"`,
		`\'`: `"'"`,
		`\"`:   `"\""`,
		`\x41`: `"\x41"`,
		`\u0041`: `"\x0041"`,
		`\q`:   `"\161"`,
	}
	for in, want := range cases {
		if got := emitString(in); got != want {
			t.Errorf("emitString(%q) = %q, want %q", in, got, want)
		}
	}
}
