package trac

import "testing"

func TestParams_Encode(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{name: "Empty", params: Params{}, want: ""},
		{name: "KeepsOrder", params: Params{}.Add("view", "rev").Add("revision", "42"), want: "view=rev&revision=42"},
		{name: "ReverseOrder", params: Params{}.Add("z", "1").Add("a", "2"), want: "z=1&a=2"},
		{name: "Spaces", params: Params{}.Add("q", "a b"), want: "q=a+b"},
		{name: "Reserved", params: Params{}.Add("path", "/trunk?x=1&y"), want: "path=%2Ftrunk%3Fx%3D1%26y"},
		{name: "Unicode", params: Params{}.Add("n", "é"), want: "n=%C3%A9"},
		{name: "EscapedName", params: Params{}.Add("a b", "c"), want: "a+b=c"},
		{name: "Parens", params: Params{}.Add("revision", "(42)"), want: "revision=(42)"},
		{name: "Marks", params: Params{}.Add("m", "!'*~-_."), want: "m=!'*~-_."},
		{name: "PercentStaysEscaped", params: Params{}.Add("p", "%28"), want: "p=%2528"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Encode(); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}
