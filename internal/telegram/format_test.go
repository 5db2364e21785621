package telegram

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"angle brackets", "a <b> c", "a &lt;b&gt; c"},
		{"ampersand", "cats & rabbits", "cats &amp; rabbits"},
		{"ampersand first", "<&>", "&lt;&amp;&gt;"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeHTML(tt.in); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBoldItalic(t *testing.T) {
	if got := Bold("a<b"); got != "<b>a&lt;b</b>" {
		t.Errorf("Bold() = %q", got)
	}
	if got := Italic("x&y"); got != "<i>x&amp;y</i>" {
		t.Errorf("Italic() = %q", got)
	}
}
