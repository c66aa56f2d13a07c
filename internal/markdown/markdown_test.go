package markdown

import (
	"strings"
	"testing"
)

func TestRender_Bold(t *testing.T) {
	got := Render("**hi**")
	if !strings.Contains(got, "<strong>hi</strong>") {
		t.Errorf("Render(**hi**) = %q; want bold wrapping of hi", got)
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q; want empty", got)
	}
}

func TestRender_Deterministic(t *testing.T) {
	first := Render("# Heading\n\nsome *notes*")
	second := Render("# Heading\n\nsome *notes*")
	if first != second {
		t.Errorf("Render is not deterministic: %q vs %q", first, second)
	}
	if !strings.Contains(first, "<h1>") || !strings.Contains(first, "<em>notes</em>") {
		t.Errorf("Render produced unexpected HTML: %q", first)
	}
}
