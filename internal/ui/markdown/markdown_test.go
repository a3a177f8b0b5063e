package markdown

import (
	"strings"
	"testing"
)

func TestRenderKeepsContent(t *testing.T) {
	out := Render("Vite pre-bundles dependencies with **esbuild**.", 60)
	if !strings.Contains(out, "esbuild") {
		t.Errorf("rendered output lost content: %q", out)
	}
}

func TestRenderNarrowWidthClamped(t *testing.T) {
	out := Render("hello", 1)
	if out == "" {
		t.Error("render at tiny width should still produce output")
	}
}
