package practice

import (
	"strings"
	"testing"

	"viteroad/internal/catalog"
)

func cssChallenge() catalog.PracticeChallenge {
	return catalog.PracticeChallenge{
		Title:       "HMR Style Test",
		Description: "Update the CSS.",
		InitialCode: "body { background: #000; }",
		Type:        catalog.ChallengeCSS,
	}
}

func TestNewSandboxRendersInitialCode(t *testing.T) {
	var docs []string
	s := NewSandbox(cssChallenge(), func(doc string) { docs = append(docs, doc) })

	if s.Code() != "body { background: #000; }" {
		t.Errorf("code = %q, want initial code", s.Code())
	}
	if len(docs) != 1 {
		t.Fatalf("renders = %d, want 1", len(docs))
	}
	if !strings.Contains(docs[0], "body { background: #000; }") {
		t.Error("initial render does not contain the initial code")
	}
}

func TestEditReplacesDocumentEveryTime(t *testing.T) {
	var docs []string
	s := NewSandbox(cssChallenge(), func(doc string) { docs = append(docs, doc) })

	s.Edit("body { color: red; }")
	s.Edit("body { color: blue; }")

	if len(docs) != 3 {
		t.Fatalf("renders = %d, want 3 (init + 2 edits)", len(docs))
	}
	last := docs[len(docs)-1]
	if !strings.Contains(last, "color: blue") {
		t.Error("last render missing latest edit")
	}
	if strings.Contains(last, "color: red") {
		t.Error("last render still contains a prior edit — document must be replaced, not appended")
	}
}

func TestReset(t *testing.T) {
	var docs []string
	s := NewSandbox(cssChallenge(), func(doc string) { docs = append(docs, doc) })

	s.Edit("body {}")
	s.Reset()

	if s.Code() != cssChallenge().InitialCode {
		t.Errorf("code after reset = %q", s.Code())
	}
	if !strings.Contains(docs[len(docs)-1], cssChallenge().InitialCode) {
		t.Error("reset did not re-render the initial code")
	}
}

func TestVerifyFiresOnce(t *testing.T) {
	s := NewSandbox(cssChallenge(), nil)

	if s.Solved() {
		t.Fatal("new sandbox should not be solved")
	}
	if !s.Verify() {
		t.Error("first verify should report completion")
	}
	if !s.Solved() {
		t.Error("sandbox should be solved after verify")
	}
	if s.Verify() {
		t.Error("second verify must not re-fire the completion signal")
	}
	if !s.Solved() {
		t.Error("repeated verify must not clear the solved flag")
	}
}

func TestBuildDocumentCSS(t *testing.T) {
	doc := BuildDocument(catalog.ChallengeCSS, "h1 { color: lime; }")
	if !strings.Contains(doc, "<style>") || !strings.Contains(doc, "h1 { color: lime; }") {
		t.Error("css harness should inject the user CSS into a style block")
	}
	if !strings.Contains(doc, "Vite Practice Unit") {
		t.Error("css harness missing fixed shell body")
	}
}

func TestBuildDocumentJS(t *testing.T) {
	doc := BuildDocument(catalog.ChallengeJS, "document.getElementById('status').innerText = 'hi';")
	for _, want := range []string{`id="btn"`, `id="status"`, "document.getElementById('status')"} {
		if !strings.Contains(doc, want) {
			t.Errorf("js harness missing %q", want)
		}
	}
}

func TestBuildDocumentHTMLVerbatim(t *testing.T) {
	raw := "<html><body><h1>mine</h1></body></html>"
	if got := BuildDocument(catalog.ChallengeHTML, raw); got != raw {
		t.Errorf("html harness = %q, want verbatim input", got)
	}
}
