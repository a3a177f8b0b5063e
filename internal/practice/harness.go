package practice

import (
	"fmt"

	"viteroad/internal/catalog"
)

// Harness shells for the preview document. User code is injected verbatim:
// the preview runs in an isolated browsing context, so escaping would only
// break legitimate exercises. Stock shells mirror the editor's dark look.

const cssShell = `<html>
  <head><style>body { font-family: sans-serif; background: #000; color: #fff; text-align: center; display: flex; flex-direction: column; align-items: center; justify-content: center; height: 100vh; margin: 0; } %s</style></head>
  <body>
    <h1>Vite Practice Unit</h1>
    <p>Monochromatic Editor active.</p>
  </body>
</html>`

const jsShell = `<html>
  <head>
    <style>
      body { font-family: sans-serif; background: #000; color: #fff; display: flex; flex-direction: column; align-items: center; justify-content: center; height: 100vh; margin: 0; }
      button { padding: 16px 32px; font-weight: 900; border: none; border-radius: 16px; cursor: pointer; background: #fff; color: #000; text-transform: uppercase; font-size: 12px; letter-spacing: 2px; }
      #status { margin-top: 30px; font-size: 1.5rem; font-weight: 900; color: #71717a; text-transform: uppercase; }
    </style>
  </head>
  <body>
    <button id="btn">Action Toggle</button>
    <div id="status">Ready</div>
    <script>%s</script>
  </body>
</html>`

// BuildDocument constructs the full preview document for the given harness
// type. CSS challenges get a fixed shell with the user's stylesheet in a
// <style> block; JS challenges get a shell exposing #btn and #status for the
// user's inline script; anything else is treated as a full HTML document and
// used verbatim.
func BuildDocument(typ catalog.ChallengeType, code string) string {
	switch typ {
	case catalog.ChallengeCSS:
		return fmt.Sprintf(cssShell, code)
	case catalog.ChallengeJS:
		return fmt.Sprintf(jsShell, code)
	default:
		return code
	}
}
