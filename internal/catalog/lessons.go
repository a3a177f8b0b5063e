package catalog

// lessons is the static curriculum, in unlock order. Content is compiled in;
// there is no runtime loading of lessons.
var lessons = []Lesson{
	{
		ID:         "l1",
		Title:      "Architecture & Entry",
		Difficulty: Beginner,
		Visual:     VisualFolderTree,
		Content: `Vite revolutionizes the entry point of your web applications. Unlike traditional bundlers that treat JavaScript as the root, Vite treats your index.html as the primary entry point.

This allows Vite to parse your HTML and discover <script type="module"> tags directly, enabling it to serve source code over native ESM without pre-bundling.`,
		CodeSnippet: `my-project/
├── index.html (Root Entry)
├── package.json
├── vite.config.ts
└── src/
    ├── main.ts
    └── App.tsx`,
		Quiz: []QuizQuestion{
			{
				Question:      "Why does Vite use index.html as the entry point instead of a JS file?",
				Options:       []string{"To make the bundle larger", "To allow the browser to crawl module imports directly", "Because HTML is faster than JS", "It's a requirement of Rollup"},
				CorrectAnswer: "To allow the browser to crawl module imports directly",
				Explanation:   "By using index.html, Vite lets the browser's native module loader discover and request exactly what it needs.",
			},
		},
	},
	{
		ID:         "l2",
		Title:      "Scaffolding & Templates",
		Difficulty: Beginner,
		Visual:     VisualCLIScaffold,
		Content: `The 'create-vite' CLI is the gateway to modern web dev. It offers zero-config templates for every major framework.

Using templates ensures you have the correct TypeScript configurations, build targets, and dev server settings out of the box.`,
		CodeSnippet: `npm create vite@latest my-app --template react-ts`,
		Quiz: []QuizQuestion{
			{
				Question:      "What is the primary benefit of using a Vite template?",
				Options:       []string{"It writes the app for you", "Pre-configured build and dev environment", "It makes the app run on old browsers", "It replaces the need for Node.js"},
				CorrectAnswer: "Pre-configured build and dev environment",
				Explanation:   "Templates provide the essential configurations like tsconfig and vite.config optimized for your chosen framework.",
			},
		},
	},
	{
		ID:         "l3",
		Title:      "HMR Dynamics",
		Difficulty: Beginner,
		Visual:     VisualHMR,
		Content: `Hot Module Replacement (HMR) in Vite is near-instant. It works by keeping the current app state while swapping out only the modified module.

This is achieved via a persistent WebSocket connection between the browser and the Vite dev server.`,
		Practice: &PracticeChallenge{
			Title:       "HMR Style Test",
			Description: "Update the CSS to see HMR in action without a page refresh.",
			InitialCode: "body {\n  background: #000;\n  color: #fff;\n  transition: all 0.5s;\n}",
			Type:        ChallengeCSS,
		},
	},
	{
		ID:         "l4",
		Title:      "Native ESM Loading",
		Difficulty: Beginner,
		Visual:     VisualESMLoading,
		Content: `In development, Vite serves your code as Native ES Modules.

This means the browser handles the heavy lifting of resolving imports. Vite only transforms the code (e.g., TS to JS) as the browser requests each individual file.`,
		Quiz: []QuizQuestion{
			{
				Question:      "How does 'Native ESM' improve development speed?",
				Options:       []string{"It bundles everything into one file", "It skips bundling entirely for source code", "It uses Webpack internally", "It only works offline"},
				CorrectAnswer: "It skips bundling entirely for source code",
				Explanation:   "By serving files individually, Vite avoids the 'bundle overhead' that slows down large projects in other tools.",
			},
		},
	},
	{
		ID:         "l5",
		Title:      "Asset Processing",
		Difficulty: Beginner,
		Content: `Vite handles assets like images, CSS, and JSON automatically.

When you import an image, Vite returns the public URL or base64 data depending on file size, allowing for seamless asset management in your JS files.`,
		CodeSnippet: "import logo from './assets/logo.svg'\nimport config from './data.json'",
		Quiz: []QuizQuestion{
			{
				Question:      "What happens to small images imported in Vite?",
				Options:       []string{"They are deleted", "They are base64 inlined", "They are uploaded to a CDN", "They are ignored"},
				CorrectAnswer: "They are base64 inlined",
				Explanation:   "Vite inlines small assets to reduce the number of HTTP requests your app needs to make.",
			},
		},
	},
	{
		ID:         "l6",
		Title:      "Environment Variables",
		Difficulty: Intermediate,
		Visual:     VisualEnvFlow,
		Content: `Vite uses 'import.meta.env' for environment access.

Security is prioritized: only variables prefixed with 'VITE_' are bundled into your client code, keeping your database secrets safe on the server.`,
		CodeSnippet: "// .env\nVITE_API_KEY=xyz_123\nDATABASE_SECRET=hidden\n\n// main.js\nconsole.log(import.meta.env.VITE_API_KEY)",
		Quiz: []QuizQuestion{
			{
				Question:      "Why is the VITE_ prefix required?",
				Options:       []string{"To make it harder to type", "To prevent leaking private server secrets", "It is a requirement of JavaScript", "To speed up the build"},
				CorrectAnswer: "To prevent leaking private server secrets",
				Explanation:   "Without a prefix, every environment variable on your machine could accidentally end up in the public bundle.",
			},
		},
	},
	{
		ID:         "l7",
		Title:      "Configuration Mastery",
		Difficulty: Intermediate,
		Content: `The 'vite.config.ts' file is the nerve center of your project.

You can define path aliases (like @ for /src), configure third-party plugins, and define global constants that are injected during the build process.`,
		CodeSnippet: "export default defineConfig({\n  resolve: {\n    alias: { '@': path.resolve(__dirname, './src') }\n  }\n})",
		Practice: &PracticeChallenge{
			Title:       "Config Simulation",
			Description: "Simulate a dynamic counter logic that uses a 'VITE_API' mock.",
			InitialCode: "const api = 'https://api.vite.dev';\ndocument.getElementById('btn').onclick = () => {\n  console.log(`Pinging ${api}...`);\n  document.getElementById('status').innerText = 'Connected';\n}",
			Type:        ChallengeJS,
		},
	},
	{
		ID:         "l8",
		Title:      "Server Proxying",
		Difficulty: Intermediate,
		Visual:     VisualProxyFlow,
		Content: `Developing locally often leads to CORS errors when calling external APIs.

Vite's built-in dev server can act as a proxy, rerouting local requests to your backend server while making the browser believe the request is local.`,
		CodeSnippet: "server: {\n  proxy: {\n    '/api': 'http://localhost:5000'\n  }\n}",
		Quiz: []QuizQuestion{
			{
				Question:      "What problem does the Vite proxy solve?",
				Options:       []string{"Slow internet", "Cross-Origin Resource Sharing (CORS) issues", "Minification", "Database management"},
				CorrectAnswer: "Cross-Origin Resource Sharing (CORS) issues",
				Explanation:   "Proxies make cross-origin requests appear local, bypassing browser security restrictions during development.",
			},
		},
	},
	{
		ID:         "l9",
		Title:      "Vitest Integration",
		Difficulty: Intermediate,
		Visual:     VisualTestingLoop,
		Content: `Vitest is the next-gen testing framework designed specifically for Vite.

It uses the same transformation pipeline as the dev server, meaning your tests run in the exact same environment as your code.`,
		CodeSnippet: "import { test, expect } from 'vitest'\n\ntest('math', () => {\n  expect(1 + 1).toBe(2)\n})",
		Quiz: []QuizQuestion{
			{
				Question:      "Why is Vitest faster than other test runners?",
				Options:       []string{"It uses less memory", "It reuses Vite's transformation cache", "It doesn't run tests", "It is written in C++"},
				CorrectAnswer: "It reuses Vite's transformation cache",
				Explanation:   "By sharing Vite's pipeline, Vitest doesn't have to re-compile your code from scratch.",
			},
		},
	},
	{
		ID:         "l10",
		Title:      "Production Bundling",
		Difficulty: Advanced,
		Visual:     VisualBundling,
		Content: `In production, speed shifts from 'dev-refresh' to 'runtime-load'.

Vite uses Rollup to perform sophisticated tree-shaking and chunk splitting, ensuring your users only download the bare minimum code needed.`,
		Quiz: []QuizQuestion{
			{
				Question:      "Which tool does Vite use for the production build?",
				Options:       []string{"Webpack", "esbuild", "Rollup", "Babel"},
				CorrectAnswer: "Rollup",
				Explanation:   "Vite uses esbuild for development but relies on Rollup's mature plugin ecosystem for optimized production bundles.",
			},
		},
	},
	{
		ID:         "l11",
		Title:      "SSR & Hydration",
		Difficulty: Advanced,
		Visual:     VisualSSRHydration,
		Content: `Server-Side Rendering (SSR) involves rendering your app to HTML on the server first.

Vite provides the hooks needed to bundle your app for a Node environment, then 'hydrates' it on the client for full interactivity.`,
		CodeSnippet: "const { render } = await vite.ssrLoadModule('/src/entry-server.ts')",
		Quiz: []QuizQuestion{
			{
				Question:      "What is 'Hydration' in the context of SSR?",
				Options:       []string{"Adding water to servers", "Attaching event listeners to server-rendered HTML", "Downloading images", "Compressing files"},
				CorrectAnswer: "Attaching event listeners to server-rendered HTML",
				Explanation:   "Hydration turns 'dry' static HTML from the server into a 'wet' interactive application in the browser.",
			},
		},
	},
	{
		ID:         "l12",
		Title:      "Library Mode",
		Difficulty: Advanced,
		Visual:     VisualLibMode,
		Content: `Library mode allows you to build shared component libraries.

You can externalize dependencies (like React) so that they aren't bundled twice when someone installs your package.`,
		CodeSnippet: "build: {\n  lib: { entry: 'src/main.ts', formats: ['es', 'umd'] },\n  rollupOptions: { external: ['react'] }\n}",
		Quiz: []QuizQuestion{
			{
				Question:      "Why would you externalize 'react' in library mode?",
				Options:       []string{"To make it run faster", "To avoid duplicate React instances in the user's app", "To make the file smaller", "React is not allowed in libraries"},
				CorrectAnswer: "To avoid duplicate React instances in the user's app",
				Explanation:   "React relies on a single instance to manage state; having two versions bundled will break the application.",
			},
		},
	},
}
