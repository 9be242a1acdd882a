package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func page(title, stylesheet string, body func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`)
		h.text(title)
		h.raw(`</title>
    <link rel="stylesheet" href="`)
		h.text(assetPath(stylesheet))
		h.raw(`"/>
  </head>
  <body>
`)
		body(h)
		h.raw(`  </body>
</html>
`)
		return h.err
	})
}

// NotFound is the 404 page shared by the public and admin screens.
func NotFound() templ.Component {
	return page("Page not found", "/static/polls.css", func(h *htmlWriter) {
		h.raw(`    <main class="shell">
      <h1>Not Found</h1>
      <p>The requested resource was not found on this server.</p>
    </main>
`)
	})
}

func ServerError() templ.Component {
	return page("Server error", "/static/polls.css", func(h *htmlWriter) {
		h.raw(`    <main class="shell">
      <h1>Server Error (500)</h1>
      <p>Something went wrong while handling the request.</p>
    </main>
`)
	})
}
