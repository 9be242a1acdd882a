package web

import "time"

func adminHeader(h *htmlWriter, crumbs ...string) {
	h.raw(`    <header class="admin-header">
      <a class="brand" href="/admin/">Polls administration</a>
    </header>
    <nav class="breadcrumbs"><a href="/admin/">Home</a>`)
	for i := 0; i+1 < len(crumbs); i += 2 {
		h.raw(" &rsaquo; ")
		if crumbs[i+1] == "" {
			h.text(crumbs[i])
			continue
		}
		h.raw(`<a href="`)
		h.text(crumbs[i+1])
		h.raw(`">`)
		h.text(crumbs[i])
		h.raw("</a>")
	}
	h.raw("</nav>\n")
}

func adminFlash(h *htmlWriter, message string) {
	if message == "" {
		return
	}
	h.raw(`    <ul class="messagelist"><li class="success">`)
	h.text(message)
	h.raw("</li></ul>\n")
}

func booleanIcon(h *htmlWriter, value bool) {
	if value {
		h.raw(`<span class="bool yes" title="True">&#10004;</span>`)
		return
	}
	h.raw(`<span class="bool no" title="False">&#10008;</span>`)
}

func adminTime(value time.Time) string {
	return formatTime(value)
}
