package web

import (
	"polls/internal/polls"

	"github.com/a-h/templ"
)

// NoPollsMessage is rendered when the index has nothing to show.
const NoPollsMessage = "No polls are available."

type IndexData struct {
	BasePath  string
	Questions []polls.Question
}

type DetailData struct {
	BasePath     string
	Question     polls.Question
	ErrorMessage string
}

type ResultsData struct {
	BasePath string
	Question polls.Question
}

func Index(data IndexData) templ.Component {
	return page("Polls", "/static/polls.css", func(h *htmlWriter) {
		h.raw("    <main class=\"shell\">\n      <h1>Latest polls</h1>\n")
		if len(data.Questions) == 0 {
			h.raw("      <p>")
			h.text(NoPollsMessage)
			h.raw("</p>\n")
		} else {
			h.raw("      <ul class=\"questions\">\n")
			for _, q := range data.Questions {
				h.raw(`        <li><a href="`)
				h.text(DetailPath(data.BasePath, q.ID))
				h.raw(`">`)
				h.text(q.QuestionText)
				h.raw("</a></li>\n")
			}
			h.raw("      </ul>\n")
		}
		h.raw("    </main>\n")
	})
}

func Detail(data DetailData) templ.Component {
	q := data.Question
	return page(q.QuestionText, "/static/polls.css", func(h *htmlWriter) {
		h.raw(`    <main class="shell">
      <form action="`)
		h.text(VotePath(data.BasePath, q.ID))
		h.raw(`" method="post">
        <fieldset>
          <legend><h1>`)
		h.text(q.QuestionText)
		h.raw("</h1></legend>\n")
		if data.ErrorMessage != "" {
			h.raw(`          <p class="error"><strong>`)
			h.text(data.ErrorMessage)
			h.raw("</strong></p>\n")
		}
		for i, choice := range q.Choices {
			id := "choice" + itoa(i+1)
			h.rawf(`          <input type="radio" name="choice" id="%s" value="%s"/>`, id, utoa(choice.ID))
			h.rawf(`<label for="%s">`, id)
			h.text(choice.ChoiceText)
			h.raw("</label><br/>\n")
		}
		h.raw(`        </fieldset>
        <input type="submit" value="Vote"/>
      </form>
      <p><a href="`)
		h.text(IndexPath(data.BasePath))
		h.raw(`">Back to polls</a></p>
    </main>
`)
	})
}

func Results(data ResultsData) templ.Component {
	q := data.Question
	return page(q.QuestionText, "/static/polls.css", func(h *htmlWriter) {
		h.raw("    <main class=\"shell\">\n      <h1>")
		h.text(q.QuestionText)
		h.raw("</h1>\n      <ul class=\"results\">\n")
		for _, choice := range q.Choices {
			h.raw("        <li>")
			h.text(choice.ChoiceText)
			h.rawf(" -- %d %s</li>\n", choice.Votes, pluralize(choice.Votes, "vote", "votes"))
		}
		h.raw("      </ul>\n      <p>")
		h.rawf("%d %s in total", q.TotalVotes(), pluralize(q.TotalVotes(), "vote", "votes"))
		h.raw("</p>\n      <a href=\"")
		h.text(DetailPath(data.BasePath, q.ID))
		h.raw("\">Vote again?</a>\n    </main>\n")
	})
}
