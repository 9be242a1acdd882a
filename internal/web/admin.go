package web

import (
	"github.com/a-h/templ"
)

const adminStylesheet = "/static/admin.css"

func AdminIndex(data AdminIndexData) templ.Component {
	return page("Site administration", adminStylesheet, func(h *htmlWriter) {
		adminHeader(h)
		adminFlash(h, data.Flash)
		h.raw(`    <main class="admin">
      <h1>Site administration</h1>
      <table class="app-list">
        <caption>Polls</caption>
        <tr>
          <th scope="row"><a href="`)
		h.text(AdminQuestionsPath)
		h.raw(`">Questions</a></th>
          <td class="count">`)
		h.rawf("%d", data.QuestionCount)
		h.raw(`</td>
          <td><a class="addlink" href="`)
		h.text(AdminAddPath)
		h.raw(`">Add</a></td>
        </tr>
      </table>
    </main>
`)
	})
}

func AdminQuestionList(data AdminQuestionListData) templ.Component {
	return page("Select question to change", adminStylesheet, func(h *htmlWriter) {
		adminHeader(h, "Polls", "", "Questions", "")
		adminFlash(h, data.Flash)
		h.raw(`    <main class="admin changelist">
      <h1>Select question to change</h1>
      <p><a class="addlink" href="`)
		h.text(AdminAddPath)
		h.raw(`">Add question</a></p>
      <aside class="filter">
        <h2>Filter</h2>
        <h3>By date published</h3>
        <ul>
`)
		for _, link := range data.Filters {
			if link.Selected {
				h.raw(`          <li class="selected">`)
			} else {
				h.raw("          <li>")
			}
			h.raw(`<a href="`)
			h.text(link.URL)
			h.raw(`">`)
			h.text(link.Label)
			h.raw("</a></li>\n")
		}
		h.raw(`        </ul>
      </aside>
      <table class="result-list">
        <thead>
          <tr>
`)
		for _, col := range data.Columns {
			if col.Sorted != "" {
				h.rawf(`            <th class="sorted %s">`, col.Sorted)
			} else {
				h.raw("            <th>")
			}
			if col.URL == "" {
				h.text(col.Label)
			} else {
				h.raw(`<a href="`)
				h.text(col.URL)
				h.raw(`">`)
				h.text(col.Label)
				h.raw("</a>")
			}
			h.raw("</th>\n")
		}
		h.raw("          </tr>\n        </thead>\n        <tbody>\n")
		for _, row := range data.Rows {
			h.raw(`          <tr>
            <th><a href="`)
			h.text(AdminChangePath(row.ID))
			h.raw(`">`)
			h.text(row.QuestionText)
			h.raw("</a></th>\n            <td>")
			h.text(adminTime(row.PubDate))
			h.raw("</td>\n            <td>")
			booleanIcon(h, row.Recent)
			h.raw("</td>\n          </tr>\n")
		}
		h.raw("        </tbody>\n      </table>\n")
		adminPagination(h, data.Pagination)
		h.raw("    </main>\n")
	})
}

func adminPagination(h *htmlWriter, p PaginationData) {
	h.raw(`      <p class="paginator">`)
	if p.HasPrev {
		h.raw(`<a href="`)
		h.text(pageURL(p.BasePath, p.PrevPage))
		h.raw(`">&lsaquo; Previous</a> `)
	}
	if p.TotalPages > 1 {
		h.rawf("Page %d of %d ", p.Page, p.TotalPages)
	}
	if p.HasNext {
		h.raw(`<a href="`)
		h.text(pageURL(p.BasePath, p.NextPage))
		h.raw(`">Next &rsaquo;</a> `)
	}
	h.rawf("%d %s</p>\n", p.Total, pluralize(p.Total, "question", "questions"))
}

func AdminQuestionForm(data AdminQuestionFormData) templ.Component {
	title := "Add question"
	action := AdminAddPath
	if data.QuestionID != 0 {
		title = "Change question"
		action = AdminChangePath(data.QuestionID)
	}
	return page(title, adminStylesheet, func(h *htmlWriter) {
		label := title
		if data.QuestionID != 0 {
			label = data.QuestionText
		}
		adminHeader(h, "Polls", "", "Questions", AdminQuestionsPath, label, "")
		adminFlash(h, data.Flash)
		h.raw("    <main class=\"admin change-form\">\n      <h1>")
		h.text(title)
		h.raw("</h1>\n")
		if data.QuestionID != 0 {
			h.raw(`      <ul class="object-tools"><li><a href="`)
			h.text(AdminHistoryPath(data.QuestionID))
			h.raw(`">History</a></li></ul>` + "\n")
		}
		if len(data.Errors) > 0 {
			h.rawf("      <p class=\"errornote\">Please correct the %s below.</p>\n",
				pluralize(len(data.Errors), "error", "errors"))
		}
		h.raw(`      <form method="post" action="`)
		h.text(action)
		h.raw(`">
        <fieldset class="module">
`)
		fieldError(h, data.Errors["question_text"])
		h.raw(`          <label for="id_question_text">Question text:</label>
          <input type="text" name="question_text" id="id_question_text" maxlength="200" value="`)
		h.text(data.QuestionText)
		h.raw(`"/>
        </fieldset>
        <details class="module collapse"`)
		if data.Errors["pub_date"] != "" {
			h.raw(" open")
		}
		h.raw(`>
          <summary>Date information</summary>
`)
		fieldError(h, data.Errors["pub_date"])
		h.raw(`          <label for="id_pub_date_0">Date published:</label>
          <input type="date" name="pub_date_date" id="id_pub_date_0" value="`)
		h.text(data.PubDateDate)
		h.raw(`"/>
          <input type="time" name="pub_date_time" id="id_pub_date_1" step="1" value="`)
		h.text(data.PubDateTime)
		h.raw(`"/>
        </details>
        <fieldset class="module inline">
          <h2>Choices</h2>
`)
		fieldError(h, data.Errors["choices"])
		h.raw(`          <table>
            <thead><tr><th>Choice text</th><th>Votes</th></tr></thead>
            <tbody>
`)
		for _, choice := range data.Choices {
			h.raw("              <tr class=\"readonly\"><td>")
			h.text(choice.ChoiceText)
			h.rawf("</td><td>%d</td></tr>\n", choice.Votes)
		}
		for i := 0; i < NewChoiceRows; i++ {
			value := ""
			if i < len(data.NewChoices) {
				value = data.NewChoices[i]
			}
			h.rawf(`              <tr><td><input type="text" name="choice_text" id="id_choice_text_%d" maxlength="200" value="`, i)
			h.text(value)
			h.raw(`"/></td><td>0</td></tr>` + "\n")
		}
		h.raw(`            </tbody>
          </table>
        </fieldset>
        <div class="submit-row">
          <input type="submit" class="default" name="_save" value="Save"/>
          <input type="submit" name="_addanother" value="Save and add another"/>
          <input type="submit" name="_continue" value="Save and continue editing"/>
`)
		if data.QuestionID != 0 {
			h.raw(`          <a class="deletelink" href="`)
			h.text(AdminDeletePath(data.QuestionID))
			h.raw(`">Delete</a>` + "\n")
		}
		h.raw("        </div>\n      </form>\n    </main>\n")
	})
}

func fieldError(h *htmlWriter, message string) {
	if message == "" {
		return
	}
	h.raw(`          <ul class="errorlist"><li>`)
	h.text(message)
	h.raw("</li></ul>\n")
}

func AdminQuestionDelete(data AdminQuestionDeleteData) templ.Component {
	q := data.Question
	return page("Are you sure?", adminStylesheet, func(h *htmlWriter) {
		adminHeader(h, "Polls", "", "Questions", AdminQuestionsPath, q.QuestionText, AdminChangePath(q.ID), "Delete", "")
		h.raw(`    <main class="admin delete-confirmation">
      <h1>Are you sure?</h1>
      <p>Are you sure you want to delete the question “`)
		h.text(q.QuestionText)
		h.raw("”? All of the following related items will be deleted:</p>\n      <h2>Objects</h2>\n      <ul>\n        <li>Question: ")
		h.text(q.QuestionText)
		h.raw("\n")
		if len(q.Choices) > 0 {
			h.raw("          <ul>\n")
			for _, choice := range q.Choices {
				h.raw("            <li>Choice: ")
				h.text(choice.ChoiceText)
				h.rawf(" (%d %s)</li>\n", choice.Votes, pluralize(choice.Votes, "vote", "votes"))
			}
			h.raw("          </ul>\n")
		}
		h.raw(`        </li>
      </ul>
      <form method="post" action="`)
		h.text(AdminDeletePath(q.ID))
		h.raw(`">
        <input type="hidden" name="post" value="yes"/>
        <input type="submit" value="Yes, I’m sure"/>
        <a class="cancel-link" href="`)
		h.text(AdminChangePath(q.ID))
		h.raw(`">No, take me back</a>
      </form>
    </main>
`)
	})
}

func AdminQuestionHistory(data AdminQuestionHistoryData) templ.Component {
	return page("Change history: "+data.Label, adminStylesheet, func(h *htmlWriter) {
		if data.Exists {
			adminHeader(h, "Polls", "", "Questions", AdminQuestionsPath, data.Label, AdminChangePath(data.QuestionID), "History", "")
		} else {
			adminHeader(h, "Polls", "", "Questions", AdminQuestionsPath, "History", "")
		}
		h.raw("    <main class=\"admin history\">\n      <h1>Change history: ")
		h.text(data.Label)
		h.raw("</h1>\n")
		if len(data.Events) == 0 {
			h.raw("      <p>This object doesn’t have a change history.</p>\n    </main>\n")
			return
		}
		h.raw(`      <table>
        <thead><tr><th>Date/time</th><th>Action</th><th>Message</th><th>Details</th></tr></thead>
        <tbody>
`)
		for _, event := range data.Events {
			h.raw("          <tr><th>")
			h.text(adminTime(event.When))
			h.raw("</th><td>")
			h.text(event.Action)
			h.raw("</td><td>")
			h.text(event.Message)
			h.raw("</td><td><code>")
			h.text(event.Payload)
			h.raw("</code></td></tr>\n")
		}
		h.raw("        </tbody>\n      </table>\n    </main>\n")
	})
}
