package web

import "net/url"

const (
	AdminRoot          = "/admin/"
	AdminQuestionsPath = "/admin/polls/question/"
	AdminAddPath       = "/admin/polls/question/add/"
)

func IndexPath(base string) string {
	return base + "/"
}

func DetailPath(base string, id uint) string {
	return base + "/" + utoa(id) + "/"
}

func ResultsPath(base string, id uint) string {
	return base + "/" + utoa(id) + "/results/"
}

func VotePath(base string, id uint) string {
	return base + "/" + utoa(id) + "/vote/"
}

func AdminChangePath(id uint) string {
	return AdminQuestionsPath + utoa(id) + "/change/"
}

func AdminDeletePath(id uint) string {
	return AdminQuestionsPath + utoa(id) + "/delete/"
}

func AdminHistoryPath(id uint) string {
	return AdminQuestionsPath + utoa(id) + "/history/"
}

// AdminListURL builds the change-list URL for a filter/order combination.
func AdminListURL(dateFilter, order string) string {
	values := url.Values{}
	if dateFilter != "" {
		values.Set("pub_date", dateFilter)
	}
	if order != "" {
		values.Set("o", order)
	}
	if len(values) == 0 {
		return AdminQuestionsPath
	}
	return AdminQuestionsPath + "?" + values.Encode()
}
