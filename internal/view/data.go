package view

import (
	"html/template"

	"devkwon.dev/internal/models"
)

// pageData is the view model handed to the "page" template
type pageData struct {
	*models.Page
	Year      int
	AboutHTML template.HTML
	Cards     []projectCard
}

type projectCard struct {
	models.Project
	DescriptionHTML template.HTML
}

// linkData pairs a link with the CSS class of the slot it is rendered in
type linkData struct {
	Class string
	Link  models.Link
}

var funcMap = template.FuncMap{
	"linkWithClass": func(class string, l models.Link) linkData {
		return linkData{Class: class, Link: l}
	},
	"ctaClass": func(i int) string {
		if i == 0 {
			return "btn btn--primary"
		}
		return "btn btn--ghost"
	},
	"tagGroup": func(tags []string) models.TagGroup {
		return models.TagGroup{Tags: tags}
	},
}
