package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"devkwon.dev/internal/models"
)

// ProjectCount is the number of project cards the page lays out
const ProjectCount = 2

// NavLinkCount is the number of anchor links in the header
const NavLinkCount = 3

// Validate checks the structural rules the page layout depends on and
// reports every violation at once.
func Validate(p *models.Page) error {
	var errs []error

	sections := make(map[string]bool)
	for _, id := range p.SectionIDs() {
		if id == "" {
			errs = append(errs, errors.New("section id must not be empty"))
			continue
		}
		if sections[id] {
			errs = append(errs, fmt.Errorf("duplicate section id %q", id))
		}
		sections[id] = true
	}

	if len(p.Nav) != NavLinkCount {
		errs = append(errs, fmt.Errorf("nav: want %d links, got %d", NavLinkCount, len(p.Nav)))
	}
	for i, l := range p.Nav {
		if l.Kind != models.LinkAnchor {
			errs = append(errs, fmt.Errorf("nav[%d]: want anchor link, got %q", i, l.Kind))
		}
	}

	groups := []linkGroup{
		{"nav", p.Nav},
		{"hero.actions", p.Hero.Actions},
		{"hero.quick_links", p.Hero.QuickLinks},
	}
	for _, proj := range p.Projects.Items {
		groups = append(groups, linkGroup{"projects." + proj.ID, proj.Links})
	}
	for _, g := range groups {
		for i, l := range g.links {
			if err := validateLink(l, sections); err != nil {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", g.scope, i, err))
			}
		}
	}

	if len(p.Projects.Items) != ProjectCount {
		errs = append(errs, fmt.Errorf("projects: want %d items, got %d", ProjectCount, len(p.Projects.Items)))
	}
	ids := make(map[string]bool)
	for i, proj := range p.Projects.Items {
		switch {
		case proj.ID == "":
			errs = append(errs, fmt.Errorf("projects[%d]: id must not be empty", i))
		case ids[proj.ID]:
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %q", i, proj.ID))
		}
		ids[proj.ID] = true
		if strings.TrimSpace(proj.Title) == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title must not be empty", i))
		}
		if strings.TrimSpace(proj.Description) == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: description must not be empty", i))
		}
		if len(proj.TechStack) == 0 {
			errs = append(errs, fmt.Errorf("projects[%d]: at least one tech tag required", i))
		}
	}

	for i, c := range p.Contact.Entries {
		if c.Label == "" || c.Value == "" {
			errs = append(errs, fmt.Errorf("contact[%d]: label and value are required", i))
		}
		if c.URL != "" {
			if err := validateURL(c.URL); err != nil {
				errs = append(errs, fmt.Errorf("contact[%d]: %w", i, err))
			}
		}
	}

	if strings.TrimSpace(p.Footer.Text) == "" {
		errs = append(errs, errors.New("footer: text must not be empty"))
	}

	return errors.Join(errs...)
}

type linkGroup struct {
	scope string
	links []models.Link
}

func validateLink(l models.Link, sections map[string]bool) error {
	if strings.TrimSpace(l.Label) == "" {
		return errors.New("label must not be empty")
	}
	switch l.Kind {
	case models.LinkAnchor:
		if !sections[l.Target] {
			return fmt.Errorf("anchor target %q does not match any section", l.Target)
		}
	case models.LinkOutbound:
		return validateURL(l.Target)
	case models.LinkPending:
		if l.Target == "" {
			return errors.New("pending link must name its feature")
		}
	default:
		return fmt.Errorf("unknown link kind %q", l.Kind)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("url %q must be absolute http(s)", raw)
	}
	return nil
}
