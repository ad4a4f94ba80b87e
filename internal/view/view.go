// Package view renders the portfolio page.
package view

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/a-h/templ"

	"devkwon.dev/internal/models"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed static
var embeddedStatic embed.FS

// Renderer produces the page markup from validated content
type Renderer struct {
	page         *models.Page
	now          func() time.Time
	templatesDir string
	tmpl         *template.Template

	about template.HTML
	cards []projectCard
}

// Option customises a Renderer
type Option func(*Renderer)

// WithClock sets the clock the footer year is read from
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithTemplatesDir reads templates from dir on every render instead of the
// embedded copies, so template edits show up without a restart.
func WithTemplatesDir(dir string) Option {
	return func(r *Renderer) {
		r.templatesDir = dir
	}
}

// NewRenderer compiles the templates and pre-renders the Markdown copy
func NewRenderer(page *models.Page, opts ...Option) (*Renderer, error) {
	if page == nil {
		return nil, fmt.Errorf("new renderer: page content is required")
	}

	r := &Renderer{page: page, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	md := newMarkdown()
	about, err := md.Render(page.About.Body)
	if err != nil {
		return nil, fmt.Errorf("render about: %w", err)
	}
	r.about = about

	r.cards = make([]projectCard, 0, len(page.Projects.Items))
	for _, p := range page.Projects.Items {
		desc, err := md.Render(p.Description)
		if err != nil {
			return nil, fmt.Errorf("render project %s: %w", p.ID, err)
		}
		r.cards = append(r.cards, projectCard{Project: p, DescriptionHTML: desc})
	}

	// Parse once up front even in live-reload mode so broken templates fail at startup
	tmpl, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.tmpl = tmpl

	return r, nil
}

// Page returns the page as a templ component. The footer year is read from
// the clock each time the component renders.
func (r *Renderer) Page() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tmpl := r.tmpl
		if r.templatesDir != "" {
			var err error
			if tmpl, err = r.parse(); err != nil {
				return err
			}
		}
		return templ.FromGoHTML(tmpl.Lookup("page"), r.data()).Render(ctx, w)
	})
}

// Render writes the full page document to w
func (r *Renderer) Render(ctx context.Context, w io.Writer) error {
	return r.Page().Render(ctx, w)
}

// Static returns the stylesheet and scripts the page references
func Static() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		// The embed directive guarantees the directory exists
		panic(err)
	}
	return sub
}

func (r *Renderer) parse() (*template.Template, error) {
	var src fs.FS = embeddedTemplates
	pattern := "templates/*.tmpl"
	if r.templatesDir != "" {
		src = os.DirFS(r.templatesDir)
		pattern = "*.tmpl"
	}

	tmpl, err := template.New("_root").Funcs(funcMap).ParseFS(src, pattern)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if tmpl.Lookup("page") == nil {
		return nil, fmt.Errorf("parse templates: no \"page\" template defined")
	}
	return tmpl, nil
}

func (r *Renderer) data() pageData {
	return pageData{
		Page:      r.page,
		Year:      r.now().Year(),
		AboutHTML: r.about,
		Cards:     r.cards,
	}
}
