package models

// Page holds every piece of static copy shown on the portfolio page
type Page struct {
	Lang        string          `yaml:"lang"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Brand       string          `yaml:"brand"`
	Nav         []Link          `yaml:"nav"`
	Hero        Hero            `yaml:"hero"`
	About       Section         `yaml:"about"`
	Projects    ProjectsSection `yaml:"projects"`
	Contact     ContactSection  `yaml:"contact"`
	Footer      Footer          `yaml:"footer"`
}

// Hero is the first screen: an intro block and a highlights card
type Hero struct {
	Badge      string     `yaml:"badge"`
	Heading    string     `yaml:"heading"`
	Name       string     `yaml:"name"`
	NameSuffix string     `yaml:"name_suffix"`
	Subtitle   string     `yaml:"subtitle"`
	Actions    []Link     `yaml:"actions"`
	QuickLinks []Link     `yaml:"quick_links"`
	Highlights Highlights `yaml:"highlights"`
}

// Highlights is the card on the right side of the hero
type Highlights struct {
	Title  string          `yaml:"title"`
	Badge  string          `yaml:"badge"`
	Items  []ChecklistItem `yaml:"items"`
	Groups []TagGroup      `yaml:"groups"`
}

// ChecklistItem is one checked row of the highlights card
type ChecklistItem struct {
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

// TagGroup is a labelled set of chips
type TagGroup struct {
	Label string   `yaml:"label"`
	Dim   bool     `yaml:"dim"`
	Tags  []string `yaml:"tags"`
}

// Section is a titled content block addressable by anchor links.
// Body is Markdown.
type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Hint  string `yaml:"hint"`
	Body  string `yaml:"body"`
}

// ProjectsSection lists the project cards
type ProjectsSection struct {
	Section `yaml:",inline"`
	Items   []Project `yaml:"items"`
}

// ContactSection lists the ways to get in touch
type ContactSection struct {
	Section `yaml:",inline"`
	Entries []ContactEntry `yaml:"entries"`
}

// ContactEntry is a label/value row; URL turns the value into an outbound link
type ContactEntry struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	URL   string `yaml:"url"`
}

// Footer holds the copyright line; the year is prepended at render time
type Footer struct {
	Text string `yaml:"text"`
}

// SectionIDs returns the ids of every anchorable section, in document order
func (p *Page) SectionIDs() []string {
	return []string{p.About.ID, p.Projects.ID, p.Contact.ID}
}
