package models

// LinkKind identifies how a link behaves when activated
type LinkKind string

const (
	LinkAnchor   LinkKind = "anchor"   // Scrolls to a section in the same document
	LinkOutbound LinkKind = "outbound" // Opens an external site in a new tab
	LinkPending  LinkKind = "pending"  // Placeholder for a feature that does not exist yet
)

// Link is a single labelled link on the page.
//
// Target depends on Kind: a section id for anchors, an absolute URL for
// outbound links, and the name of the missing feature for pending links.
type Link struct {
	Label  string   `yaml:"label" json:"label"`
	Kind   LinkKind `yaml:"kind" json:"kind"`
	Target string   `yaml:"target" json:"target"`
}

// Href returns the value for the anchor's href attribute
func (l Link) Href() string {
	switch l.Kind {
	case LinkAnchor:
		return "#" + l.Target
	case LinkOutbound:
		return l.Target
	}
	return "#"
}

// Outbound reports whether the link leaves the site
func (l Link) Outbound() bool {
	return l.Kind == LinkOutbound
}

// Pending reports whether the link is inert until its feature ships
func (l Link) Pending() bool {
	return l.Kind == LinkPending
}
