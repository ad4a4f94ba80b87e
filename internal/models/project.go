package models

// Project represents a portfolio project card
type Project struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Category    string   `yaml:"category" json:"category"`
	Tone        string   `yaml:"tone" json:"tone,omitempty"` // pill color variant: blue, green
	Description string   `yaml:"description" json:"description"`
	TechStack   []string `yaml:"tech_stack" json:"tech_stack"`
	Links       []Link   `yaml:"links" json:"links"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
