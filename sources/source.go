package sources

import "strings"

// Source is one named input text.
type Source struct {
	Name    string
	Content string
	Lines   []string
}

func New(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}
