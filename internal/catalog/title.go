package catalog

import "strings"

// Title is one catalog row. Missing source cells are stored as empty strings.
type Title struct {
	// Row is the 0-based position in the source file and the record's identity;
	// Title values are not unique.
	Row         int
	ShowID      string
	Type        string
	Title       string
	Director    string
	Cast        string
	Country     string
	DateAdded   string
	ReleaseYear string
	Rating      string
	Duration    string
	ListedIn    string
	Description string
}

// CombinedText joins the fields used for similarity: description, genres,
// cast, director, and content type.
func (t Title) CombinedText() string {
	return strings.Join([]string{t.Description, t.ListedIn, t.Cast, t.Director, t.Type}, " ")
}

// Documents returns the combined text of every title, in order.
func Documents(titles []Title) []string {
	docs := make([]string, len(titles))
	for i, t := range titles {
		docs[i] = t.CombinedText()
	}
	return docs
}
