package pathclean

// TextPath is the capability a structured path representation needs in
// order to opt in to lexical cleaning: yield its textual form and
// rebuild a value of the same representation from cleaned text.
//
// Text reports false when the value has no representable textual form.
type TextPath interface {
	Text() (string, bool)
	FromText(text string) TextPath
}

// CleanPath applies Clean to the textual form of p and reconstructs a
// value of the same representation from the result. A value whose
// textual form is not representable is treated as the empty path, which
// cleans to "." — callers that need lossless round-tripping of
// non-textual representations should not rely on CleanPath.
func CleanPath(p TextPath) TextPath {
	text, ok := p.Text()
	if !ok {
		text = ""
	}
	return p.FromText(Clean(text))
}

// Path is a slash-separated path held as a string.
type Path string

func (p Path) Text() (string, bool) { return string(p), true }

func (p Path) FromText(text string) TextPath { return Path(text) }

// Clean returns the cleaned form of p.
func (p Path) Clean() Path { return Path(Clean(string(p))) }

func (p Path) String() string { return string(p) }
