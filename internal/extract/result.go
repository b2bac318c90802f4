package extract

// File is a single named file recovered from response text.
type File struct {
	Path    string // relative path as it appeared in the response; untrusted
	Content string // file body with fences and surrounding whitespace removed
}

// Result is an ordered mapping from path to content. Entries keep the
// position of their first occurrence; setting an existing path replaces
// its content in place, so within one strategy the last write wins.
type Result struct {
	files    []File
	index    map[string]int
	Strategy string // name of the strategy that produced the entries
	Fallback bool   // true when no strategy matched and the whole text was kept
}

func newResult() *Result {
	return &Result{index: make(map[string]int)}
}

// Set inserts or overwrites the content for path.
func (r *Result) Set(path, content string) {
	if i, ok := r.index[path]; ok {
		r.files[i].Content = content
		return
	}
	r.index[path] = len(r.files)
	r.files = append(r.files, File{Path: path, Content: content})
}

// Get returns the content for path, if present.
func (r *Result) Get(path string) (string, bool) {
	i, ok := r.index[path]
	if !ok {
		return "", false
	}
	return r.files[i].Content, true
}

// Files returns the entries in first-occurrence order.
func (r *Result) Files() []File {
	return r.files
}

// Len returns the number of entries.
func (r *Result) Len() int {
	return len(r.files)
}
