package extract

import "fmt"

// DefaultFile is the filename used when no file structure can be
// recognized and the whole response is kept as a single document.
const DefaultFile = "index.html"

// Strategy is one way of recognizing named files inside loosely
// structured generated text.
type Strategy struct {
	Name  string
	parse func(text string) *Result
}

// Strategies is the recognition chain in priority order. The generator is
// instructed to use the section format, but generated text drifts into
// markdown conventions, so two markdown-shaped fallbacks follow it.
var Strategies = []Strategy{
	{Name: "sections", parse: parseSections},
	{Name: "headings", parse: parseHeadings},
	{Name: "labels", parse: parseLabels},
}

// Chain resolves strategy names into a recognition chain, preserving the
// given order. With no names it returns the full default chain.
func Chain(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return Strategies, nil
	}
	var chain []Strategy
	for _, name := range names {
		found := false
		for _, s := range Strategies {
			if s.Name == name {
				chain = append(chain, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown strategy %q (must be sections, headings, or labels)", name)
		}
	}
	return chain, nil
}

// Extract recovers named files from response text using the default
// chain. It never fails and never returns an empty result: when no
// strategy yields an entry, the entire text is kept verbatim under
// fallbackName and Result.Fallback is set so the caller can warn.
func Extract(text, fallbackName string) *Result {
	return ExtractWith(Strategies, text, fallbackName)
}

// ExtractWith runs the given chain in order and returns the first
// non-empty result. Once a strategy yields any entry, later strategies
// are not consulted.
func ExtractWith(chain []Strategy, text, fallbackName string) *Result {
	for _, s := range chain {
		if res := s.parse(text); res.Len() > 0 {
			res.Strategy = s.Name
			return res
		}
	}
	res := newResult()
	res.Set(fallbackName, text)
	res.Strategy = "fallback"
	res.Fallback = true
	return res
}
