package entities

// PriceSnippet is one market listing. Price is the display string as returned
// by the source (currency symbol included), not a parsed number.
type PriceSnippet struct {
	Title     string `json:"title"`
	Price     string `json:"price"`
	Source    string `json:"source"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// PriceSearchResult is the outcome of a successful lookup. IsMock is set when
// the results are synthetic because no upstream credential is configured.
type PriceSearchResult struct {
	Results []PriceSnippet `json:"results"`
	IsMock  bool           `json:"isMock"`
}
