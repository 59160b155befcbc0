package response

import "paint_estimator/internal/domain/entities"

type PriceSnippetResponse struct {
	Title      string   `json:"title" example:"Dulux Trade Vinyl Matt - Pure Brilliant White - 5L"`
	Price      string   `json:"price" example:"£42.00"`
	Source     string   `json:"source" example:"Mock Hardware Store"`
	Link       string   `json:"link" example:"#"`
	Thumbnail  string   `json:"thumbnail,omitempty"`
	PriceValue *float64 `json:"price_value,omitempty" example:"42"`
}

// PriceSearchResponse keeps the isMock spelling the web client reads.
type PriceSearchResponse struct {
	Results []PriceSnippetResponse `json:"results"`
	IsMock  bool                   `json:"isMock"`
}

func FromPriceSearchResult(r entities.PriceSearchResult) PriceSearchResponse {
	out := PriceSearchResponse{
		Results: make([]PriceSnippetResponse, 0, len(r.Results)),
		IsMock:  r.IsMock,
	}
	for _, s := range r.Results {
		snippet := PriceSnippetResponse{
			Title:     s.Title,
			Price:     s.Price,
			Source:    s.Source,
			Link:      s.Link,
			Thumbnail: s.Thumbnail,
		}
		if d, ok := ParseDisplayPrice(s.Price); ok {
			v := d.InexactFloat64()
			snippet.PriceValue = &v
		}
		out.Results = append(out.Results, snippet)
	}
	return out
}
