package types

type CreateReviewRequest struct {
	ProductID  uint64   `json:"productId"`
	Rating     *float64 `json:"rating"`
	Comment    string   `json:"comment"`
	AuthorName string   `json:"author_name"`
}

type ListReviewsRequest struct {
	ProductID string `form:"productId"`
}
