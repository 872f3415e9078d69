package model

// Comment is a customer note attached to a product.
type Comment struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Text     string `json:"text"`
	Date     string `json:"date"`
}
