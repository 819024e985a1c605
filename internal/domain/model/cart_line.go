package model

// カートの明細1行。商品IDごとに最大1行。
// name / price / image は追加時点のスナップショットで、後から引き直さない。
type CartLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int64  `json:"quantity"`
}
