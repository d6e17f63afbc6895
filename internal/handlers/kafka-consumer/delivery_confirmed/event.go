package delivery_confirmed

type confirmedEvent struct {
	OrderNumber string `json:"orderNumber"`
	Signature   string `json:"signature"`
}
