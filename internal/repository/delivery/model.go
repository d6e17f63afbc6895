package delivery

type DeliveryDB struct {
	ID                int64
	OrderNumber       string
	Location          string
	RiderName         string
	StaffName         string
	PickupDate        string
	DeliveryDate      string
	Status            string
	CustomerSignature *string
}

type DeliveryModifyDB struct {
	OrderNumber       *string
	Location          *string
	RiderName         *string
	StaffName         *string
	PickupDate        *string
	DeliveryDate      *string
	Status            *string
	CustomerSignature *string

	// ClearCustomerSignature пишет NULL в customer_signature
	ClearCustomerSignature bool
}

func (d *DeliveryDB) scanDest() []any {
	return []any{
		&d.ID,
		&d.OrderNumber,
		&d.Location,
		&d.RiderName,
		&d.StaffName,
		&d.PickupDate,
		&d.DeliveryDate,
		&d.Status,
		&d.CustomerSignature,
	}
}
