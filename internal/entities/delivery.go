package entities

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "Pending"
	DeliveryPickedUp  DeliveryStatusType = "Picked Up"
	DeliveryDelivered DeliveryStatusType = "Delivered"
	DeliveryMissing   DeliveryStatusType = "Missing"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

type Delivery struct {
	ID                int64
	OrderNumber       string
	Location          string
	RiderName         string
	StaffName         string
	PickupDate        string
	DeliveryDate      string
	Status            DeliveryStatusType
	CustomerSignature *string
}

// DeliveryModify используется и для создания, и для частичного обновления:
// nil поле означает "не передано".
type DeliveryModify struct {
	OrderNumber       *string
	Location          *string
	RiderName         *string
	StaffName         *string
	PickupDate        *string
	DeliveryDate      *string
	Status            *DeliveryStatusType
	CustomerSignature *string

	// ClearCustomerSignature стирает подпись (явный null в PATCH).
	ClearCustomerSignature bool
}

func (m DeliveryModify) IsEmpty() bool {
	return m.OrderNumber == nil &&
		m.Location == nil &&
		m.RiderName == nil &&
		m.StaffName == nil &&
		m.PickupDate == nil &&
		m.DeliveryDate == nil &&
		m.Status == nil &&
		m.CustomerSignature == nil &&
		!m.ClearCustomerSignature
}

type DeliveryConfirmation struct {
	OrderNumber string
	Signature   string
}

type DeliveryStats struct {
	Total     int64
	Delivered int64
	Pending   int64
	PickedUp  int64
	Missing   int64
}
