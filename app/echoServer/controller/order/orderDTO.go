package order

type UpdateStatusReq struct {
	Status int `json:"status" validate:"gte=0,lte=8"`
}
