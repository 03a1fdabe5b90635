package request

import (
	"hotel-front/internal/domain/schedule"
	"hotel-front/internal/infra/upstream"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type AvailableRoomsQuery struct {
	CheckIn  string `form:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut string `form:"checkOut" binding:"required,datetime=2006-01-02"`
	Guests   int    `form:"guests" binding:"required,min=1"`
}

type WeekQuery struct {
	Date   string   `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Status []string `form:"status"`
}

func (q WeekQuery) Statuses() ([]schedule.SlotStatus, error) {
	statuses := make([]schedule.SlotStatus, 0, len(q.Status))
	for _, s := range q.Status {
		status, err := schedule.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

type RoomRequest struct {
	Number      string `json:"number" binding:"required,notblank,max=10"`
	StandardID  int64  `json:"standardId" binding:"required,gt=0"`
	Description string `json:"description"`
}

func (r RoomRequest) ToUpstream() (upstream.Room, error) {
	var room upstream.Room
	err := copier.Copy(&room, &r)
	return room, err
}

type RoomStandardRequest struct {
	Name          string          `json:"name" binding:"required,notblank"`
	Description   string          `json:"description"`
	Capacity      int             `json:"capacity" binding:"required,min=1"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
}

func (r RoomStandardRequest) ToUpstream() (upstream.RoomStandard, error) {
	var standard upstream.RoomStandard
	err := copier.Copy(&standard, &r)
	return standard, err
}

type ServiceRequest struct {
	Title       string          `json:"title" binding:"required,notblank"`
	Description string          `json:"description"`
	Duration    int             `json:"duration" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
}

func (r ServiceRequest) ToUpstream() (upstream.Service, error) {
	var service upstream.Service
	err := copier.Copy(&service, &r)
	return service, err
}
