package response

import (
	"hotel-front/internal/domain/bill"
	"hotel-front/internal/domain/schedule"
	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	Number        string          `json:"number"`
	StandardID    int64           `json:"standardId"`
	Standard      string          `json:"standard,omitempty"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Description   string          `json:"description,omitempty"`
}

type RoomStandardResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
}

type ServiceResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
}

type GuestResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	BillID    *int64 `json:"billId,omitempty"`
}

// copyList maps upstream models onto response DTOs field by field. Empty
// input renders as [].
func copyList[S, D any](src []S) ([]D, error) {
	dst := make([]D, 0, len(src))
	if len(src) == 0 {
		return dst, nil
	}
	if err := copier.Copy(&dst, &src); err != nil {
		return nil, errs.Wrap(err, "failed to map response list")
	}
	return dst, nil
}

func copyOne[S, D any](src *S) (*D, error) {
	var dst D
	if err := copier.Copy(&dst, src); err != nil {
		return nil, errs.Wrap(err, "failed to map response")
	}
	return &dst, nil
}

func FromRooms(rooms []upstream.Room) ([]RoomResponse, error) {
	return copyList[upstream.Room, RoomResponse](rooms)
}

func FromRoom(room *upstream.Room) (*RoomResponse, error) {
	return copyOne[upstream.Room, RoomResponse](room)
}

func FromRoomStandards(standards []upstream.RoomStandard) ([]RoomStandardResponse, error) {
	return copyList[upstream.RoomStandard, RoomStandardResponse](standards)
}

func FromRoomStandard(standard *upstream.RoomStandard) (*RoomStandardResponse, error) {
	return copyOne[upstream.RoomStandard, RoomStandardResponse](standard)
}

func FromServices(services []upstream.Service) ([]ServiceResponse, error) {
	return copyList[upstream.Service, ServiceResponse](services)
}

func FromService(service *upstream.Service) (*ServiceResponse, error) {
	return copyOne[upstream.Service, ServiceResponse](service)
}

func FromGuests(guests []upstream.Guest) ([]GuestResponse, error) {
	return copyList[upstream.Guest, GuestResponse](guests)
}

// BillElementResponse flattens both element kinds; Type tells them apart.
type BillElementResponse struct {
	Type       bill.Kind       `json:"type"`
	ID         int64           `json:"id"`
	Price      decimal.Decimal `json:"price"`
	ServiceID  int64           `json:"serviceId,omitempty"`
	Title      string          `json:"title,omitempty"`
	OrderTime  string          `json:"orderTime,omitempty"`
	RoomNumber string          `json:"room,omitempty"`
	CheckIn    string          `json:"checkIn,omitempty"`
	CheckOut   string          `json:"checkOut,omitempty"`
	Nights     int             `json:"nights,omitempty"`
}

type BillResponse struct {
	ID        int64                         `json:"id"`
	Elements  []BillElementResponse         `json:"elements"`
	Subtotals map[bill.Kind]decimal.Decimal `json:"subtotals"`
	Total     decimal.Decimal               `json:"total"`
}

var elementResponse = bill.Visitor[BillElementResponse]{
	Service: func(e bill.ServiceElement) BillElementResponse {
		return BillElementResponse{
			Type:      bill.KindService,
			ID:        e.ID,
			Price:     e.Price,
			ServiceID: e.ServiceID,
			Title:     e.Title,
			OrderTime: e.OrderTime,
		}
	},
	Reservation: func(e bill.ReservationElement) BillElementResponse {
		return BillElementResponse{
			Type:       bill.KindReservation,
			ID:         e.ID,
			Price:      e.Price,
			RoomNumber: e.RoomNumber,
			CheckIn:    e.CheckIn,
			CheckOut:   e.CheckOut,
			Nights:     e.Nights,
		}
	},
}

func FromBill(b *bill.Bill) *BillResponse {
	elements := make([]BillElementResponse, 0, len(b.Elements))
	for _, e := range b.Elements {
		elements = append(elements, bill.Visit(e, elementResponse))
	}
	return &BillResponse{
		ID:        b.ID,
		Elements:  elements,
		Subtotals: b.Subtotals(),
		Total:     b.Total(),
	}
}

type WeekResponse struct {
	ServiceID int64                      `json:"serviceId"`
	Start     string                     `json:"start"`
	End       string                     `json:"end"`
	Days      []string                   `json:"days"`
	Slots     map[string][]schedule.Slot `json:"slots"`
}

func FromWeekView(v *queries.WeekView) *WeekResponse {
	slots := v.Slots
	if slots == nil {
		slots = map[string][]schedule.Slot{}
	}
	return &WeekResponse{
		ServiceID: v.ServiceID,
		Start:     v.Start,
		End:       v.End,
		Days:      v.Days,
		Slots:     slots,
	}
}
