package bill

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindService     Kind = "service"
	KindReservation Kind = "reservation"
)

var ErrUnknownKind = errors.New("unknown bill element type")

// Element is one line of a guest bill. The set of implementations is closed.
type Element interface {
	Kind() Kind
	Amount() decimal.Decimal
	isElement()
}

type ServiceElement struct {
	ID        int64           `json:"id"`
	ServiceID int64           `json:"serviceId"`
	Title     string          `json:"title"`
	OrderTime string          `json:"orderTime"`
	Price     decimal.Decimal `json:"price"`
}

func (ServiceElement) Kind() Kind                { return KindService }
func (e ServiceElement) Amount() decimal.Decimal { return e.Price }
func (ServiceElement) isElement()                {}

type ReservationElement struct {
	ID         int64           `json:"id"`
	RoomNumber string          `json:"room"`
	CheckIn    string          `json:"checkIn"`
	CheckOut   string          `json:"checkOut"`
	Nights     int             `json:"nights"`
	Price      decimal.Decimal `json:"price"`
}

func (ReservationElement) Kind() Kind                { return KindReservation }
func (e ReservationElement) Amount() decimal.Decimal { return e.Price }
func (ReservationElement) isElement()                {}

// Visitor is the exhaustive matcher over elements.
type Visitor[R any] struct {
	Service     func(ServiceElement) R
	Reservation func(ReservationElement) R
}

func Visit[R any](e Element, v Visitor[R]) R {
	switch el := e.(type) {
	case ServiceElement:
		return v.Service(el)
	case ReservationElement:
		return v.Reservation(el)
	default:
		panic(fmt.Sprintf("bill: unhandled element %T", e))
	}
}

type envelope struct {
	Type Kind `json:"type"`
}

// DecodeElement dispatches on the "type" discriminator.
func DecodeElement(raw json.RawMessage) (Element, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	switch env.Type {
	case KindService:
		var e ServiceElement
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return e, nil
	case KindReservation:
		var e ReservationElement
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, env.Type)
	}
}

func DecodeElements(data []byte) ([]Element, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	out := make([]Element, 0, len(raws))
	for i, raw := range raws {
		e, err := DecodeElement(raw)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Bill groups the elements of one guest bill.
type Bill struct {
	ID       int64
	Elements []Element
}

func (b Bill) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.Elements {
		total = total.Add(e.Amount())
	}
	return total
}

// Subtotals splits the total per element kind.
func (b Bill) Subtotals() map[Kind]decimal.Decimal {
	out := map[Kind]decimal.Decimal{
		KindService:     decimal.Zero,
		KindReservation: decimal.Zero,
	}
	for _, e := range b.Elements {
		out[e.Kind()] = out[e.Kind()].Add(e.Amount())
	}
	return out
}
