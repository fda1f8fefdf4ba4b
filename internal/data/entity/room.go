package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Amenity price thresholds.
const (
	PremiumPriceThreshold  = 200.0
	StandardPriceThreshold = 150.0
)

const (
	AmenityWifi   = "wifi"
	AmenityTV     = "tv"
	AmenityCoffee = "coffee"
	AmenityCar    = "car"
)

// RoomID is the catalog's opaque room identifier. The remote API may send it
// as a JSON number or a string; it is written back in the same form.
type RoomID struct {
	value   string
	numeric bool
}

func NewRoomID(value string) RoomID {
	return RoomID{value: value}
}

func NewNumericRoomID(n int64) RoomID {
	return RoomID{value: strconv.FormatInt(n, 10), numeric: true}
}

func (id RoomID) String() string { return id.value }

func (id RoomID) IsZero() bool { return id.value == "" }

func (id RoomID) MarshalJSON() ([]byte, error) {
	if id.value == "" {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *RoomID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = RoomID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RoomID{value: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("room id must be a string or number: %w", err)
	}
	*id = RoomID{value: n.String(), numeric: true}
	return nil
}

// Room is a bookable meeting room as listed by the remote catalog.
type Room struct {
	ID          RoomID  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Amenities derives the amenity tags shown on a room card from its price.
func (r Room) Amenities() []string {
	return AmenitiesForPrice(r.Price)
}

func AmenitiesForPrice(price float64) []string {
	switch {
	case price >= PremiumPriceThreshold:
		return []string{AmenityWifi, AmenityTV, AmenityCoffee, AmenityCar}
	case price >= StandardPriceThreshold:
		return []string{AmenityWifi, AmenityTV, AmenityCoffee}
	default:
		return []string{AmenityWifi, AmenityTV}
	}
}

// PriceLabel formats the price the way the room card shows it.
func (r Room) PriceLabel() string {
	return "SAR " + strconv.FormatFloat(r.Price, 'f', -1, 64)
}
