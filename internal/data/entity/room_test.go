package entity

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestAmenitiesForPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  []string
	}{
		{price: 0, want: []string{"wifi", "tv"}},
		{price: 120, want: []string{"wifi", "tv"}},
		{price: 149.99, want: []string{"wifi", "tv"}},
		{price: 150, want: []string{"wifi", "tv", "coffee"}},
		{price: 199.5, want: []string{"wifi", "tv", "coffee"}},
		{price: 200, want: []string{"wifi", "tv", "coffee", "car"}},
		{price: 1000, want: []string{"wifi", "tv", "coffee", "car"}},
	}

	for _, tt := range tests {
		got := Room{Price: tt.price}.Amenities()
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("price %v: expected %v, got %v", tt.price, tt.want, got)
		}
	}
}

func TestRoomIDKeepsJSONForm(t *testing.T) {
	var rooms []Room
	payload := `[{"id":7,"name":"A","price":120},{"id":"r-9","name":"B","price":220}]`
	if err := json.Unmarshal([]byte(payload), &rooms); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if rooms[0].ID.String() != "7" || rooms[1].ID.String() != "r-9" {
		t.Fatalf("unexpected ids %q %q", rooms[0].ID, rooms[1].ID)
	}

	numeric, _ := json.Marshal(rooms[0].ID)
	if string(numeric) != "7" {
		t.Fatalf("expected numeric id to stay a number, got %s", numeric)
	}
	text, _ := json.Marshal(rooms[1].ID)
	if string(text) != `"r-9"` {
		t.Fatalf("expected string id to stay a string, got %s", text)
	}
	if rooms[0].ID != NewNumericRoomID(7) {
		t.Fatal("expected ids to compare by value")
	}
}

func TestRoomIDNull(t *testing.T) {
	var rooms []Room
	if err := json.Unmarshal([]byte(`[{"id":null,"name":"A","price":120}]`), &rooms); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !rooms[0].ID.IsZero() {
		t.Fatalf("expected zero id, got %q", rooms[0].ID)
	}

	out, err := json.Marshal(rooms[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !json.Valid(out) {
		t.Fatalf("invalid JSON %q", out)
	}
	if !strings.Contains(string(out), `"id":null`) {
		t.Fatalf("expected null id, got %s", out)
	}
}

func TestRoomPriceLabel(t *testing.T) {
	if got := (Room{Price: 220}).PriceLabel(); got != "SAR 220" {
		t.Fatalf("expected SAR 220, got %q", got)
	}
	if got := (Room{Price: 99.5}).PriceLabel(); got != "SAR 99.5" {
		t.Fatalf("expected SAR 99.5, got %q", got)
	}
}

func TestCenterIDFromUserData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string", raw: `{"centerId":"c1","name":"Ada"}`, want: "c1"},
		{name: "number", raw: `{"centerId":42}`, want: "42"},
		{name: "missing", raw: `{"name":"Ada"}`, want: ""},
		{name: "empty", raw: "", want: ""},
		{name: "garbled", raw: `{not json`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterIDFromUserData(tt.raw); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStringRoomIDStaysString(t *testing.T) {
	id := NewRoomID("r-7")
	if id.IsZero() {
		t.Fatal("expected a non-zero id")
	}
	b, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"r-7"` {
		t.Fatalf("expected quoted id, got %s", b)
	}
	if !(RoomID{}).IsZero() {
		t.Fatal("expected zero id")
	}
}
