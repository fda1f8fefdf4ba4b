package entity

import (
	"encoding/json"
	"strings"
)

// Keys in the device-local session store.
const (
	SessionKeyAccessToken = "accessToken"
	SessionKeyUserData    = "userData"
)

// SessionContext is what a mounted booking flow needs from the stored login.
// It does not change for the lifetime of the flow.
type SessionContext struct {
	AccessToken string
	CenterID    string
}

// CenterIDFromUserData pulls centerId out of the stored user JSON. Missing or
// malformed data yields "".
func CenterIDFromUserData(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	var user struct {
		CenterID json.RawMessage `json:"centerId"`
	}
	if err := json.Unmarshal([]byte(raw), &user); err != nil || len(user.CenterID) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(user.CenterID, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(user.CenterID, &n); err == nil {
		return n.String()
	}
	return ""
}
