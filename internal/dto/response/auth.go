package response

import (
	"encoding/json"
	"strings"
)

type SessionStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Redirect      string `json:"redirect,omitempty"`
}

type LoginResponse struct {
	Authenticated bool   `json:"authenticated"`
	CenterID      string `json:"center_id,omitempty"`
	Redirect      string `json:"redirect"`
}

// RemoteLoginResponse accepts both field spellings the remote API uses.
type RemoteLoginResponse struct {
	AccessToken string          `json:"accessToken"`
	Token       string          `json:"token"`
	UserData    json.RawMessage `json:"userData"`
	User        json.RawMessage `json:"user"`
}

func (r *RemoteLoginResponse) BearerToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

// UserJSON returns the user object, or nil when the response had none.
func (r *RemoteLoginResponse) UserJSON() json.RawMessage {
	if isPresent(r.UserData) {
		return r.UserData
	}
	if isPresent(r.User) {
		return r.User
	}
	return nil
}

func isPresent(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}
