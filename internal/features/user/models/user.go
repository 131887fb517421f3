package models

// User is the stored user document. Users are only ever created through
// sign-up; the system never updates or deletes them.
type User struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// SignUpRequest is the POST /sign-up payload.
type SignUpRequest struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}
