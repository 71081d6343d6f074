package domain

// Session holds the identity of the signed-in user. An empty UserName
// means logged out; there is no token or credential behind it.
type Session struct {
	UserName string `json:"user_name"`
}

// LoggedIn returns true if a user is signed in.
func (s Session) LoggedIn() bool {
	return s.UserName != ""
}
