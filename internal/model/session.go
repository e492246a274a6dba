package model

// Session is what a successful sign-in hands back to the client.
type Session struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
