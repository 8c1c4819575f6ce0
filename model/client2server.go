package model

// ClientMessage is one request from a player. Throw asks the server to roll
// the die instead of using Roll. Reset starts a new game once one is won.
type ClientMessage struct {
	Roll  int
	Throw bool
	Reset bool
}
