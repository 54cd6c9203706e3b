package handlers

// AdminGate answers whether a user may manage a group's settings. The
// transport layer implements it over the bot API membership lookup.
type AdminGate interface {
	IsAdmin(userID, groupID int64) (bool, error)
}
