package repositories

// Collection keys. Change events are tagged with these, so readers
// subscribe to the same names the repositories write under.
const (
	UsersKey    = "users"
	TablesKey   = "tables"
	SongsKey    = "songs"
	PrefsKey    = "prefs"
	WishlistKey = "wishlist"
	SessionKey  = "session"
)
