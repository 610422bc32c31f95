package entity

// GameSearch carries optional game-list filters. Nil fields mean "no filter";
// call sites start from one of the Default constructors below instead of
// probing the request for a settings payload.
type GameSearch struct {
	MyGames             *bool
	Active              *bool
	MinRows             *int
	MaxRows             *int
	MinColumns          *int
	MaxColumns          *int
	IsPasswordProtected *bool
	IsMutualFollowsOnly *bool
}

// DefaultJoinableSearch is the preset for the discovery listing.
func DefaultJoinableSearch() GameSearch {
	active := true
	return GameSearch{Active: &active}
}

// DefaultMyGamesSearch is the preset for a player's own games.
func DefaultMyGamesSearch() GameSearch {
	myGames := true
	return GameSearch{MyGames: &myGames}
}
