package discovery

// SearchParams defines the parameters for discovering open matches on the
// Playtomic network.
type SearchParams struct {
	SportID       string
	HasPlayers    bool
	Sort          string
	TenantIDs     []string
	FromStartDate string
}

// NetworkMatch is the essential summary of a discoverable match.
type NetworkMatch struct {
	MatchID string
	OwnerID *string
}
