package discovery

// DiscoveryClient finds joinable matches on the wider Playtomic network, so
// the app can surface open spots beyond its own backend.
type DiscoveryClient interface {
	FindOpenMatches(params *SearchParams) ([]NetworkMatch, error)
}
