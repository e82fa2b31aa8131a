package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rafa-garcia/go-playtomic-api/client"
	"github.com/rafa-garcia/go-playtomic-api/models"
)

// APIClient discovers matches through the public Playtomic API.
type APIClient struct {
	apiClient *client.Client
}

// NewClient creates a new discovery client.
func NewClient() DiscoveryClient {
	return &APIClient{
		apiClient: client.NewClient(
			client.WithTimeout(10*time.Second),
			client.WithRetries(3),
		),
	}
}

var _ DiscoveryClient = (*APIClient)(nil)

// FindOpenMatches fetches all matches for the given search parameters,
// paging until the last page.
func (c *APIClient) FindOpenMatches(params *SearchParams) ([]NetworkMatch, error) {
	const pageSize = 300
	var (
		allMatches []NetworkMatch
		page       = 0
	)

	for {
		externalParams := &models.SearchMatchesParams{
			SportID:       params.SportID,
			HasPlayers:    params.HasPlayers,
			Sort:          params.Sort,
			TenantIDs:     params.TenantIDs,
			FromStartDate: params.FromStartDate,
			Size:          pageSize,
			Page:          page,
		}

		log.Debug("Searching Playtomic network", "params", externalParams)
		matches, err := c.apiClient.GetMatches(context.Background(), externalParams)
		if err != nil {
			return nil, fmt.Errorf("error searching playtomic network: %w", err)
		}

		for _, m := range matches {
			allMatches = append(allMatches, NetworkMatch{
				MatchID: m.MatchID,
				OwnerID: m.OwnerID,
			})
		}

		// If we got less than pageSize, we've reached the last page
		if len(matches) < pageSize {
			break
		}
		page++
	}
	log.Info("Discovered network matches", "count", len(allMatches))
	return allMatches, nil
}
