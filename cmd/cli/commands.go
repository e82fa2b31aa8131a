package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

var (
	venueID   string
	date      string
	userID    string
	sessionID string
)

func init() {
	availabilityCmd.Flags().StringVar(&venueID, "venue", "", "The venue to query")
	availabilityCmd.Flags().StringVar(&date, "date", "", "The date to query (YYYY-MM-DD)")
	availabilityCmd.MarkFlagRequired("venue")
	availabilityCmd.MarkFlagRequired("date")
	bookingsCmd.Flags().StringVar(&userID, "user", "", "The user whose bookings to list")
	bookingsCmd.MarkFlagRequired("user")
	confirmCmd.Flags().StringVar(&sessionID, "session", "", "The session to confirm")
	confirmCmd.MarkFlagRequired("session")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(venuesCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(availabilityCmd)
	rootCmd.AddCommand(bookingsCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "List the venues in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/venues")
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the venue catalog from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/venues/refresh", "")
	},
}

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Show court availability for a venue and date",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		query.Set("venueId", venueID)
		query.Set("date", date)
		query.Set("refresh", "true")
		return performGetRequest("/availability?" + query.Encode())
	},
}

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List a user's confirmed bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/bookings?userId=" + url.QueryEscape(userID))
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Confirm a booking session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/session/confirm", fmt.Sprintf(`{"sessionId":%q}`, sessionID))
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover joinable matches on the Playtomic network",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/discover")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, body string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
