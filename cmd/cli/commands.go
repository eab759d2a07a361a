package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	searchTerm   string
	historyLimit int
)

var errNoSession = errors.New("no session given, pass --session or set FANTASY_SESSION")

var httpClient = &http.Client{Timeout: 30 * time.Second}

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)

	catalogCmd.Flags().StringVar(&searchTerm, "search", "", "Only list players whose name, position or team contains this term")
	catalogCmd.AddCommand(catalogReloadCmd)
	rootCmd.AddCommand(catalogCmd)

	sessionCmd.AddCommand(sessionCreateCmd, sessionListCmd, sessionShowCmd, sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)

	rosterCmd.AddCommand(rosterShowCmd, rosterAddCmd, rosterRemoveCmd)
	rootCmd.AddCommand(rosterCmd)

	rootCmd.AddCommand(teamCmd, scoreCmd, statsCmd, updatesCmd, syncCmd)

	playersCmd.Flags().StringVar(&searchTerm, "search", "", "Only list players whose name, position or team contains this term")
	rootCmd.AddCommand(playersCmd)

	viewCmd.AddCommand(viewGetCmd, viewSetCmd)
	rootCmd.AddCommand(viewCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum number of entries (server default when 0)")
	rootCmd.AddCommand(historyCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", "")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", "")
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the player catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, withSearch("/api/catalog"), "")
	},
}

var catalogReloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Fetch the player catalog again",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/api/catalog/reload", "")
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage roster sessions",
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a session seeded with the default roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/api/sessions", "")
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the open sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/sessions", "")
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the session summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodGet, "", "")
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodDelete, "", "")
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Show or change the roster",
}

var rosterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodGet, "/roster", "")
	},
}

var rosterAddCmd = &cobra.Command{
	Use:   "add <playerID>",
	Short: "Add a player to the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := playerIDArg(args[0])
		if err != nil {
			return err
		}
		return sessionRequest(http.MethodPost, "/roster/"+id, "")
	},
}

var rosterRemoveCmd = &cobra.Command{
	Use:   "remove <playerID>",
	Short: "Remove a player from the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := playerIDArg(args[0])
		if err != nil {
			return err
		}
		return sessionRequest(http.MethodDelete, "/roster/"+id, "")
	},
}

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Show the rostered players with their stats and trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodGet, "/team", "")
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the total score of the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodGet, "/score", "")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the cached stats of the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodGet, "/stats", "")
	},
}

var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "Show the latest updates of the rostered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodGet, "/updates", "")
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the stats of every rostered player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodPost, "/sync", "")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Search the catalog with the roster status of every player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodGet, withSearch("/players"), "")
	},
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Get or set the active view",
}

var viewGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the active view",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodGet, "/view", "")
	},
}

var viewSetCmd = &cobra.Command{
	Use:       "set <home|team|players>",
	Short:     "Select the active view",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"home", "team", "players"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return sessionRequest(http.MethodPut, "/view", fmt.Sprintf(`{"view":%q}`, args[0]))
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <playerID>",
	Short: "Show the recorded stats of a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := playerIDArg(args[0])
		if err != nil {
			return err
		}
		endpoint := "/api/players/" + id + "/history"
		if historyLimit > 0 {
			endpoint += "?limit=" + strconv.Itoa(historyLimit)
		}
		return performRequest(http.MethodGet, endpoint, "")
	},
}

func playerIDArg(arg string) (string, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("player id %q is not a number", arg)
	}
	return strconv.Itoa(id), nil
}

func withSearch(endpoint string) string {
	if searchTerm == "" {
		return endpoint
	}
	return endpoint + "?search=" + url.QueryEscape(searchTerm)
}

func sessionRequest(method, suffix, body string) error {
	if sessionID == "" {
		return errNoSession
	}
	return performRequest(method, "/api/sessions/"+url.PathEscape(sessionID)+suffix, body)
}

func performRequest(method, endpoint, body string) error {
	target := strings.TrimSuffix(host, "/") + endpoint
	fmt.Printf("Making %s request to %s\n", method, target)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}
