package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dwh-cli",
		Short: "DWH CLI tool",
		Long:  `A command line interface for the ledger data warehouse API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the DWH API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	var wait time.Duration
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			if wait > 0 {
				return waitHealthy(cmd.OutOrStdout(), wait)
			}
			return getJSON(cmd.OutOrStdout(), "/health")
		},
	}
	healthCmd.Flags().DurationVar(&wait, "wait", 0, "Keep retrying until healthy or the duration elapses")
	rootCmd.AddCommand(healthCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "tenants",
		Short: "List registered tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(cmd.OutOrStdout(), "/api/v1/tenants")
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "account <tenant> <name>",
		Short: "Show an account's metadata and current balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(cmd.OutOrStdout(), fmt.Sprintf("/api/v1/tenants/%s/accounts/%s", args[0], args[1]))
		},
	})

	var currency, above string
	accountsCmd := &cobra.Command{
		Use:   "accounts <tenant>",
		Short: "List a tenant's accounts by currency or change threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/tenants/%s/accounts/", args[0])
			switch {
			case currency != "":
				path += "?currency=" + currency
			case above != "":
				path += "?above=" + above
			default:
				return fmt.Errorf("pass --currency or --above")
			}
			return getJSON(cmd.OutOrStdout(), path)
		},
	}
	accountsCmd.Flags().StringVar(&currency, "currency", "", "Filter by currency code")
	accountsCmd.Flags().StringVar(&above, "above", "", "Filter by absolute balance change threshold")
	rootCmd.AddCommand(accountsCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Trigger a sync run",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON(cmd.OutOrStdout(), "/api/v1/sync")
		},
	})

	return rootCmd
}

func waitHealthy(out io.Writer, wait time.Duration) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = wait

	return backoff.Retry(func() error {
		client := &http.Client{Timeout: timeout}
		resp, err := client.Get(baseURL + "/health")
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("service not healthy (status %d)", resp.StatusCode)
		}

		fmt.Fprintln(out, "healthy")
		return nil
	}, policy)
}

func getJSON(out io.Writer, path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return err
	}
	return printResponse(out, resp)
}

func postJSON(out io.Writer, path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", nil)
	if err != nil {
		return err
	}
	return printResponse(out, resp)
}

func printResponse(out io.Writer, resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var pretty json.RawMessage
	if err := json.Unmarshal(body, &pretty); err != nil {
		return fmt.Errorf("unexpected response (status %d): %s", resp.StatusCode, string(body))
	}

	formatted, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(formatted))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}
