// marketoctl is a small CLI around the marketo client, useful for
// verifying credentials and poking REST endpoints from a shell.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aramnhammer/marketo-go/pkg/marketo"
	"github.com/aramnhammer/marketo-go/pkg/slogx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "marketoctl",
		Short: "Authenticate against and call a Marketo-style REST API",
		Long: "marketoctl reads MARKETO_IDENTITY_URL, MARKETO_CLIENT_ID and\n" +
			"MARKETO_CLIENT_SECRET from the environment (or a .env file) and\n" +
			"issues authenticated calls against the backend API.",
		SilenceUsage: true,
	}

	root.AddCommand(newTokenCmd())
	root.AddCommand(newCallCmd())
	root.AddCommand(newLeadCmd())
	root.AddCommand(newUsageCmd())

	return root
}

// newClient loads configuration and constructs a ready-to-use client.
func newClient() (*marketo.Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := slogx.New(slogx.Config{
		Service: "marketoctl",
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	opts := []marketo.Option{marketo.WithLogger(logger)}
	if cfg.RestURL != "" {
		opts = append(opts, marketo.WithRestBaseURL(cfg.RestURL))
	}

	return marketo.New(cfg.IdentityURL, cfg.ClientID, cfg.ClientSecret, opts...)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Perform the client-credentials exchange and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Authenticate(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func newCallCmd() *cobra.Command {
	var params map[string]string
	var body string

	cmd := &cobra.Command{
		Use:   "call <method> <endpoint>",
		Short: "Issue one authenticated REST call and print the JSON response",
		Example: "  marketoctl call GET v1/campaigns.json --param batchSize=10\n" +
			"  marketoctl call POST v1/leads.json --body '{\"input\":[{\"email\":\"a@b.c\"}]}'",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := marketo.ParseMethod(args[0])
			if err != nil {
				return err
			}

			var payload any
			if body != "" {
				if err := json.Unmarshal([]byte(body), &payload); err != nil {
					return fmt.Errorf("invalid --body: %w", err)
				}
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Execute(cmd.Context(), method, args[1], params, payload)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringToStringVar(&params, "param", nil, "query parameter as key=value (repeatable)")
	cmd.Flags().StringVar(&body, "body", "", "JSON request body for POST/PUT")

	return cmd
}

func newLeadCmd() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "lead <id>",
		Short: "Fetch a single lead by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("lead id must be numeric: %w", err)
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			lead, err := client.GetLeadByID(cmd.Context(), id, fields...)
			if err != nil {
				return err
			}
			if lead == nil {
				return fmt.Errorf("lead %d not found", id)
			}

			return printJSON(cmd.OutOrStdout(), lead)
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "lead fields to request (comma-separated)")

	return cmd
}

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Print today's API usage counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			usage, err := client.GetDailyUsage(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), usage)
		},
	}
}
