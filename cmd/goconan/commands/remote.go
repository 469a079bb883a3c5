package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/goconan/internal/conan"
	"github.com/thoreinstein/goconan/internal/errors"
)

var (
	remoteListJSON  bool
	remoteAddInsert int
	remoteAddForce  bool
	remoteAddNoSSL  bool
)

func init() {
	remoteListCmd.Flags().BoolVar(&remoteListJSON, "json", false, "Output in JSON format")

	remoteAddCmd.Flags().IntVar(&remoteAddInsert, "insert", -1,
		"insert the remote at the given listing index")
	remoteAddCmd.Flags().BoolVar(&remoteAddForce, "force", false,
		"overwrite an existing remote with the same name")
	remoteAddCmd.Flags().BoolVar(&remoteAddNoSSL, "no-verify-ssl", false,
		"disable SSL verification for the remote")

	remoteCmd.AddCommand(remoteListCmd)
	remoteCmd.AddCommand(remoteAddCmd)
	remoteCmd.AddCommand(remoteRemoveCmd)
	rootCmd.AddCommand(remoteCmd)
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Manage conan remotes",
	Long: `Manage the package repositories conan fetches from.

Remotes are stored in conan's own configuration; these commands drive
conan rather than keeping a separate registry.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var remoteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured remotes",
	Long: `List the remotes configured in conan, in conan's listing order.

Example:
  goconan remote list
  goconan remote list --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRemoteList(cmd.Context(), os.Stdout)
	},
}

// remoteJSON is the JSON output shape for a remote.
type remoteJSON struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	VerifySSL *bool  `json:"verify_ssl,omitempty"`
}

func runRemoteList(ctx context.Context, w io.Writer) error {
	tool, err := resolveConan()
	if err != nil {
		return err
	}

	remotes, err := tool.Remotes(ctx)
	if err != nil {
		if errors.Is(err, conan.ErrMalformedRemoteList) {
			return errors.NewSystemError(err, "Run: conan remote list --raw")
		}
		return err
	}

	if remoteListJSON {
		out := make([]remoteJSON, len(remotes))
		for i, r := range remotes {
			out[i] = remoteJSON{Name: r.Name, URL: r.URL, VerifySSL: r.VerifySSL}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	return writeRemoteTable(w, remotes)
}

func writeRemoteTable(w io.Writer, remotes []conan.Remote) error {
	if len(remotes) == 0 {
		fmt.Fprintln(w, "(no remotes configured)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tURL\tVERIFY SSL")
	for _, r := range remotes {
		verify := "-"
		if r.VerifySSL != nil {
			if *r.VerifySSL {
				verify = "true"
			} else {
				verify = "false"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, truncate(r.URL, 60), verify)
	}
	return tw.Flush()
}

var remoteAddCmd = &cobra.Command{
	Use:   "add NAME URL",
	Short: "Add a remote",
	Long: `Register a package repository with conan.

Example:
  goconan remote add conan-center https://center.conan.io
  goconan remote add internal https://conan.example.com --insert 0 --force`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemoteAdd(cmd.Context(), args[0], args[1])
	},
}

func runRemoteAdd(ctx context.Context, name, url string) error {
	tool, err := resolveConan()
	if err != nil {
		return err
	}

	remote := conan.NewRemote(name, url)
	if remoteAddNoSSL {
		verify := false
		remote.VerifySSL = &verify
	}

	opts := conan.AddRemoteOptions{Force: remoteAddForce}
	if remoteAddInsert >= 0 {
		opts.InsertAt = &remoteAddInsert
	}

	return tool.AddRemote(ctx, remote, opts)
}

var remoteRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a remote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, err := resolveConan()
		if err != nil {
			return err
		}
		return tool.RemoveRemote(cmd.Context(), args[0])
	},
}
