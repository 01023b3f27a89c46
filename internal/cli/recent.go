package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/justyntemme/scribe/internal/recents"
)

var (
	recentLimit int
	recentJSON  bool
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dbPath
		if path == "" {
			path = recents.DefaultPath()
		}
		db := recents.NewDB()
		if err := db.Open(path); err != nil {
			return fmt.Errorf("open recent files: %w", err)
		}
		defer db.Close()

		entries, err := db.Recent(recentLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if recentJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			_, _ = dimColor.Fprintln(out, "No recent files")
			return nil
		}
		_, _ = headerColor.Fprintln(out, "▸ Recent files")
		for _, e := range entries {
			_, _ = fmt.Fprintf(out, "  %s  ", e.OpenedAt.Format("2006-01-02 15:04"))
			_, _ = valueColor.Fprintf(out, "%s", e.Path)
			if e.Count > 1 {
				_, _ = dimColor.Fprintf(out, " (%d)", e.Count)
			}
			_, _ = fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 20, "Number of files to list")
	recentCmd.Flags().BoolVar(&recentJSON, "json", false, "Output in JSON format")
}
