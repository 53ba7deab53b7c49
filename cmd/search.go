package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seralba/spotifind/internal/render"
)

var (
	searchLimit  int
	searchOffset int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog for artists and albums",
	Long: `Search the Spotify catalog for artists and albums.

Results are shown as two tables with the IDs needed by the artist and
album commands.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 10, "Maximum results per section")
	searchCmd.Flags().IntVarP(&searchOffset, "offset", "o", 0, "Result offset for paging")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	query := strings.Join(args, " ")
	results, err := fetch(ctx, a, a.client.Search(query, searchOffset, searchLimit))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if results.Artists != nil && len(results.Artists.Items) > 0 {
		fmt.Printf("Artists (%d total)\n", results.Artists.Total)
		rows := make([][]string, 0, len(results.Artists.Items))
		for _, artist := range results.Artists.Items {
			rows = append(rows, []string{artist.ID, artist.Name})
		}
		render.Table(os.Stdout, []string{"ID", "NAME"}, rows)
		fmt.Println()
	}

	if results.Albums != nil && len(results.Albums.Items) > 0 {
		fmt.Printf("Albums (%d total)\n", results.Albums.Total)
		rows := make([][]string, 0, len(results.Albums.Items))
		for _, album := range results.Albums.Items {
			rows = append(rows, []string{album.ID, album.Name, artistNames(album.Artists), album.ReleaseDate})
		}
		render.Table(os.Stdout, []string{"ID", "NAME", "ARTIST", "RELEASED"}, rows)
	}

	if (results.Artists == nil || len(results.Artists.Items) == 0) &&
		(results.Albums == nil || len(results.Albums.Items) == 0) {
		fmt.Println("No results.")
	}

	return nil
}
