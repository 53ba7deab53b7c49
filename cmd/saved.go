package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seralba/spotifind/internal/render"
)

var (
	savedPlaylists bool
	savedLimit     int
	savedOffset    int
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List your saved albums or playlists",
	RunE:  runSaved,
}

func init() {
	rootCmd.AddCommand(savedCmd)

	savedCmd.Flags().BoolVar(&savedPlaylists, "playlists", false, "List saved playlists instead of albums")
	savedCmd.Flags().IntVarP(&savedLimit, "limit", "l", 25, "Maximum entries per page")
	savedCmd.Flags().IntVarP(&savedOffset, "offset", "o", 0, "Entry offset for paging")
}

func runSaved(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if savedPlaylists {
		playlists, err := fetch(ctx, a, a.client.GetSavedPlaylists(savedOffset, savedLimit))
		if err != nil {
			return fmt.Errorf("failed to fetch saved playlists: %w", err)
		}
		fmt.Printf("Playlists (%d total)\n", playlists.Total)
		rows := make([][]string, 0, len(playlists.Items))
		for _, playlist := range playlists.Items {
			rows = append(rows, []string{playlist.ID, playlist.Name, fmt.Sprintf("%d", playlist.Tracks.Total)})
		}
		render.Table(os.Stdout, []string{"ID", "NAME", "TRACKS"}, rows)
		return nil
	}

	albums, err := fetch(ctx, a, a.client.GetSavedAlbums(savedOffset, savedLimit))
	if err != nil {
		return fmt.Errorf("failed to fetch saved albums: %w", err)
	}
	fmt.Printf("Albums (%d total)\n", albums.Total)
	rows := make([][]string, 0, len(albums.Items))
	for _, saved := range albums.Items {
		rows = append(rows, []string{saved.Album.ID, saved.Album.Name, artistNames(saved.Album.Artists)})
	}
	render.Table(os.Stdout, []string{"ID", "NAME", "ARTIST"}, rows)

	return nil
}
