package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seralba/spotifind/internal/render"
)

var (
	playlistLimit  int
	playlistOffset int
)

var playlistCmd = &cobra.Command{
	Use:   "playlist <id>",
	Short: "Show a playlist and its tracks",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaylist,
}

func init() {
	rootCmd.AddCommand(playlistCmd)

	playlistCmd.Flags().IntVarP(&playlistLimit, "limit", "l", 100, "Maximum tracks per page")
	playlistCmd.Flags().IntVarP(&playlistOffset, "offset", "o", 0, "Track offset for paging")
}

func runPlaylist(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	id := args[0]

	playlist, err := fetch(ctx, a, a.client.GetPlaylist(id))
	if err != nil {
		return fmt.Errorf("failed to fetch playlist: %w", err)
	}

	owner := playlist.Owner.DisplayName
	if owner == "" {
		owner = playlist.Owner.ID
	}
	fmt.Printf("%s by %s (%d tracks)\n\n", playlist.Name, owner, playlist.Tracks.Total)

	tracks := playlist.Tracks.Items
	if playlistOffset > 0 || playlist.Tracks.Total > len(tracks) {
		page, err := fetch(ctx, a, a.client.GetPlaylistTracks(id, playlistOffset, playlistLimit))
		if err != nil {
			return fmt.Errorf("failed to fetch playlist tracks: %w", err)
		}
		tracks = page.Items
	}

	rows := make([][]string, 0, len(tracks))
	for _, item := range tracks {
		if item.IsLocal {
			rows = append(rows, []string{item.Track.Name, "(local file)", ""})
			continue
		}
		rows = append(rows, []string{item.Track.Name, artistNames(item.Track.Artists), render.Duration(item.Track.DurationMS)})
	}
	render.Table(os.Stdout, []string{"TRACK", "ARTIST", "LENGTH"}, rows)

	return nil
}
