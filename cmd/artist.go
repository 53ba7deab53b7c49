package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seralba/spotifind/internal/render"
	"github.com/seralba/spotifind/pkg/spotify"
)

var (
	artistShowAlbums bool
	artistShowTop    bool
	artistLimit      int
	artistOffset     int
)

var artistCmd = &cobra.Command{
	Use:   "artist <id>",
	Short: "Show an artist, their top tracks or albums",
	Args:  cobra.ExactArgs(1),
	RunE:  runArtist,
}

func init() {
	rootCmd.AddCommand(artistCmd)

	artistCmd.Flags().BoolVar(&artistShowAlbums, "albums", false, "List the artist's albums and singles")
	artistCmd.Flags().BoolVar(&artistShowTop, "top", false, "List the artist's top tracks")
	artistCmd.Flags().IntVarP(&artistLimit, "limit", "l", 25, "Maximum albums per page")
	artistCmd.Flags().IntVarP(&artistOffset, "offset", "o", 0, "Album offset for paging")
}

func runArtist(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	id := args[0]

	artist, err := fetch(ctx, a, a.client.GetArtist(id))
	if err != nil {
		return fmt.Errorf("failed to fetch artist: %w", err)
	}
	fmt.Println(artist.Name)

	if artistShowTop {
		top, err := fetch(ctx, a, a.client.GetArtistTopTracks(id))
		if err != nil {
			return fmt.Errorf("failed to fetch top tracks: %w", err)
		}
		fmt.Println("\nTop tracks")
		rows := make([][]string, 0, len(top.Tracks))
		for _, track := range top.Tracks {
			album := ""
			if track.Album != nil {
				album = track.Album.Name
			}
			rows = append(rows, []string{track.Name, album, render.Duration(track.DurationMS)})
		}
		render.Table(os.Stdout, []string{"TRACK", "ALBUM", "LENGTH"}, rows)
	}

	if artistShowAlbums {
		albums, err := fetch(ctx, a, a.client.GetArtistAlbums(id, artistOffset, artistLimit))
		if err != nil {
			return fmt.Errorf("failed to fetch albums: %w", err)
		}
		fmt.Printf("\nAlbums (%d total)\n", albums.Total)
		rows := make([][]string, 0, len(albums.Items))
		for _, album := range albums.Items {
			rows = append(rows, []string{album.ID, album.Name, album.ReleaseDate})
		}
		render.Table(os.Stdout, []string{"ID", "NAME", "RELEASED"}, rows)
	}

	return nil
}

// artistNames joins artist names for one table cell.
func artistNames(artists []spotify.Artist) string {
	names := make([]string, len(artists))
	for i, artist := range artists {
		names[i] = artist.Name
	}
	return strings.Join(names, ", ")
}
