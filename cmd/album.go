package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seralba/spotifind/internal/render"
)

var (
	albumSave   bool
	albumRemove bool
)

var albumCmd = &cobra.Command{
	Use:   "album <id>",
	Short: "Show an album or manage it in your library",
	Long: `Show an album's track listing and whether it is saved in your
library. With --save or --remove the album is added to or removed from
the library instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runAlbum,
}

func init() {
	rootCmd.AddCommand(albumCmd)

	albumCmd.Flags().BoolVar(&albumSave, "save", false, "Save the album to your library")
	albumCmd.Flags().BoolVar(&albumRemove, "remove", false, "Remove the album from your library")
	albumCmd.MarkFlagsMutuallyExclusive("save", "remove")
}

func runAlbum(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	id := args[0]

	// Library mutations only report success or failure; no body to
	// read, no caching involved.
	if albumSave {
		if err := a.client.SaveAlbum(id).SendNoBody(ctx); err != nil {
			return fmt.Errorf("failed to save album: %w", err)
		}
		fmt.Println("Album saved.")
		return nil
	}
	if albumRemove {
		if err := a.client.RemoveSavedAlbum(id).SendNoBody(ctx); err != nil {
			return fmt.Errorf("failed to remove album: %w", err)
		}
		fmt.Println("Album removed.")
		return nil
	}

	album, err := fetch(ctx, a, a.client.GetAlbum(id))
	if err != nil {
		return fmt.Errorf("failed to fetch album: %w", err)
	}

	fmt.Printf("%s — %s (%s)\n", album.Name, artistNames(album.Artists), album.ReleaseDate)

	// Saved status is a per-user check; skip the cache so the answer
	// reflects a save or remove made moments ago.
	if saved, err := a.client.IsAlbumSaved(id).Send(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("Could not check saved status")
	} else if flags, ok := saved.Deserialize(); ok && len(flags) > 0 && flags[0] {
		fmt.Println("In your library.")
	}

	fmt.Println()
	rows := make([][]string, 0, len(album.Tracks.Items))
	for i, track := range album.Tracks.Items {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), track.Name, render.Duration(track.DurationMS)})
	}
	render.Table(os.Stdout, []string{"#", "TRACK", "LENGTH"}, rows)

	return nil
}
