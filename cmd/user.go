package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seralba/spotifind/internal/render"
)

var (
	userShowPlaylists bool
	userLimit         int
	userOffset        int
)

var userCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Show a user profile and their public playlists",
	Args:  cobra.ExactArgs(1),
	RunE:  runUser,
}

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.Flags().BoolVar(&userShowPlaylists, "playlists", false, "List the user's public playlists")
	userCmd.Flags().IntVarP(&userLimit, "limit", "l", 25, "Maximum playlists per page")
	userCmd.Flags().IntVarP(&userOffset, "offset", "o", 0, "Playlist offset for paging")
}

func runUser(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	id := args[0]

	user, err := fetch(ctx, a, a.client.GetUser(id))
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}

	name := user.DisplayName
	if name == "" {
		name = user.ID
	}
	fmt.Println(name)

	if userShowPlaylists {
		playlists, err := fetch(ctx, a, a.client.GetUserPlaylists(id, userOffset, userLimit))
		if err != nil {
			return fmt.Errorf("failed to fetch playlists: %w", err)
		}
		fmt.Printf("\nPlaylists (%d total)\n", playlists.Total)
		rows := make([][]string, 0, len(playlists.Items))
		for _, playlist := range playlists.Items {
			rows = append(rows, []string{playlist.ID, playlist.Name})
		}
		render.Table(os.Stdout, []string{"ID", "NAME"}, rows)
	}

	return nil
}
