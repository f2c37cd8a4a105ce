package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harini-kv/yt-warehouse/internal/config"
	"github.com/harini-kv/yt-warehouse/internal/repository"
	"github.com/harini-kv/yt-warehouse/internal/service"
	"github.com/harini-kv/yt-warehouse/internal/youtube"
)

// syncCmd ingests one channel and its uploads into the warehouse
var syncCmd = &cobra.Command{
	Use:   "sync [CHANNEL_ID]",
	Short: "Sync a YouTube channel into the warehouse",
	Long: `Fetch channel details and upload metadata from the YouTube Data API
and upsert them into the warehouse. Safe to re-run: repeated syncs converge
to the same stored state.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		channelID := args[0]

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cfg, pool, err := openWarehouse(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		client, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
		if err != nil {
			return err
		}

		opts := service.SyncOptions{
			MaxPlaylistItems: cfg.MaxPlaylistItems,
			AbortOnMalformed: cfg.OnMalformed == config.OnMalformedAbort,
		}
		if cmd.Flags().Changed("max-items") {
			opts.MaxPlaylistItems, _ = cmd.Flags().GetInt("max-items")
		}
		if abort, _ := cmd.Flags().GetBool("abort-on-malformed"); abort {
			opts.AbortOnMalformed = true
		}

		syncService := service.NewSyncService(
			client,
			repository.NewChannelRepository(pool),
			repository.NewVideoRepository(pool),
			opts,
		)

		result, err := syncService.SyncChannel(ctx, channelID)
		if err != nil {
			return fmt.Errorf("failed to sync channel: %w", err)
		}

		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		fmt.Printf("Channel synced successfully:\n%s\n", string(output))
		return nil
	},
}

func init() {
	syncCmd.Flags().Int("max-items", 0, "Maximum uploads to walk (overrides max_playlist_items; 0 means no bound)")
	syncCmd.Flags().Bool("abort-on-malformed", false, "Abort the whole sync on the first malformed video payload")
	rootCmd.AddCommand(syncCmd)
}
