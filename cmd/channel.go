package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harini-kv/yt-warehouse/internal/repository"
	"github.com/harini-kv/yt-warehouse/internal/service"
)

// channelCmd represents the channel command
var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Stored channel operations",
	Long:  `Operations over channels already stored in the warehouse.`,
}

// channelListCmd lists all saved channels
var channelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored channels",
	Long:  `List all channels stored in the warehouse.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, pool, err := openWarehouse(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		channels, err := repository.NewChannelRepository(pool).List(ctx, limit, offset)
		if err != nil {
			return fmt.Errorf("failed to list channels: %w", err)
		}

		if len(channels) == 0 {
			fmt.Println("No channels found in the warehouse.")
			return nil
		}

		result, err := json.MarshalIndent(channels, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		fmt.Printf("Found %d channel(s):\n%s\n", len(channels), string(result))
		return nil
	},
}

// channelShowCmd shows the dashboard summary for one channel
var channelShowCmd = &cobra.Command{
	Use:   "show [CHANNEL_ID]",
	Short: "Show a stored channel with its top videos",
	Long:  `Display a stored channel's counts, stored video tally and top videos by views.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		channelID := args[0]

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, pool, err := openWarehouse(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		dashboard := service.NewDashboardService(
			repository.NewChannelRepository(pool),
			repository.NewVideoRepository(pool),
		)

		summary, err := dashboard.ChannelSummary(ctx, channelID)
		if err != nil {
			return fmt.Errorf("failed to load channel summary: %w", err)
		}

		result, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		fmt.Println(string(result))
		return nil
	},
}

// channelRemoveCmd removes a channel and its videos
var channelRemoveCmd = &cobra.Command{
	Use:   "remove [CHANNEL_ID]",
	Short: "Remove a stored channel",
	Long:  `Delete a channel from the warehouse. Its videos are removed with it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		channelID := args[0]

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, pool, err := openWarehouse(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := repository.NewChannelRepository(pool).Delete(ctx, channelID); err != nil {
			return fmt.Errorf("failed to remove channel: %w", err)
		}

		fmt.Printf("Channel %s removed.\n", channelID)
		return nil
	},
}

func init() {
	channelListCmd.Flags().Int("limit", 10, "Maximum number of channels to retrieve")
	channelListCmd.Flags().Int("offset", 0, "Number of channels to skip")

	channelCmd.AddCommand(channelListCmd)
	channelCmd.AddCommand(channelShowCmd)
	channelCmd.AddCommand(channelRemoveCmd)
	rootCmd.AddCommand(channelCmd)
}
