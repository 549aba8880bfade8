package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/freedomd-dev/freedomd/internal/freedom"
	"github.com/freedomd-dev/freedomd/internal/runlog"
	"github.com/freedomd-dev/freedomd/internal/store"
)

func newFreedomCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "freedom",
		Short: "Show days of freedom and life stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(*dir)
			if err != nil {
				return err
			}

			r := freedom.Calculate(p)

			fmt.Printf("Days of freedom: %s (%s)\n", r.Label, r.Stage)
			if r.Kinged {
				fmt.Println("Asset income covers daily needs. You are free.")
			} else {
				fmt.Printf("Daily asset income: $%s\n", r.DailyAssetIncome.StringFixed(2))
				fmt.Printf("Daily needs:        $%s\n", r.DailyNeeds.StringFixed(2))
				fmt.Printf("Sellable assets:    $%s\n", r.LiquidAssets.StringFixed(2))
			}

			return runlog.Append(*dir, runlog.Entry{
				Timestamp: time.Now(),
				Command:   "freedom",
				Freedom:   r.Label,
				Details:   string(r.Stage),
			})
		},
	}
}
