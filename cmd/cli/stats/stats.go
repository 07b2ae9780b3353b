package stats

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/quiethours/momentswap/cmd/cli/output"
	"github.com/quiethours/momentswap/cmd/cli/root"
	"github.com/quiethours/momentswap/internal/repo"
)

func init() {
	statsCmd := &cobra.Command{
		Use:   "stats <email>",
		Short: "Show a user's exchange statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	root.GetRoot().AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	users := repo.NewUserRepo(db)
	moments := repo.NewMomentRepo(db)
	swaps := repo.NewSwapRepo(db)

	user, err := users.GetByEmail(ctx, args[0])
	if err != nil {
		return err
	}

	shared, err := moments.CountByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	received, err := swaps.CountByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	total, err := moments.CountAll(ctx)
	if err != nil {
		return err
	}
	days, err := moments.CountDistinctDays(ctx, user.ID)
	if err != nil {
		return err
	}

	output.RenderKV([][2]interface{}{
		{"User", user.Username},
		{"Moments shared", shared},
		{"Moments received", received},
		{"Moments in pool", total},
		{"Active days", days},
	})
	return nil
}
