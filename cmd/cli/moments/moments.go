package moments

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quiethours/momentswap/cmd/cli/output"
	"github.com/quiethours/momentswap/cmd/cli/root"
	"github.com/quiethours/momentswap/internal/repo"
)

var listLimit int

func init() {
	momentsCmd := &cobra.Command{
		Use:   "moments",
		Short: "Inspect moments",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent moments",
		Long:  "List the most recently created moments, newest first.",
		RunE:  runList,
	}
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "maximum number of moments to show")

	momentsCmd.AddCommand(listCmd)
	root.GetRoot().AddCommand(momentsCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	moments, err := repo.NewMomentRepo(db).ListRecent(context.Background(), listLimit)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(moments))
	for _, m := range moments {
		owner := "-"
		if m.UserID != nil {
			owner = strconv.Itoa(*m.UserID)
		}
		mood := "-"
		if m.Mood != nil {
			mood = *m.Mood
		}
		rows = append(rows, []interface{}{m.ID, owner, m.TimeValue, mood, m.Text, m.CreatedAt.Format("2006-01-02 15:04")})
	}

	output.RenderTable([]string{"ID", "User", "Time", "Mood", "Text", "Created"}, rows)
	return nil
}
