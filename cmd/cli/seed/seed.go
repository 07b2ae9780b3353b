package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiethours/momentswap/cmd/cli/root"
	"github.com/quiethours/momentswap/internal/repo"
)

// A fixed set of ownerless demo moments so a fresh install has something to
// hand out on the first exchanges.
var demoMoments = []struct {
	timeValue string
	mood      string
	text      string
}{
	{"05:15", "calm", "5:15 AM · The world felt still, only birds singing and cold mist touching my face."},
	{"06:20", "hopeful", "6:20 AM · I watched the sunrise through my window with a cup of tea and big dreams."},
	{"07:35", "happy", "7:35 AM · My little sister danced while brushing her teeth and laughed at herself."},
	{"08:10", "nostalgic", "8:10 AM · A song on the radio reminded me of my school farewell day."},
	{"09:42", "calm", "9:42 AM · I walked alone on the road lined with trees, feeling the peace around me."},
	{"10:15", "focus", "10:15 AM · Coffee beside laptop, feeling powerful as ideas came together."},
	{"11:03", "lonely", "11:03 AM · Sitting in a crowd but feeling invisible for a moment."},
	{"11:56", "happy", "11:56 AM · My old friend called unexpectedly and we laughed like old times."},
	{"12:21", "chaotic", "12:21 PM · Lunch time rush, loud voices, clinking plates, but somehow beautiful."},
	{"13:14", "nostalgic", "1:14 PM · The smell of rain on hot ground reminded me of my grandparents house."},
	{"14:48", "calm", "2:48 PM · Reading a book near the window while sunlight drew patterns on the floor."},
	{"15:20", "hopeful", "3:20 PM · Saw a kid trying to fly a kite, falling many times but still smiling."},
	{"16:07", "happy", "4:07 PM · My favorite song played in a random shop and I started humming."},
	{"17:31", "calm", "5:31 PM · Sunset painted the sky in orange and pink, clouds moving slowly."},
	{"18:05", "nostalgic", "6:05 PM · Smelled freshly baked bread and remembered my mother baking on Sundays."},
	{"19:42", "chaotic", "7:42 PM · Traffic lights reflecting on wet roads made everything colorful and alive."},
	{"20:10", "lonely", "8:10 PM · City noise outside but inside my room was quiet, almost too quiet."},
	{"21:25", "happy", "9:25 PM · Video call with cousins and sharing memories from our childhood."},
	{"22:17", "calm", "10:17 PM · Stared at the moon through balcony grills, feeling small and peaceful."},
	{"23:03", "nostalgic", "11:03 PM · Looking through old photos and smiling at past versions of myself."},
	{"00:45", "chaotic", "12:45 AM · Thoughts racing, pages filling with sketches I didn't plan."},
	{"01:18", "hopeful", "1:18 AM · A message from someone I needed came at the perfect time."},
	{"02:33", "lonely", "2:33 AM · Silent roads, only streetlights glowing like small stars."},
	{"03:56", "calm", "3:56 AM · Laying on bed, ceiling fan noise mixing with soft thoughts before sleep."},
}

func init() {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo moments",
		Long:  "Insert the fixed set of demo moments so fresh installs have peers to swap with.",
		RunE:  runSeed,
	}

	root.GetRoot().AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := root.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	moments := repo.NewMomentRepo(db)
	ctx := context.Background()

	for _, m := range demoMoments {
		mood := m.mood
		if _, err := moments.Insert(ctx, nil, m.timeValue, &mood, m.text); err != nil {
			return fmt.Errorf("insert %q: %w", m.timeValue, err)
		}
	}

	fmt.Printf("Inserted %d demo moments\n", len(demoMoments))
	return nil
}
