package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tutils/untwist"
)

// uuidCmd represents the uuid command
var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Print reproducible version 4 UUIDs",
	Long: `Print version 4 UUIDs built from the generator byte stream, the same
UUIDs for the same seed, For example:
  untwist uuid --seed=1000 --count=3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		r := untwist.NewReader(g)
		for i := 0; i < uuidCount; i++ {
			id, err := uuid.NewRandomFromReader(r)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), id.String()); err != nil {
				return err
			}
		}
		return nil
	},
}

var (
	uuidCount int
)

func init() {
	rootCmd.AddCommand(uuidCmd)

	flags := uuidCmd.Flags()
	flags.IntVarP(&uuidCount, "count", "n", 1, "number of UUIDs")
}
