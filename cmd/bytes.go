package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tutils/untwist"
)

// bytesCmd represents the bytes command
var bytesCmd = &cobra.Command{
	Use:   "bytes",
	Short: "Print generated bytes as hex",
	Long: `Print the bytes one NextBytes call fills, hex encoded, For example:
  untwist bytes --seed=1000 --count=16`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		if bytesCount < 0 {
			return fmt.Errorf("%w: negative count %d", untwist.ErrInvalidArgument, bytesCount)
		}
		buf := make([]byte, bytesCount)
		if err := untwist.Fill(g, buf); err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
		return err
	},
}

var (
	bytesCount int
)

func init() {
	rootCmd.AddCommand(bytesCmd)

	flags := bytesCmd.Flags()
	flags.IntVarP(&bytesCount, "count", "n", 16, "number of bytes")
}
