package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tutils/untwist/family"
	"github.com/tutils/untwist/stream"
	"golang.org/x/term"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print a generated sequence",
	Long: `Print a sequence of generated values, one per line, For example:
  untwist gen --seed=1000 --kind=int --count=10
  untwist gen --seed=1000 --kind=int --origin=0 --bound=16
  untwist gen --algo=platform --seed=-1066875246 --kind=long --count=-1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		values, err := family.Text(g, family.Sequence{
			Kind:   genKind,
			Count:  genCount,
			Ranged: flags.Changed("origin") || flags.Changed("bound"),
			Origin: genOrigin,
			Bound:  genBound,
		})
		if err != nil {
			return err
		}
		return printValues(cmd.OutOrStdout(), values)
	},
}

var (
	genKind   string
	genCount  int64
	genOrigin int64
	genBound  int64
)

// printValues writes one value per line, numbered when out is a terminal.
func printValues(out io.Writer, values *stream.Stream[string]) error {
	numbered := false
	if f, ok := out.(*os.File); ok {
		numbered = term.IsTerminal(int(f.Fd()))
	}

	w := bufio.NewWriter(out)
	i := 0
	for v := range values.All() {
		var err error
		if numbered {
			_, err = fmt.Fprintf(w, "%d\t%s\n", i, v)
		} else {
			_, err = fmt.Fprintln(w, v)
		}
		if err != nil {
			return err
		}
		i++
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return values.Err()
}

func init() {
	rootCmd.AddCommand(genCmd)

	flags := genCmd.Flags()
	flags.StringVarP(&genKind, "kind", "k", family.Int, "value kind: int, long, double, float or boolean")
	flags.Int64VarP(&genCount, "count", "n", 10, "number of values, -1 for an endless sequence")
	flags.Int64Var(&genOrigin, "origin", 0, "inclusive lower bound of int and long values")
	flags.Int64Var(&genBound, "bound", 0, "exclusive upper bound of int and long values")
}
