// Package family selects a generator family by name and renders its
// sequences as text, for the command line and the stream servers.
package family

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tutils/untwist"
	"github.com/tutils/untwist/lcg"
	"github.com/tutils/untwist/platform"
	"github.com/tutils/untwist/sampler"
	"github.com/tutils/untwist/stream"
)

// Generator family names
const (
	LCG      = "lcg"
	Platform = "platform"
)

// Value kinds
const (
	Int     = "int"
	Long    = "long"
	Double  = "double"
	Float   = "float"
	Boolean = "boolean"
)

// New returns a generator of the named family. "jdk" and "dotnet" are
// accepted as aliases.
func New(name string, seed int64) (untwist.Generator, error) {
	switch strings.ToLower(name) {
	case LCG, "jdk", "java":
		return lcg.New(seed), nil
	case Platform, "dotnet", "clr":
		return platform.New(seed), nil
	default:
		return nil, fmt.Errorf("%w: unknown generator family %q", untwist.ErrInvalidArgument, name)
	}
}

// Sequence selects the values Text produces
type Sequence struct {
	Kind string
	// Count < 0 means unbounded
	Count int64
	// Ranged restricts int and long values to [Origin, Bound)
	Ranged bool
	Origin int64
	Bound  int64
}

// Text returns the sequence described by seq as decimal text. Doubles and
// floats use the shortest representation that parses back to the same value.
func Text(g untwist.Generator, seq Sequence) (*stream.Stream[string], error) {
	kind := strings.ToLower(seq.Kind)
	var draw func() (string, error)
	switch kind {
	case Int:
		if !seq.Ranged {
			draw = func() (string, error) {
				return strconv.FormatInt(int64(g.NextInt()), 10), nil
			}
			break
		}
		if seq.Origin < math.MinInt32 || seq.Origin > math.MaxInt32 ||
			seq.Bound < math.MinInt32 || seq.Bound > math.MaxInt32 {
			return nil, fmt.Errorf("%w: int range [%d, %d) exceeds 32 bits", untwist.ErrInvalidArgument, seq.Origin, seq.Bound)
		}
		origin, bound := int32(seq.Origin), int32(seq.Bound)
		draw = func() (string, error) {
			v, err := g.NextIntRange(origin, bound)
			return strconv.FormatInt(int64(v), 10), err
		}
	case Long:
		draw = func() (string, error) {
			if seq.Ranged {
				return strconv.FormatInt(sampler.LongRange(g, seq.Origin, seq.Bound), 10), nil
			}
			return strconv.FormatInt(g.NextLong(), 10), nil
		}
	case Double:
		draw = func() (string, error) {
			return strconv.FormatFloat(g.NextDouble(), 'g', -1, 64), nil
		}
	case Float:
		draw = func() (string, error) {
			return strconv.FormatFloat(float64(g.NextFloat()), 'g', -1, 32), nil
		}
	case Boolean:
		draw = func() (string, error) {
			return strconv.FormatBool(g.NextBoolean()), nil
		}
	default:
		return nil, fmt.Errorf("%w: unknown value kind %q", untwist.ErrInvalidArgument, seq.Kind)
	}

	if seq.Ranged && kind != Int && kind != Long {
		return nil, fmt.Errorf("%w: %s values cannot be ranged", untwist.ErrInvalidArgument, seq.Kind)
	}
	if seq.Count < 0 {
		return stream.Generate(draw), nil
	}
	return stream.GenerateN(seq.Count, draw), nil
}
