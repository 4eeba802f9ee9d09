package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knotwalk/alexander"
	"github.com/katalvlaran/knotwalk/projection"
	"github.com/katalvlaran/knotwalk/walk"
)

func newEvalCmd() *subCommand {
	sc := &subCommand{Conf: viper.New()}
	sc.Cmd = &cobra.Command{
		Use:   "eval [file]",
		Short: `Analyse one walk read from a file ("-" or no argument reads stdin)`,
		Long: `
eval reads one point per line ("x y z", blank or comma separated, '#' starts a
comment), closes the walk if needed and prints its crossings and Alexander
polynomial values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalWalk(cmd, sc.Conf, args)
		},
	}
	f := sc.Cmd.Flags()
	f.Float64Slice("t", []float64{-1}, "Evaluation points of the Alexander polynomial.")
	f.Float64("alpha", projection.DefaultAlpha, "Projection rotation about X (radians).")
	f.Float64("beta", projection.DefaultBeta, "Projection rotation about Y (radians).")
	f.Bool("cyclic", false, "Wrap the last matrix row around to column 0.")
	f.Bool("matrix", false, "Print the Alexander matrix.")
	f.Bool("crossings", false, "Print every crossing and its generator.")

	return sc
}

func evalWalk(cmd *cobra.Command, conf *viper.Viper, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	w, err := walk.Read(in)
	if err != nil {
		return err
	}

	opts := []alexander.Option{
		alexander.WithProjector(projection.New(projection.WithAngles(conf.GetFloat64("alpha"), conf.GetFloat64("beta")))),
	}
	if conf.GetBool("cyclic") {
		opts = append(opts, alexander.WithCyclicClosure())
	}

	ts, err := floats(conf, "t")
	if err != nil {
		return err
	}
	if len(ts) == 0 {
		ts = []float64{-1}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "edges:      %d\n", w.Edges())
	for i, t := range ts {
		r, err := alexander.Compute(w, t, opts...)
		if err != nil {
			return err
		}
		if i == 0 {
			fmt.Fprintf(out, "crossings:  %d\n", len(r.Crossings))
			if conf.GetBool("crossings") {
				writeCrossings(out, r)
			}
		}
		fmt.Fprintf(out, "Δ(%g) = %.12g\n", t, r.Value)
		if t == -1 {
			fmt.Fprintf(out, "knotted:    %v\n", r.Knotted(alexander.DefaultKnotTolerance))
		}
		if conf.GetBool("matrix") {
			fmt.Fprint(out, r.Matrix)
		}
	}

	return nil
}

// writeCrossings lists under-crossings in walk order.
func writeCrossings(w io.Writer, r *alexander.Result) {
	for k, up := range r.Underpasses {
		fmt.Fprintf(w, "  %3d: %s, generator %d\n", k, r.Crossings[up.Crossing], up.Generator)
	}
}

// floats reads a list of numbers from conf. Flags and config files yield
// slices; the environment yields a string such as "-1,2" or "-1 2".
func floats(conf *viper.Viper, key string) ([]float64, error) {
	v := conf.Get(key)
	s, ok := v.(string)
	if !ok {
		fs, err := cast.ToFloat64SliceE(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		return fs, nil
	}

	fields := strings.FieldsFunc(strings.Trim(s, "[]"), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	fs := make([]float64, len(fields))
	for i, f := range fields {
		var err error
		if fs[i], err = cast.ToFloat64E(f); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}

	return fs, nil
}
