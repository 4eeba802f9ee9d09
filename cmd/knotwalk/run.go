package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knotwalk/alexander"
	"github.com/katalvlaran/knotwalk/montecarlo"
	"github.com/katalvlaran/knotwalk/walk"
)

func newRunCmd() *subCommand {
	sc := &subCommand{Conf: viper.New()}
	sc.Cmd = &cobra.Command{
		Use:   "run",
		Short: "Estimate the knotting probability of random closed lattice walks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, sc.Conf)
		},
	}
	f := sc.Cmd.Flags()
	f.Int("walks", 100, "Number of walks to sample.")
	f.Int("length", montecarlo.DefaultLength, "Edges per walk.")
	f.Int64("seed", montecarlo.DefaultSeed, "Root seed of the per-walk random streams.")
	f.Int("workers", runtime.GOMAXPROCS(0), "Walks processed concurrently.")
	f.Int("max_attempts", walk.DefaultMaxAttempts, "Sampler attempts per walk before giving up.")
	f.Float64("t", montecarlo.DefaultT, "Evaluation point of the Alexander polynomial.")
	f.Float64("knot_tolerance", alexander.DefaultKnotTolerance, "How far |Δ| may stray from 1 for the unknot.")
	f.Bool("table", false, "Print one row per walk.")
	f.Bool("metrics", false, "Print the Prometheus metrics of the run.")

	return sc
}

func runBatch(cmd *cobra.Command, conf *viper.Viper) error {
	walks := conf.GetInt("walks")
	length := conf.GetInt("length")
	workers := conf.GetInt("workers")
	attempts := conf.GetInt("max_attempts")
	eps := conf.GetFloat64("knot_tolerance")
	switch {
	case walks < 0:
		return fmt.Errorf("--walks must be >= 0, got %d", walks)
	case length < walk.MinSamplerLength:
		return fmt.Errorf("--length must be >= %d, got %d", walk.MinSamplerLength, length)
	case workers < 1:
		return fmt.Errorf("--workers must be >= 1, got %d", workers)
	case attempts < 1:
		return fmt.Errorf("--max_attempts must be >= 1, got %d", attempts)
	case !(eps > 0):
		return fmt.Errorf("--knot_tolerance must be > 0, got %g", eps)
	}

	reg := prometheus.NewRegistry()
	metrics, err := montecarlo.NewMetrics(reg)
	if err != nil {
		return err
	}
	r := montecarlo.NewRunner(
		montecarlo.WithSampler(walk.NewSampler(length, walk.WithMaxAttempts(attempts))),
		montecarlo.WithSeed(conf.GetInt64("seed")),
		montecarlo.WithWorkers(workers),
		montecarlo.WithT(conf.GetFloat64("t")),
		montecarlo.WithKnotTolerance(eps),
		montecarlo.WithMetrics(metrics),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	rep, err := r.Run(ctx, walks)
	if err != nil {
		return err
	}
	glog.V(1).Infof("run %s finished", rep.ID)

	out := cmd.OutOrStdout()
	if conf.GetBool("table") {
		if err := writeTable(out, rep); err != nil {
			return err
		}
	}
	writeSummary(out, rep)
	if conf.GetBool("metrics") {
		return writeMetrics(out, reg)
	}

	return nil
}

// writeSummary prints the reduced report.
func writeSummary(w io.Writer, rep *montecarlo.Report) {
	fmt.Fprintf(w, "run:          %s\n", rep.ID)
	fmt.Fprintf(w, "walks:        %s (length %d, seed %d)\n", humanize.Comma(int64(rep.Walks)), rep.Length, rep.Seed)
	fmt.Fprintf(w, "knotted:      %s (%s%%)\n", humanize.Comma(int64(rep.Knotted)),
		humanize.FormatFloat("#,###.##", 100*rep.KnotFraction()))
	fmt.Fprintf(w, "unknotted:    %s\n", humanize.Comma(int64(rep.Unknotted)))
	fmt.Fprintf(w, "failed:       %s\n", humanize.Comma(int64(rep.Failed)))
	fmt.Fprintf(w, "attempts:     %s\n", humanize.Comma(int64(rep.Attempts)))
	if h := rep.Crossings; h.TotalCount() > 0 {
		fmt.Fprintf(w, "crossings:    mean %s, p50 %d, p99 %d, max %d\n",
			humanize.FormatFloat("#,###.#", h.Mean()), h.ValueAtQuantile(50), h.ValueAtQuantile(99), h.Max())
	}
	if len(rep.Determinants) > 0 {
		keys := make([]int, 0, len(rep.Determinants))
		for d := range rep.Determinants {
			keys = append(keys, d)
		}
		slices.Sort(keys)
		parts := make([]string, len(keys))
		for i, d := range keys {
			parts[i] = fmt.Sprintf("%d:%s", d, humanize.Comma(int64(rep.Determinants[d])))
		}
		fmt.Fprintf(w, "|Δ(%g)|:      %s\n", rep.T, strings.Join(parts, " "))
	}
	fmt.Fprintf(w, "elapsed:      %v\n", rep.Elapsed)
}

// writeMetrics dumps reg in the Prometheus text exposition format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

// knotted reports the column value of a sample row.
func knotted(s montecarlo.Sample) string {
	switch {
	case s.Err != nil:
		return "error"
	case s.Knotted:
		return "yes"
	default:
		return "no"
	}
}
