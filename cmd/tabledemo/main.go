package main

import (
	"fmt"
	"io"
	"os"

	"github.com/g-m-twostay/chain-table/Maps/IntTable"
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
	"github.com/xyproto/env/v2"
)

var log = logging.MustGetLogger("main")

var stderrLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{module}] [%{level}] %{message}`,
)

type Options struct {
	Capacity uint    `short:"c" long:"capacity" description:"initial number of buckets (env CHAINTABLE_CAPACITY)"`
	GrowAt   float64 `long:"grow-at" description:"load factor above which the table doubles"`
	ShrinkAt float64 `long:"shrink-at" description:"load factor below which the table halves"`
	LogLevel string  `short:"l" long:"loglevel" description:"set the logging level [debug, info, notice, warning, error, critical] (env CHAINTABLE_LOGLEVEL)"`
}

// defaultOptions reads the environment. Flags given on the command line override it.
func defaultOptions() Options {
	c := env.Int("CHAINTABLE_CAPACITY", int(IntTable.DefaultCapacity))
	if c < 0 {
		c = 0
	}
	return Options{
		Capacity: uint(c),
		GrowAt:   IntTable.DefaultGrowAt,
		ShrinkAt: IntTable.DefaultShrinkAt,
		LogLevel: env.Str("CHAINTABLE_LOGLEVEL", "warning"),
	}
}

func setupLogging(level string) error {
	l, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), stderrLogFormat)
	logging.SetBackend(backend).SetLevel(l, "")
	return nil
}

// run replays the demo: insert five pairs, print, remove one, print, then look one up.
func run(opts Options, w io.Writer) error {
	M, err := IntTable.NewFromConfig(IntTable.Config{Capacity: opts.Capacity, GrowAt: opts.GrowAt, ShrinkAt: opts.ShrinkAt})
	if err != nil {
		return err
	}
	for k := 10; k <= 50; k += 10 {
		M.Insert(k, k*10)
	}
	fmt.Fprintln(w, "Hash table after insertions:")
	if err = M.Fprint(w); err != nil {
		return err
	}

	M.Remove(30)
	fmt.Fprintln(w, "\nHash table after removing key 30:")
	if err = M.Fprint(w); err != nil {
		return err
	}

	if v, ok := M.Find(40); ok {
		fmt.Fprintf(w, "\nValue for key 40: %d\n", v)
	} else {
		fmt.Fprintln(w, "\nKey 40 not found")
	}
	log.Infof("size %d, capacity %d, load factor %.3f", M.Size(), M.Cap(), M.LoadFactor())
	return nil
}

func main() {
	opts := defaultOptions()
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}
	if err := setupLogging(opts.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(opts, os.Stdout); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
