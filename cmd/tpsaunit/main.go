// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tpsaunit is the module's unit-test and benchmark harness, the Go
// equivalent of the original's utval standalone binary: it exercises the
// tagged-value round trips and the descriptor construction/consistency
// checks, optionally reporting throughput.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/accelgo/tpsadesc/desc"
	"github.com/accelgo/tpsadesc/tval"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tpsaunit",
		Short: "tpsadesc unit-test and benchmark harness",
	}

	var noperf bool
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Exercise tagged-value round trips, optionally reporting iter/sec",
		RunE: func(cmd *cobra.Command, args []string) error {
			runBench(noperf)
			return nil
		},
	}
	benchCmd.Flags().BoolVar(&noperf, "noperf", false, "skip the timed throughput passes")

	var verbose bool
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Build and consistency-check a panel of representative descriptors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(verbose)
		},
	}
	checkCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log construction diagnostics")

	var dumpNV int
	var dumpOrds []int
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Build one descriptor and print its To/Tv/H tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(dumpNV, dumpOrds)
		},
	}
	dumpCmd.Flags().IntVar(&dumpNV, "nv", 2, "number of variables")
	dumpCmd.Flags().IntSliceVar(&dumpOrds, "var-ords", []int{2, 2}, "per-variable max order, length nv")

	rootCmd.AddCommand(benchCmd, checkCmd, dumpCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBench(noperf bool) {
	fmt.Println("\n** constants **")
	for _, v := range []struct {
		name string
		val  tval.Value
	}{
		{"nul", tval.OfNul()},
		{"nil", tval.OfNil()},
		{"true", tval.OfLog(true)},
		{"false", tval.OfLog(false)},
	} {
		fmt.Printf("%-6s kind=%-5s bits=0x%016X\n", v.name, tval.Type(v.val), v.val.Bits())
	}

	if noperf {
		return
	}

	fmt.Println("\n** performance (conversions) **")
	const n = 1_000_000_000

	t0 := time.Now()
	var sink int64
	for i := int64(0); i < n; i++ {
		sink += tval.AsInt(tval.OfInt(i % (1 << 40)))
	}
	dt := time.Since(t0).Seconds()
	fmt.Printf("int->tv->int: %.0f iter/sec (%.2fs, sink=%d)\n", n/dt, dt, sink)

	t0 = time.Now()
	var fsink float64
	for i := int64(0); i < n; i++ {
		fsink += tval.AsNum(tval.OfNum(float64(i)))
	}
	dt = time.Since(t0).Seconds()
	fmt.Printf("num->tv->num: %.0f iter/sec (%.2fs, sink=%g)\n", n/dt, dt, fsink)

	strs := make([]string, 1024)
	for i := range strs {
		strs[i] = fmt.Sprintf("s%d", i)
	}
	t0 = time.Now()
	var ssink int
	for i := int64(0); i < n; i++ {
		s := &strs[i%int64(len(strs))]
		ssink += len(*tval.AsStr(tval.OfStr(s)))
	}
	dt = time.Since(t0).Seconds()
	fmt.Printf("str->tv->str: %.0f iter/sec (%.2fs, sink=%d)\n", n/dt, dt, ssink)

	t0 = time.Now()
	var rsink int64
	leaf := tval.OfInt(7)
	ref := tval.OfRef(&leaf)
	for i := int64(0); i < n; i++ {
		rsink += tval.AsInt(tval.Deref(ref))
	}
	dt = time.Since(t0).Seconds()
	fmt.Printf("ref->..->int: %.0f iter/sec (%.2fs, sink=%d)\n", n/dt, dt, rsink)
}

func runCheck(verbose bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("descriptor construction panicked: %v", r)
		}
	}()

	var logger desc.Logger
	if verbose {
		logger = log.New(os.Stdout, "tpsaunit: ", 0)
	}

	shapes := [][]uint8{
		{2, 2}, {1, 1}, {2, 1, 1}, {5, 1, 5}, {3, 3, 3},
	}
	for _, varOrds := range shapes {
		opts := []desc.Option{}
		if logger != nil {
			opts = append(opts, desc.WithLogger(logger))
		}
		d := desc.New(len(varOrds), varOrds, opts...)
		if cerr := desc.Check(d); cerr != nil {
			d.Close()
			return fmt.Errorf("var_ords=%v: %w", varOrds, cerr)
		}
		stats := d.Stats()
		fmt.Printf("var_ords=%-12v nc=%-5d mo=%-2d size=%d bytes OK\n", varOrds, stats.NC, stats.MaxOrder, stats.SizeBytes)
		d.Close()
	}
	return nil
}

func runDump(nv int, ords []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("descriptor construction panicked: %v", r)
		}
	}()
	if len(ords) != nv {
		return fmt.Errorf("--var-ords has %d entries, want %d (--nv)", len(ords), nv)
	}
	varOrds := make([]uint8, nv)
	for i, o := range ords {
		if o < 0 || o > 255 {
			return fmt.Errorf("--var-ords[%d]=%d out of uint8 range", i, o)
		}
		varOrds[i] = uint8(o)
	}

	d := desc.New(nv, varOrds)
	defer d.Close()
	d.DumpTo(os.Stdout)
	return nil
}
