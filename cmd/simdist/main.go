// Copyright 2026 go-simdist Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command simdist reports the active kernel dispatch and runs
// micro-benchmarks of the distance kernels against viterin/vek.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-simdist/dist"
	"github.com/ajroetker/go-simdist/simd"
)

func main() {
	root := &cobra.Command{
		Use:   "simdist",
		Short: "SIMD distance kernel diagnostics",
	}
	root.AddCommand(infoCmd(), benchCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level selected for this CPU",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := simd.Info()
			fmt.Printf("arch:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Printf("level:       %s\n", info.Level)
			fmt.Printf("width:       %d bytes (%d float32 lanes)\n", info.Width, info.Width/4)
			fmt.Printf("accelerated: %v\n", info.Accelerated)
			fmt.Printf("features:    %s\n", strings.Join(info.Features, ", "))
			return nil
		},
	}
}

func benchCmd() *cobra.Command {
	var dim int
	var iters int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the distance kernels",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dim <= 0 || iters <= 0 {
				return fmt.Errorf("dim and iters must be positive (got dim=%d iters=%d)", dim, iters)
			}
			runBench(dim, iters)
			return nil
		},
	}
	cmd.Flags().IntVar(&dim, "dim", 1536, "vector dimensionality")
	cmd.Flags().IntVar(&iters, "iters", 100000, "iterations per kernel")
	return cmd
}

func runBench(dim, iters int) {
	rng := rand.New(rand.NewSource(1))
	a := make([]float32, dim)
	b := make([]float32, dim)
	for i := 0; i < dim; i++ {
		a[i] = rng.Float32()*2 - 1
		b[i] = rng.Float32()*2 - 1
	}
	packed := dim / 8
	if packed%16 != 0 {
		packed += 16 - packed%16
	}
	pa := make([]byte, packed)
	pb := make([]byte, packed)
	rng.Read(pa)
	rng.Read(pb)

	fmt.Printf("dim=%d iters=%d level=%s\n\n", dim, iters, simd.Info().Level)

	var sink float32
	measure("dot", dim, iters, func() { sink += dist.Dot(a, b) })
	measure("dot/vek", dim, iters, func() { sink += vek32.Dot(a, b) })
	measure("cosine", dim, iters, func() { sink += dist.Cos(a, b) })
	measure("cosine/vek", dim, iters, func() { sink += vek32.CosineSimilarity(a, b) })
	measure("euclidean", dim, iters, func() { sink += dist.Euclidean(a, b) })
	measure("euclidean/vek", dim, iters, func() { sink += vek32.Distance(a, b) })

	var isink int
	measure("hamming", packed*8, iters, func() { isink += dist.Hamming(pa, pb) })
	measure("hamming/words64", packed*8, iters, func() { isink += dist.HammingWords64(pa, pb) })

	_ = sink
	_ = isink
}

func measure(name string, d, iters int, f func()) {
	start := time.Now()
	for i := 0; i < iters; i++ {
		f()
	}
	elapsed := time.Since(start)
	perOp := elapsed / time.Duration(iters)
	fmt.Printf("%-16s %10v/op  (%d elements)\n", name, perOp, d)
}
