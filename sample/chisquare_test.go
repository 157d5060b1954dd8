/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/fentec-project/variate/entropy"
	"github.com/fentec-project/variate/sample"
	"github.com/fentec-project/variate/special"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestChiSquare(t *testing.T) {
	var tests = []struct {
		k      float64
		n      int
		expect paramBounds
	}{
		{k: 1, n: 50000, expect: around(1, 0.04, 2, 0.2)},
		{k: 2, n: 200000, expect: around(2, 0.02, 4, 0.2)},
		{k: 5, n: 50000, expect: around(5, 0.1, 10, 0.6)},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("k %v", test.k), func(t *testing.T) {
			ref := distuv.ChiSquared{K: test.k}
			require.Equal(t, test.k, ref.Mean())

			vals := testSampler(t,
				sample.NewChiSquare(test.k, keyedSource(fmt.Sprint("chi-square", test.k))),
				test.n,
				test.expect,
			)

			min, err := stats.Min(vals)
			require.NoError(t, err)
			assert.True(t, min >= 0, "values should be non-negative")
			if test.k <= 2 {
				assert.InDelta(t, 0, min, 0.02)
			}
		})
	}
}

func TestChiSquare_Scripted(t *testing.T) {
	// every polar run gives (0.5, -0.5) * mult
	mult := math.Sqrt(-2 * math.Log(0.5) / 0.5)
	z2 := 0.25 * mult * mult

	for _, k := range []float64{1, 2, 3} {
		src := entropy.NewScripted(0.75, 0.25)
		x, err := sample.NewChiSquare(k, src).Sample()
		require.NoError(t, err)
		assert.InDelta(t, k*z2, x, 1e-12)
		assert.Equal(t, 2*int(math.Ceil(k/2)), src.Drawn(), "one polar run per two degrees of freedom")
	}
}

func TestChiSquare_Floors(t *testing.T) {
	a, err := sample.NewChiSquare(2.7, entropy.NewScripted(script...)).Sample()
	require.NoError(t, err)
	b, err := sample.NewChiSquare(2, entropy.NewScripted(script...)).Sample()
	require.NoError(t, err)

	assert.Equal(t, b, a, "k should be floored without an error")
}

func TestChi(t *testing.T) {
	for _, k := range []float64{1, 3, 8} {
		t.Run(fmt.Sprintf("k %v", k), func(t *testing.T) {
			// E[sqrt(X/k)] = sqrt(2/k) * Gamma((k+1)/2) / Gamma(k/2)
			g1, err := special.Gamma((k + 1) / 2)
			require.NoError(t, err)
			g2, err := special.Gamma(k / 2)
			require.NoError(t, err)
			mean := math.Sqrt(2/k) * g1 / g2
			variance := 1 - mean*mean

			vals := testSampler(t,
				sample.NewChi(k, keyedSource(fmt.Sprint("chi", k))),
				50000,
				around(mean, 0.015, variance, 0.1*variance),
			)
			for _, x := range vals {
				require.True(t, x >= 0, "value %v should be non-negative", x)
			}
		})
	}
}

func TestChi_Scripted(t *testing.T) {
	mult := math.Sqrt(-2 * math.Log(0.5) / 0.5)

	x, err := sample.NewChi(4, entropy.NewScripted(0.75, 0.25)).Sample()
	require.NoError(t, err)
	assert.InDelta(t, 0.5*mult, x, 1e-12)
}

func TestChi_Validate(t *testing.T) {
	src := entropy.NewCrypto()
	var tests = []struct {
		name    string
		sampler sample.Sampler
	}{
		{name: "ChiSquare zero", sampler: sample.NewChiSquare(0, src)},
		{name: "ChiSquare floored to zero", sampler: sample.NewChiSquare(0.9, src)},
		{name: "ChiSquare negative", sampler: sample.NewChiSquare(-2, src)},
		{name: "ChiSquare NaN", sampler: sample.NewChiSquare(nan, src)},
		{name: "ChiSquare infinite", sampler: sample.NewChiSquare(inf, src)},
		{name: "ChiSquare huge", sampler: sample.NewChiSquare(1e19, src)},
		{name: "ChiSquare above int32", sampler: sample.NewChiSquare(math.MaxInt32+1, src)},
		{name: "Chi zero", sampler: sample.NewChi(0, src)},
		{name: "Chi floored to zero", sampler: sample.NewChi(0.5, src)},
		{name: "Chi huge", sampler: sample.NewChi(1e19, src)},
		{name: "Chi infinite", sampler: sample.NewChi(inf, src)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.sampler.Sample()
			assert.True(t, errors.Is(err, sample.ErrParameter))
		})
	}
}

func TestChi_ValidateNamesChi(t *testing.T) {
	err := sample.NewChi(0, entropy.NewCrypto()).Validate()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "chi: "), "unexpected message %q", err)

	err = sample.NewChiSquare(0, entropy.NewCrypto()).Validate()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "chi-square: "), "unexpected message %q", err)
}
