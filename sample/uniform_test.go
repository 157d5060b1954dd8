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
	"testing"

	"github.com/fentec-project/variate/entropy"
	"github.com/fentec-project/variate/sample"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	// the variance of U(1, 4) is 9/12
	vals := testSampler(t,
		sample.NewUniform(1, 4, keyedSource("uniform")),
		200000,
		around(2.5, 0.01, 0.75, 0.01),
	)

	min, err := stats.Min(vals)
	require.NoError(t, err)
	max, err := stats.Max(vals)
	require.NoError(t, err)

	assert.InDelta(t, 1, min, 0.01)
	assert.InDelta(t, 4, max, 0.01)
	assert.True(t, min >= 1 && max < 4, "values should be in [1, 4)")
}

func TestUniform_Scripted(t *testing.T) {
	u := sample.NewUniform(1, 4, entropy.NewScripted(0, 0.5))

	x, err := u.Sample()
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)

	x, err = u.Sample()
	require.NoError(t, err)
	assert.Equal(t, 2.5, x)
}

func TestUniform_Unchecked(t *testing.T) {
	// the primitive does not look at its bounds
	u := sample.NewUniform(4, 1, entropy.NewScripted(0.5))
	x, err := u.Sample()
	require.NoError(t, err)
	assert.Equal(t, 2.5, x)

	assert.True(t, errors.Is(u.Validate(), sample.ErrParameter))
}

func TestUniform_Validate(t *testing.T) {
	src := entropy.NewCrypto()
	var tests = []struct {
		name     string
		min, max float64
		ok       bool
	}{
		{name: "Standard", min: 0, max: 1, ok: true},
		{name: "Negative", min: -5, max: -1, ok: true},
		{name: "Empty", min: 2, max: 2},
		{name: "Reversed", min: 2, max: 1},
		{name: "Infinite", min: 0, max: inf},
		{name: "NaN", min: nan, max: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := sample.NewUniform(test.min, test.max, src).Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, sample.ErrParameter))
			}
		})
	}
}

func TestUniform_SourceFailure(t *testing.T) {
	_, err := sample.NewStandardUniform(entropy.NewScripted()).Sample()
	assert.Error(t, err)
}
