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
	"math"
	"testing"

	"github.com/fentec-project/variate/entropy"
	"github.com/fentec-project/variate/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCauchy_Formula(t *testing.T) {
	x, err := sample.NewCauchy(1, 2, entropy.NewScripted(0.75)).Sample()
	require.NoError(t, err)

	u, location, scale := 0.75, 1.0, 2.0
	expect := location + float64(scale*math.Tan(float64(math.Pi*u)-0.5))
	assert.Equal(t, expect, x)
	assert.NotEqual(t, location+scale*math.Tan(math.Pi*(u-0.5)), x)
}

func TestCauchy_Validate(t *testing.T) {
	src := entropy.NewCrypto()
	var tests = []struct {
		name            string
		location, scale float64
		ok              bool
	}{
		{name: "Standard", location: 0, scale: 1, ok: true},
		{name: "Shifted", location: 3, scale: 0.5, ok: true},
		{name: "Negative location", location: -1, scale: 1},
		{name: "Zero scale", location: 0, scale: 0},
		{name: "Negative scale", location: 0, scale: -2},
		{name: "Infinite location", location: inf, scale: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := sample.NewCauchy(test.location, test.scale, src).Sample()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, sample.ErrParameter))
			}
		})
	}
}
