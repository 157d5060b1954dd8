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

package sample

import (
	"math"

	"github.com/fentec-project/variate/entropy"
)

// Normal samples random values from the Normal (Gaussian)
// probability distribution with mean mu and standard deviation
// sigma, using the Marsaglia polar method.
type Normal struct {
	mu    float64
	sigma float64
	// samples the square [-1, 1) x [-1, 1)
	unit *Uniform
}

// NewNormal returns an instance of Normal sampler.
func NewNormal(mu, sigma float64, src entropy.Source) *Normal {
	return &Normal{
		mu:    mu,
		sigma: sigma,
		unit:  NewUniform(-1, 1, src),
	}
}

// NewStandardNormal returns a Normal sampler with mu = 0
// and sigma = 1.
func NewStandardNormal(src entropy.Source) *Normal {
	return NewNormal(0, 1, src)
}

// polar returns two independent standard normal values. Points
// outside of the unit disc, and its center, are rejected. The loop
// terminates with probability 1 and accepts a point with probability
// pi/4, so it is not bounded.
func (n *Normal) polar() (float64, float64, error) {
	for {
		u1, err := n.unit.Sample()
		if err != nil {
			return 0, 0, err
		}
		u2, err := n.unit.Sample()
		if err != nil {
			return 0, 0, err
		}

		w := u1*u1 + u2*u2
		if w > 0 && w < 1 {
			mult := math.Sqrt(-2 * math.Log(w) / w)
			return u1 * mult, u2 * mult, nil
		}
	}
}

// Sample returns a single normal value. Sigma is not checked.
func (n *Normal) Sample() (float64, error) {
	z, _, err := n.polar()
	if err != nil {
		return 0, err
	}

	return n.mu + n.sigma*z, nil
}

// Pair returns both values produced by one run of the polar method.
func (n *Normal) Pair() (float64, float64, error) {
	z1, z2, err := n.polar()
	if err != nil {
		return 0, 0, err
	}

	return n.mu + n.sigma*z1, n.mu + n.sigma*z2, nil
}

// Validate checks that mu is finite and sigma is finite
// and non-negative.
func (n *Normal) Validate() error {
	if !isFinite(n.mu) {
		return paramError("normal", "mu must be finite, got %v", n.mu)
	}
	if !isFinite(n.sigma) || n.sigma < 0 {
		return paramError("normal", "sigma must be finite and non-negative, got %v", n.sigma)
	}
	return nil
}
