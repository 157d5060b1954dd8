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
	"github.com/fentec-project/variate/entropy"
)

// Geometric samples the number of Bernoulli(p) trials needed to get
// the first success. Sampled values are at least 1.
type Geometric struct {
	p    float64
	unit *Uniform
}

// NewGeometric returns an instance of Geometric sampler.
func NewGeometric(p float64, src entropy.Source) *Geometric {
	return &Geometric{
		p:    p,
		unit: NewStandardUniform(src),
	}
}

// Sample counts uniform draws until one falls below p. The loop is
// not bounded; for p > 0 it ends with probability 1.
func (g *Geometric) Sample() (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}

	k := 1.0
	for {
		u, err := g.unit.Sample()
		if err != nil {
			return 0, err
		}
		if u < g.p {
			return k, nil
		}
		k++
	}
}

// Validate checks that p is in (0, 1].
func (g *Geometric) Validate() error {
	if !(g.p > 0 && g.p <= 1) {
		return paramError("geometric", "p must be in (0, 1], got %v", g.p)
	}
	return nil
}
