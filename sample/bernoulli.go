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

// Bernoulli samples the value 1 with probability p and 0 otherwise.
type Bernoulli struct {
	p    float64
	unit *Uniform
}

// NewBernoulli returns an instance of Bernoulli sampler.
func NewBernoulli(p float64, src entropy.Source) *Bernoulli {
	return &Bernoulli{
		p:    p,
		unit: NewStandardUniform(src),
	}
}

// Sample returns 1 if a uniform draw is at most p, and 0 otherwise.
func (b *Bernoulli) Sample() (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return b.draw()
}

func (b *Bernoulli) draw() (float64, error) {
	u, err := b.unit.Sample()
	if err != nil {
		return 0, err
	}
	if u <= b.p {
		return 1, nil
	}
	return 0, nil
}

// Validate checks that p is in [0, 1].
func (b *Bernoulli) Validate() error {
	return checkProbability("bernoulli", b.p)
}
