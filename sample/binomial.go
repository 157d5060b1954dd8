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

// Binomial samples the number of successes in n independent
// Bernoulli trials with success probability p.
//
// Each sample costs n uniform draws, which is fine for the small
// and moderate n it is meant for.
type Binomial struct {
	n     int
	trial *Bernoulli
}

// NewBinomial returns an instance of Binomial sampler.
func NewBinomial(n int, p float64, src entropy.Source) *Binomial {
	return &Binomial{
		n:     n,
		trial: NewBernoulli(p, src),
	}
}

// Sample returns the sum of n Bernoulli(p) trials.
func (b *Binomial) Sample() (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}

	sum := 0.0
	for i := 0; i < b.n; i++ {
		x, err := b.trial.draw()
		if err != nil {
			return 0, err
		}
		sum += x
	}

	return sum, nil
}

// Validate checks that n is non-negative and p is in [0, 1].
func (b *Binomial) Validate() error {
	if b.n < 0 {
		return paramError("binomial", "n must be non-negative, got %d", b.n)
	}
	return checkProbability("binomial", b.trial.p)
}
