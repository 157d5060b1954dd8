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

// poissonStep is the largest lambda sampled with the plain
// multiplication method. Beyond it e^-lambda gets close to the
// smallest float64 and the product is rescaled in steps instead.
const poissonStep = 500

// Poisson samples the number of events in an interval with
// event rate lambda, using Knuth's multiplication method.
// Lambda is truncated to an integer.
type Poisson struct {
	lambda float64
	// e^-lambda
	limit float64
	unit  *Uniform
}

// NewPoisson returns an instance of Poisson sampler.
func NewPoisson(lambda float64, src entropy.Source) *Poisson {
	l := math.Trunc(lambda)
	if isFinite(lambda) && l != lambda {
		log.Infof("poisson: lambda = %v is not an integer, using %v", lambda, l)
	}

	return &Poisson{
		lambda: l,
		limit:  math.Exp(-l),
		unit:   NewStandardUniform(src),
	}
}

// Sample multiplies uniform draws until the product falls below
// e^-lambda and returns the number of factors minus one.
func (p *Poisson) Sample() (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	if p.lambda > poissonStep {
		return p.stepped()
	}

	k := 0.0
	prod := 1.0
	for prod >= p.limit {
		u, err := p.unit.Sample()
		if err != nil {
			return 0, err
		}
		prod *= u
		k++
	}

	return k - 1, nil
}

// stepped is the multiplication method with the product multiplied
// by e^poissonStep whenever it drops below 1, until all of lambda
// has been consumed.
func (p *Poisson) stepped() (float64, error) {
	k := 0.0
	prod := 1.0
	left := p.lambda
	for {
		u, err := p.unit.Sample()
		if err != nil {
			return 0, err
		}
		prod *= u
		k++
		for prod < 1 && left > 0 {
			if left > poissonStep {
				prod *= math.Exp(poissonStep)
				left -= poissonStep
			} else {
				prod *= math.Exp(left)
				left = 0
			}
		}
		if prod <= 1 {
			return k - 1, nil
		}
	}
}

// Validate checks that the truncated lambda is positive and finite.
func (p *Poisson) Validate() error {
	if !(p.lambda > 0) || math.IsInf(p.lambda, 1) {
		return paramError("poisson", "lambda must be a positive integer, got %v", p.lambda)
	}
	return nil
}
