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

// erlangFoldBelow is the threshold under which the running product
// of uniform draws is moved into a sum of logarithms, well above
// the smallest normal float64.
const erlangFoldBelow = 1e-280

// Erlang samples random values from the Erlang distribution with
// scale a and integer shape m, as the sum of m exponential values
// with mean a.
type Erlang struct {
	a    float64
	m    float64
	unit *Uniform
}

// NewErlang returns an instance of Erlang sampler. An m with a
// fractional part is floored.
func NewErlang(a, m float64, src entropy.Source) *Erlang {
	return &Erlang{
		a:    a,
		m:    floorParam("erlang", "m", m),
		unit: NewStandardUniform(src),
	}
}

// Sample returns -a*ln(u_1*...*u_m) for m uniform draws; m = 0
// gives 0. The product is used to take a single logarithm for
// small m and is folded into a sum of logarithms before it can
// underflow, which keeps large m exact up to rounding.
func (e *Erlang) Sample() (float64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	m := int(e.m)
	if m == 0 {
		return 0, nil
	}

	prod := 1.0
	logSum := 0.0
	for i := 0; i < m; i++ {
		u, err := e.unit.Sample()
		if err != nil {
			return 0, err
		}
		prod *= u
		if prod < erlangFoldBelow {
			logSum += math.Log(prod)
			prod = 1
		}
	}

	return -e.a * (logSum + math.Log(prod)), nil
}

// Validate checks that a is finite and positive, and that m is a
// non-negative integer no larger than math.MaxInt32.
func (e *Erlang) Validate() error {
	if !isFinite(e.a) || !(e.a > 0) {
		return paramError("erlang", "a must be finite and positive, got %v", e.a)
	}
	return checkShape("erlang", "m", e.m, 0)
}
