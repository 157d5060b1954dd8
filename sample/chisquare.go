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

// ChiSquare samples random values from the chi-squared distribution
// with k degrees of freedom, as the sum of k squared standard
// normal values.
type ChiSquare struct {
	k      float64
	normal *Normal
}

// NewChiSquare returns an instance of ChiSquare sampler. A k with
// a fractional part is floored.
func NewChiSquare(k float64, src entropy.Source) *ChiSquare {
	return &ChiSquare{
		k:      floorParam("chi-square", "k", k),
		normal: NewStandardNormal(src),
	}
}

// Sample returns the sum of k squared standard normal values. Both
// values of each polar run are used.
func (c *ChiSquare) Sample() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c.sum()
}

func (c *ChiSquare) sum() (float64, error) {
	k := int(c.k)
	sum := 0.0
	for i := 0; i < k; i += 2 {
		z1, z2, err := c.normal.polar()
		if err != nil {
			return 0, err
		}
		sum += z1 * z1
		if i+1 < k {
			sum += z2 * z2
		}
	}

	return sum, nil
}

// Validate checks that k is a positive integer no larger than
// math.MaxInt32.
func (c *ChiSquare) Validate() error {
	return checkShape("chi-square", "k", c.k, 1)
}

// Chi samples random values from the scaled chi distribution
// sqrt(X/k), where X is chi-squared with k degrees of freedom.
type Chi struct {
	*ChiSquare
}

// NewChi returns an instance of Chi sampler. A k with a fractional
// part is floored.
func NewChi(k float64, src entropy.Source) *Chi {
	return &Chi{
		ChiSquare: &ChiSquare{
			k:      floorParam("chi", "k", k),
			normal: NewStandardNormal(src),
		},
	}
}

// Sample returns sqrt(X/k) for a chi-squared value X.
func (c *Chi) Sample() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	x, err := c.sum()
	if err != nil {
		return 0, err
	}

	return math.Sqrt(x / c.k), nil
}

// Validate checks that k is a positive integer no larger than
// math.MaxInt32.
func (c *Chi) Validate() error {
	return checkShape("chi", "k", c.k, 1)
}
