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

// Cauchy samples random values from the Cauchy distribution with
// the given location and scale.
//
// Values are computed as location + scale*tan(pi*u - 0.5) for a
// uniform draw u. Note that this differs from the standard inverse
// CDF, tan(pi*(u - 0.5)).
type Cauchy struct {
	location float64
	scale    float64
	unit     *Uniform
}

// NewCauchy returns an instance of Cauchy sampler.
func NewCauchy(location, scale float64, src entropy.Source) *Cauchy {
	return &Cauchy{
		location: location,
		scale:    scale,
		unit:     NewStandardUniform(src),
	}
}

// Sample returns location + scale*tan(pi*u - 0.5).
func (c *Cauchy) Sample() (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	u, err := c.unit.Sample()
	if err != nil {
		return 0, err
	}

	// explicit conversions keep the products from being fused
	t := math.Tan(float64(math.Pi*u) - 0.5)
	return c.location + float64(c.scale*t), nil
}

// Validate checks that location is non-negative and scale is
// positive, both finite.
//
// Negative locations are valid for the Cauchy distribution. They are
// rejected here, and whether to accept them is an open product decision.
func (c *Cauchy) Validate() error {
	if !isFinite(c.location) || c.location < 0 {
		return paramError("cauchy", "location must be finite and non-negative, got %v", c.location)
	}
	if !isFinite(c.scale) || !(c.scale > 0) {
		return paramError("cauchy", "scale must be finite and positive, got %v", c.scale)
	}
	return nil
}
