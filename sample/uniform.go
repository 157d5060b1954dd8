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

// Uniform samples random values from the interval [min, max).
type Uniform struct {
	min float64
	max float64
	src entropy.Source
}

// NewUniform returns an instance of the Uniform sampler.
// It accepts lower and upper bounds on the sampled values.
func NewUniform(min, max float64, src entropy.Source) *Uniform {
	return &Uniform{
		min: min,
		max: max,
		src: src,
	}
}

// NewStandardUniform returns a Uniform sampler on [0, 1).
func NewStandardUniform(src entropy.Source) *Uniform {
	return NewUniform(0, 1, src)
}

// Sample returns min + u*(max-min) for a single draw u. The bounds
// are not checked.
func (u *Uniform) Sample() (float64, error) {
	r, err := u.src.Draw()
	if err != nil {
		return 0, sampleError(err)
	}

	return u.min + r*(u.max-u.min), nil
}

// Validate checks that the bounds are finite and min < max.
func (u *Uniform) Validate() error {
	if !isFinite(u.min) || !isFinite(u.max) {
		return paramError("uniform", "bounds must be finite, got [%v, %v)", u.min, u.max)
	}
	if !(u.min < u.max) {
		return paramError("uniform", "min must be smaller than max, got [%v, %v)", u.min, u.max)
	}
	return nil
}
