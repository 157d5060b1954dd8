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

package data

import (
	"strconv"

	"github.com/fentec-project/variate/sample"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance of length count
// with random elements sampled by the provided sample.Sampler.
//
// The count must be in [1, MaxCount]; otherwise an error wrapping
// ErrRange is returned. If the sampler implements sample.Validator,
// its parameters are checked before anything is sampled. Samplers
// implementing sample.PairSampler fill two elements per call.
// No vector is returned in case of any failure.
func NewRandomVector(count int, sampler sample.Sampler) (Vector, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if err := validate(sampler); err != nil {
		return nil, err
	}

	vec := make(Vector, count)
	g := newGenerator(sampler)
	for i := range vec {
		x, err := g.next()
		if err != nil {
			return nil, err
		}
		vec[i] = x
	}

	return vec, nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	vStr := ""
	for _, yi := range v {
		vStr = vStr + " " + strconv.FormatFloat(yi, 'g', -1, 64)
	}
	return vStr
}
