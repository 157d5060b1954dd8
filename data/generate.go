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
	"github.com/fentec-project/variate/internal"
	"github.com/fentec-project/variate/sample"
	"github.com/pkg/errors"
)

// MaxCount is the largest number of elements NewRandomVector
// produces in one call. Use Stream for longer sequences.
const MaxCount = 10000

// ErrRange is the cause of errors returned for sequence lengths
// that are not served.
var ErrRange = internal.ErrRange

func checkCount(count int) error {
	if count < 1 {
		return errors.Wrapf(ErrRange, "count %d is too small, use Sampler.Sample for single values", count)
	}
	if count > MaxCount {
		return errors.Wrapf(ErrRange, "count %d is too big, use Stream for more than %d values", count, MaxCount)
	}
	return nil
}

func validate(sampler sample.Sampler) error {
	if v, ok := sampler.(sample.Validator); ok {
		return v.Validate()
	}
	return nil
}

// generator hands out single values of a sampler, buffering the
// second value of samplers that produce pairs.
type generator struct {
	sampler  sample.Sampler
	pairs    sample.PairSampler
	pending  float64
	buffered bool
}

func newGenerator(sampler sample.Sampler) *generator {
	g := &generator{sampler: sampler}
	g.pairs, _ = sampler.(sample.PairSampler)
	return g
}

func (g *generator) next() (float64, error) {
	if g.buffered {
		g.buffered = false
		return g.pending, nil
	}
	if g.pairs == nil {
		return g.sampler.Sample()
	}

	x, y, err := g.pairs.Pair()
	if err != nil {
		return 0, err
	}
	g.pending = y
	g.buffered = true

	return x, nil
}

// Stream samples n values and passes them to fn in order, without
// the MaxCount bound of NewRandomVector. Parameters are validated
// before sampling. Stream stops at the first error returned by the
// sampler or by fn and returns it.
func Stream(n int, sampler sample.Sampler, fn func(float64) error) error {
	if n < 1 {
		return errors.Wrapf(ErrRange, "count %d is too small, use Sampler.Sample for single values", n)
	}
	if err := validate(sampler); err != nil {
		return err
	}

	g := newGenerator(sampler)
	for i := 0; i < n; i++ {
		x, err := g.next()
		if err != nil {
			return err
		}
		if err := fn(x); err != nil {
			return err
		}
	}

	return nil
}
