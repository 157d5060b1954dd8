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

	"github.com/fentec-project/variate/internal"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("variate/sample")

// maxShape bounds the integer shape parameters of ChiSquare, Chi
// and Erlang, which count the draws made per sample.
const maxShape = math.MaxInt32

// ErrParameter is the cause of errors returned for distribution
// parameters outside of their domain.
var ErrParameter = internal.ErrParameter

// Sampler samples a single random value.
type Sampler interface {
	Sample() (float64, error)
}

// Validator checks the parameters a sampler was built with.
type Validator interface {
	Validate() error
}

// PairSampler is implemented by samplers whose algorithm yields
// two independent values per run.
type PairSampler interface {
	Pair() (float64, float64, error)
}

func paramError(dist, format string, args ...interface{}) error {
	return errors.Wrapf(ErrParameter, dist+": "+format, args...)
}

func sampleError(err error) error {
	return errors.Wrap(err, "error while sampling")
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func checkShape(dist, name string, v, min float64) error {
	if !(v >= min) || v > maxShape {
		return paramError(dist, "%s must be an integer in [%v, %v], got %v", name, min, maxShape, v)
	}
	return nil
}

func checkProbability(dist string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return paramError(dist, "p must be in [0, 1], got %v", p)
	}
	return nil
}

// floorParam floors an integer parameter, reporting values that
// had a fractional part.
func floorParam(dist, name string, v float64) float64 {
	f := math.Floor(v)
	if isFinite(v) && f != v {
		log.Infof("%s: %s = %v is not an integer, using %v", dist, name, v, f)
	}
	return f
}
