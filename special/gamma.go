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

// Package special implements special functions needed to compute
// analytic moments and densities of the distributions in package
// sample.
package special

import (
	"math"

	"github.com/fentec-project/variate/internal"
	"github.com/pkg/errors"
)

// ErrDomain is the cause of errors returned for arguments outside
// of a function's domain.
var ErrDomain = internal.ErrDomain

// lanczosG is the shift of the Lanczos series, 671/128.
const lanczosG = 5.2421875

// lanczosSqrtTwoPi is sqrt(2*pi).
const lanczosSqrtTwoPi = 2.5066282746310005

// lanczosBase is the constant term of the series.
const lanczosBase = 0.999999999999997092

// lanczosCoef are the coefficients of the Lanczos series for g = 671/128
// and 14 terms, giving about 1e-15 relative error over z > 0.
var lanczosCoef = [14]float64{
	57.1562356658629235,
	-59.5979603554754912,
	14.1360979747417471,
	-0.491913816097620199,
	.339946499848118887e-4,
	.465236289270485756e-4,
	-.983744753048795646e-4,
	.158088703224912494e-3,
	-.210264441724104883e-3,
	.217439618115212643e-3,
	-.164318106536763890e-3,
	.844182239838527433e-4,
	-.261908384015814087e-4,
	.368991826595316234e-5,
}

// LogGamma returns ln(Gamma(z)) for z > 0. For other z, including
// NaN, an error wrapping ErrDomain is returned.
func LogGamma(z float64) (float64, error) {
	if !(z > 0) {
		return 0, errors.Wrapf(ErrDomain, "gamma is undefined for z = %v", z)
	}

	tmp := z + lanczosG
	tmp = (z+0.5)*math.Log(tmp) - tmp

	series := lanczosBase
	for i, c := range lanczosCoef {
		series += c / (z + float64(1+i))
	}

	return tmp + math.Log(lanczosSqrtTwoPi*series/z), nil
}

// Gamma returns Gamma(z) for z > 0, evaluated as the exponential of
// LogGamma. The result overflows to +Inf for z above about 171.6.
func Gamma(z float64) (float64, error) {
	lg, err := LogGamma(z)
	if err != nil {
		return 0, err
	}

	return math.Exp(lg), nil
}
