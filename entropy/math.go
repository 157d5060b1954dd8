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

package entropy

import (
	"math/rand"
)

// Math adapts a *rand.Rand owned by the caller. It inherits the
// concurrency guarantees of the wrapped generator.
type Math struct {
	r *rand.Rand
}

// NewMath returns an instance of Math source.
func NewMath(r *rand.Rand) *Math {
	return &Math{r: r}
}

// Draw returns r.Float64().
func (m *Math) Draw() (float64, error) {
	return m.r.Float64(), nil
}
