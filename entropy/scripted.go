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
	"github.com/pkg/errors"
)

// Scripted replays a fixed list of values, starting over once the
// list is exhausted. It is not safe for concurrent use.
type Scripted struct {
	values []float64
	drawn  int
}

// NewScripted returns a Scripted source replaying values in order.
func NewScripted(values ...float64) *Scripted {
	return &Scripted{
		values: append([]float64(nil), values...),
	}
}

// Draw returns the next scripted value. It fails when the script
// is empty or the value lies outside of [0, 1).
func (s *Scripted) Draw() (float64, error) {
	if len(s.values) == 0 {
		return 0, errors.New("script is empty")
	}
	v := s.values[s.drawn%len(s.values)]
	if !(v >= 0 && v < 1) {
		return 0, errors.Errorf("scripted value %v is not in [0, 1)", v)
	}
	s.drawn++

	return v, nil
}

// Drawn returns the number of values drawn so far.
func (s *Scripted) Drawn() int {
	return s.drawn
}

// Reset rewinds the script to its first value.
func (s *Scripted) Reset() {
	s.drawn = 0
}
