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
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Source supplies values uniformly distributed over [0, 1).
type Source interface {
	Draw() (float64, error)
}

// unitScale maps the top 53 bits of a 64-bit word onto [0, 1).
const unitScale = 1.0 / (1 << 53)

// toUnit converts a uniformly random 64-bit word into a float64
// in [0, 1). Only the 53 most significant bits are used, so every
// representable result is equally likely.
func toUnit(v uint64) float64 {
	return float64(v>>11) * unitScale
}

// Crypto draws values from a cryptographically secure random
// number generator. It is safe for concurrent use.
type Crypto struct {
	reader io.Reader
}

// NewCrypto returns a Crypto source reading from crypto/rand.
func NewCrypto() *Crypto {
	return &Crypto{reader: rand.Reader}
}

// Draw returns a uniformly random value from [0, 1).
func (c *Crypto) Draw() (float64, error) {
	randBytes := make([]byte, 8)
	if _, err := io.ReadFull(c.reader, randBytes); err != nil {
		return 0, errors.Wrap(err, "error while reading entropy")
	}

	return toUnit(binary.LittleEndian.Uint64(randBytes)), nil
}
