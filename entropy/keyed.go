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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// keyedChunk is the number of keystream bytes produced per nonce.
const keyedChunk = 512

// Keyed draws values from the salsa20 keystream determined by a
// 32 byte key. Two Keyed sources built from the same key produce
// the same sequence of values. Keyed is not safe for concurrent use.
type Keyed struct {
	key   *[32]byte
	block uint64
	buf   []byte
	pos   int
}

// NewKeyed returns an instance of Keyed source.
func NewKeyed(key *[32]byte) *Keyed {
	k := *key
	return &Keyed{
		key: &k,
		buf: make([]byte, keyedChunk),
		pos: keyedChunk,
	}
}

// refill encrypts a zero block under the next nonce, so consecutive
// chunks come from disjoint keystreams.
func (k *Keyed) refill() {
	in := make([]byte, keyedChunk) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, k.block)

	salsa20.XORKeyStream(k.buf, in, nonce, k.key)
	k.block++
	k.pos = 0
}

// Draw returns the next keystream value mapped to [0, 1).
func (k *Keyed) Draw() (float64, error) {
	if k.pos+8 > len(k.buf) {
		k.refill()
	}
	v := binary.LittleEndian.Uint64(k.buf[k.pos : k.pos+8])
	k.pos += 8

	return toUnit(v), nil
}
