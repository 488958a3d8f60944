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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
)

// keyedBlockSize is the number of keystream bytes produced per refill.
const keyedBlockSize = 512

// KeyedSource is a deterministic source of randomness whose output
// is the salsa20 keystream determined by a 32 byte key. Two sources
// created with the same key and seed produce the same sequence,
// which makes sampled arrays reproducible across runs and platforms.
//
// KeyedSource is not safe for concurrent use.
type KeyedSource struct {
	key    *[32]byte
	stream uint64
	block  uint64
	buf    []byte
	pos    int
}

// NewKeyedSource returns a KeyedSource determined by key.
// The key is copied, so later changes to it have no effect.
func NewKeyedSource(key *[32]byte) *KeyedSource {
	k := *key
	return &KeyedSource{
		key: &k,
		buf: make([]byte, keyedBlockSize),
		pos: keyedBlockSize,
	}
}

// Seed selects an independent keystream for the same key and
// restarts it from the beginning.
func (s *KeyedSource) Seed(seed uint64) {
	s.stream = seed
	s.block = 0
	s.pos = keyedBlockSize
}

// Uint64 returns the next 8 bytes of the keystream.
func (s *KeyedSource) Uint64() uint64 {
	if s.pos+8 > keyedBlockSize {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos : s.pos+8])
	s.pos += 8

	return v
}

// refill encrypts a zero block under a nonce made of the
// stream and block counters.
func (s *KeyedSource) refill() {
	nonce := make([]byte, 24)
	binary.LittleEndian.PutUint64(nonce[0:8], s.stream)
	binary.LittleEndian.PutUint64(nonce[8:16], s.block)
	in := make([]byte, keyedBlockSize) // input is initialized to zeros

	salsa20.XORKeyStream(s.buf, in, nonce, s.key)
	s.block++
	s.pos = 0
}

var _ rand.Source = (*KeyedSource)(nil)
