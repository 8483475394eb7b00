// Copyright 2020-2026 The PBJ-Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pbj

import (
	"crypto"
	"crypto/rand"
	"crypto/sha256"
)

// Digest returns the SHA-256 hash of b's content, streaming through
// [Bytes.WriteTo] rather than materializing an intermediate copy. Unlike
// [Bytes.Hash], this is a cryptographic digest suitable for content
// addressing or tamper detection, not a hash-table key.
func (b Bytes) Digest() ([32]byte, error) {
	h := sha256.New()
	if _, err := b.WriteTo(h); err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}

// Sign computes a digital signature over b's content using signer, hashing
// with SHA-256 first per the crypto.Signer contract. Most PBJ consumers
// sign serialized messages for transaction or block integrity, not for
// individual field values, so this operates on a whole Bytes record.
func (b Bytes) Sign(signer crypto.Signer) ([]byte, error) {
	digest, err := b.Digest()
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(rand.Reader, digest[:], crypto.SHA256)
	if err != nil {
		return nil, newError(KindArgument, -1, "signing failed: %v", err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid SHA-256 signature over b's content
// under pub, using verify as the scheme-specific verification function
// (e.g. a closure over ecdsa.VerifyASN1 or ed25519.Verify bound to a
// concrete public key type — crypto.PublicKey carries no Verify method of
// its own).
func (b Bytes) Verify(sig []byte, verify func(digest, sig []byte) bool) (bool, error) {
	digest, err := b.Digest()
	if err != nil {
		return false, err
	}
	return verify(digest[:], sig), nil
}
