package gopoly

import (
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/blake2b"
)

// Shuffle permutes p's terms uniformly at random using r. Only storage order
// changes, never the value.
func (p *Polynomial) Shuffle(r *rand.Rand) *Polynomial {
	r.Shuffle(len(p.terms), func(i, j int) {
		p.terms[i], p.terms[j] = p.terms[j], p.terms[i]
	})
	return p
}

// KeyedSource is a rand.Source64 reading from a blake2b XOF. Two sources built
// from the same key yield the same stream, so a key pins a shuffle order.
// A KeyedSource must not be shared between goroutines.
type KeyedSource struct {
	key []byte
	xof blake2b.XOF
	buf [8]byte
}

// NewKeyedSource returns a source keyed with key. key may be nil and must be
// at most 64 bytes.
func NewKeyedSource(key []byte) (*KeyedSource, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	s := &KeyedSource{xof: xof}
	s.key = append(s.key, key...)
	return s, nil
}

// Key returns a copy of the key the source was built with.
func (s *KeyedSource) Key() []byte {
	key := make([]byte, len(s.key))
	copy(key, s.key)
	return key
}

func (s *KeyedSource) Uint64() uint64 {
	if _, err := s.xof.Read(s.buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

func (s *KeyedSource) Int63() int64 { return int64(s.Uint64() >> 1) }

// Seed resets the stream and absorbs seed, keeping the key.
func (s *KeyedSource) Seed(seed int64) {
	s.xof.Reset()
	binary.LittleEndian.PutUint64(s.buf[:], uint64(seed))
	s.xof.Write(s.buf[:])
}
