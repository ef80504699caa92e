package random

import (
	"sync"

	"github.com/go-errors/errors"
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/chacha20"

	"github.com/minvws/bigprime/big"
	"github.com/minvws/bigprime/internal/common"
)

// DefaultReseedInterval is the number of output bytes after which a
// generator replaces its key.
const DefaultReseedInterval = 1 << 20

// maxReseedInterval keeps the 32-bit ChaCha20 block counter from wrapping.
const maxReseedInterval = 1 << 36

// rekeyFunc derives the next key from 32 bytes of the current keystream.
type rekeyFunc func(carry []byte) ([32]byte, error)

// generator is a ChaCha20 keystream whose key is replaced every interval
// bytes. It is safe for concurrent use.
type generator struct {
	mu       sync.Mutex
	name     string
	cipher   *chacha20.Cipher
	since    uint64 // bytes since the last (re)key
	consumed uint64 // total bytes handed out
	interval uint64
	rekey    rekeyFunc
	err      error // sticky; set once the generator can no longer be keyed
}

var zeroNonce [chacha20.NonceSize]byte

func newGenerator(name string, interval uint64, rekey rekeyFunc) *generator {
	if interval == 0 {
		interval = DefaultReseedInterval
	}
	if interval > maxReseedInterval {
		interval = maxReseedInterval
	}
	return &generator{name: name, interval: interval, rekey: rekey}
}

func (g *generator) setKey(carry []byte) error {
	key, err := g.rekey(carry)
	if err != nil {
		g.err = err
		g.cipher = nil
		return err
	}
	c, err := chacha20.NewUnauthenticatedCipher(key[:], zeroNonce[:])
	if err != nil {
		g.err = errors.Wrap(err, 0)
		return g.err
	}
	g.cipher = c
	g.since = 0
	common.Logger.WithField("source", g.name).Debug("random: generator keyed")
	return nil
}

// read fills p with keystream, rekeying on first use and whenever the
// interval is exhausted.
func (g *generator) read(p []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.err != nil {
		return g.err
	}
	if g.cipher == nil {
		if err := g.setKey(nil); err != nil {
			return err
		}
	}

	for len(p) > 0 {
		if g.since >= g.interval {
			carry := make([]byte, 32)
			g.cipher.XORKeyStream(carry, carry)
			if err := g.setKey(carry); err != nil {
				return err
			}
		}
		n := uint64(len(p))
		if left := g.interval - g.since; n > left {
			n = left
		}
		clear(p[:n])
		g.cipher.XORKeyStream(p[:n], p[:n])
		g.since += n
		g.consumed += n
		p = p[n:]
	}
	return nil
}

func (g *generator) nextBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.WrapPrefix(big.ErrInvalidArgument, "negative byte count", 0)
	}
	buf := make([]byte, n)
	if err := g.read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (g *generator) consumedBytes() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.consumed
}

func hashKey(parts ...[]byte) [32]byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}
