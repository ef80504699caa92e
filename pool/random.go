package pool

import (
	"context"
	"encoding/json"

	"github.com/minvws/bigprime/big"
	"github.com/minvws/bigprime/internal/common"
	"github.com/minvws/bigprime/prime"
	"github.com/minvws/bigprime/random"
)

type randomPool struct {
	storage *common.GeneratorStorage
}

func (p *randomPool) StatsJSON() ([]byte, error) {
	type Stats struct {
		Name string
	}
	return json.Marshal(Stats{
		Name: "random",
	})
}

// NewRandomPool returns a pool that holds nothing and generates every prime
// on demand from src.
func NewRandomPool(src *random.Secure) PrimePool {
	return &randomPool{
		storage: common.NewGeneratorStorage(generator(src)),
	}
}

func (p *randomPool) Fetch(bits, certainty int) (*big.Int, error) {
	return p.storage.Fetch(bits, certainty)
}

func generator(src *random.Secure) common.GenerateFunc {
	return func(ctx context.Context, bits, certainty int) (*big.Int, error) {
		return prime.RandomPrime(ctx, bits, certainty, src)
	}
}
