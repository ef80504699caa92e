package pool

import (
	"context"
	"encoding/json"

	"github.com/go-errors/errors"

	"github.com/minvws/bigprime/big"
	"github.com/minvws/bigprime/internal/common"
	"github.com/minvws/bigprime/random"
)

// BoltPool serves primes precalculated into a bolt database by Fill.
type BoltPool struct {
	storage *common.BoltStorage
	path    string
}

// NewBoltPool opens the pool database at path, creating it if needed.
func NewBoltPool(path string) (*BoltPool, error) {
	s, err := common.OpenBoltStorage(path)
	if err != nil {
		return nil, err
	}
	return &BoltPool{storage: s, path: path}, nil
}

// NewBoltPoolFromConfig opens the pool database named by cfg.File.
func NewBoltPoolFromConfig(cfg Config) (*BoltPool, error) {
	if cfg.File == "" {
		return nil, errors.WrapPrefix(big.ErrInvalidArgument, "pool: no database file configured", 0)
	}
	return NewBoltPool(cfg.File)
}

func (p *BoltPool) Fetch(bits, certainty int) (*big.Int, error) {
	return p.storage.Fetch(bits, certainty)
}

// Store adds a precalculated prime to the pool.
func (p *BoltPool) Store(bits, certainty int, prime *big.Int) error {
	return p.storage.Store(bits, certainty, prime)
}

// Count returns the number of primes available for the given shape.
func (p *BoltPool) Count(bits, certainty int) (int, error) {
	return p.storage.Count(bits, certainty)
}

func (p *BoltPool) Close() error {
	return p.storage.Close()
}

func (p *BoltPool) StatsJSON() ([]byte, error) {
	type Stats struct {
		Name string
		File string
	}
	return json.Marshal(Stats{
		Name: "bolt",
		File: p.path,
	})
}

// MemoryPool keeps up to cfg.Size primes of one shape in memory, refilled in
// the background until its context ends.
type MemoryPool struct {
	storage *common.InMemoryStorage
	cfg     Config
}

func NewMemoryPool(ctx context.Context, cfg Config, src *random.Secure) (*MemoryPool, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &MemoryPool{
		storage: common.NewInMemoryStorage(ctx, cfg.Size, cfg.Bits, cfg.Certainty, generator(src)),
		cfg:     cfg,
	}, nil
}

func (p *MemoryPool) Fetch(bits, certainty int) (*big.Int, error) {
	return p.storage.Fetch(bits, certainty)
}

func (p *MemoryPool) StatsJSON() ([]byte, error) {
	type Stats struct {
		Name      string
		Size      int
		Available int
		Bits      int
		Certainty int
	}
	available, _ := p.storage.Count(p.cfg.Bits, p.cfg.Certainty)
	return json.Marshal(Stats{
		Name:      "memory",
		Size:      p.cfg.Size,
		Available: available,
		Bits:      p.cfg.Bits,
		Certainty: p.cfg.Certainty,
	})
}
