package common

import (
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-errors/errors"
	"github.com/multiformats/go-multihash"
	bolt "go.etcd.io/bbolt"

	"github.com/minvws/bigprime/big"
)

// BoltDBFile is the default filename of the boltDB storage
const BoltDBFile = "primes.db"

// BoltStorage persists primes in a bolt database. Keys are the multihash of
// the prime's bytes, so storing the same prime twice keeps one copy; values
// are CBOR bignums.
type BoltStorage struct {
	client *bolt.DB
}

// OpenBoltStorage opens (or creates) the bolt database at path.
func OpenBoltStorage(path string) (*BoltStorage, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.WrapPrefix(err, "opening prime storage "+path, 0)
	}
	return &BoltStorage{client: db}, nil
}

func (b *BoltStorage) Close() error {
	return b.client.Close()
}

// Fetch removes and returns one stored prime.
func (b *BoltStorage) Fetch(bits, certainty int) (*big.Int, error) {
	var p *big.Int

	err := b.client.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName(bits, certainty))
		if bucket == nil {
			return emptyError(bits, certainty)
		}

		c := bucket.Cursor()
		k, v := c.First()
		if k == nil {
			return emptyError(bits, certainty)
		}

		p = new(big.Int)
		if err := cbor.Unmarshal(v, p); err != nil {
			return errors.WrapPrefix(err, "decoding stored prime", 0)
		}
		return bucket.Delete(k)
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (b *BoltStorage) Store(bits, certainty int, p *big.Int) error {
	key, err := multihash.Sum(p.Bytes(), multihash.SHA2_256, -1)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	value, err := cbor.Marshal(p)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	return b.client.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName(bits, certainty))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key.B58String()), value)
	})
}

func (b *BoltStorage) Count(bits, certainty int) (int, error) {
	var n int
	err := b.client.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName(bits, certainty))
		if bucket != nil {
			n = bucket.Stats().KeyN
		}
		return nil
	})
	return n, err
}
