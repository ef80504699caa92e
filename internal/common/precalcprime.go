// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"context"
	"fmt"

	"github.com/go-errors/errors"

	"github.com/minvws/bigprime/big"
)

// ErrStorageEmpty is returned by Fetch when no prime of the requested shape
// is stored.
var ErrStorageEmpty = errors.Errorf("storage: no precalculated prime available")

// PrimeStorage holds precalculated primes grouped by bit length and
// certainty.
type PrimeStorage interface {
	Fetch(bits, certainty int) (*big.Int, error)
	Store(bits, certainty int, p *big.Int) error
	Count(bits, certainty int) (int, error)
}

// GenerateFunc produces one fresh prime of the given shape.
type GenerateFunc func(ctx context.Context, bits, certainty int) (*big.Int, error)

// BucketName is where the primes of a given bits/certainty are stored (sprintf'ed)
const BucketName = "primes_%d_%d"

func bucketName(bits, certainty int) []byte {
	return []byte(fmt.Sprintf(BucketName, bits, certainty))
}

func emptyError(bits, certainty int) error {
	return errors.WrapPrefix(ErrStorageEmpty, string(bucketName(bits, certainty)), 1)
}
