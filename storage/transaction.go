// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/cruxforum/challengerd/fault"
)

// Transaction - an atomic unit of cell mutations
//
// pending writes overlay the database for reads; Commit writes one
// leveldb batch, Discard drops everything.  Holding the transaction
// serialises against all other transactions.
type Transaction struct {
	pending map[string][]byte // prefixed key -> value, nil entry means delete
	done    bool
}

// NewTransaction - begin an atomic unit
//
// blocks until any other transaction has committed or discarded
func NewTransaction() (*Transaction, error) {
	poolData.RLock()
	initialised := nil != poolData.db
	poolData.RUnlock()
	if !initialised {
		return nil, fault.ErrNotInitialised
	}

	poolData.commit.Lock()
	return &Transaction{
		pending: make(map[string][]byte),
	}, nil
}

// Get - read through the overlay
//
// returns nil if the record was deleted in this transaction or was
// never stored
func (trx *Transaction) Get(pool *PoolHandle, key []byte) []byte {
	prefixed := pool.prefixKey(key)
	if value, ok := trx.pending[string(prefixed)]; ok {
		return value
	}
	return pool.Get(key)
}

// Has - existence check through the overlay
func (trx *Transaction) Has(pool *PoolHandle, key []byte) bool {
	prefixed := pool.prefixKey(key)
	if value, ok := trx.pending[string(prefixed)]; ok {
		return nil != value
	}
	return pool.Has(key)
}

// Put - record a pending write
func (trx *Transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	trx.pending[string(pool.prefixKey(key))] = stored
}

// Delete - record a pending delete
func (trx *Transaction) Delete(pool *PoolHandle, key []byte) {
	trx.pending[string(pool.prefixKey(key))] = nil
}

// Commit - apply all pending mutations as one batch
func (trx *Transaction) Commit() error {
	if trx.done {
		return fault.ErrNotInitialised
	}
	trx.done = true
	defer poolData.commit.Unlock()

	batch := new(leveldb.Batch)
	for key, value := range trx.pending {
		if nil == value {
			batch.Delete([]byte(key))
		} else {
			batch.Put([]byte(key), value)
		}
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return fault.ErrNotInitialised
	}
	return poolData.db.Write(batch, nil)
}

// Discard - drop all pending mutations
//
// safe to defer, a no-op after Commit
func (trx *Transaction) Discard() {
	if trx.done {
		return
	}
	trx.done = true
	trx.pending = nil
	poolData.commit.Unlock()
}
