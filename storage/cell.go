// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/arith"
	"github.com/cruxforum/challengerd/fault"
)

// cell layout: 8 byte big endian balance then the record payload

func encodeCell(balance uint64, payload []byte) []byte {
	value := make([]byte, 8, 8+len(payload))
	binary.BigEndian.PutUint64(value, balance)
	return append(value, payload...)
}

func decodeCell(value []byte) (uint64, []byte) {
	if len(value) < 8 {
		logger.Panicf("storage: truncated cell: %x", value)
	}
	return binary.BigEndian.Uint64(value[:8]), value[8:]
}

// CreateCell - allocate a record cell at an address
//
// the reserve for the payload size is withdrawn from the payer's
// wallet and escrowed as the new cell's balance
func (trx *Transaction) CreateCell(addr address.Address, payload []byte, payer address.Address) error {
	if trx.Has(Pool.Cells, addr.Bytes()) {
		return fault.ErrRecordAlreadyExists
	}

	reserve := ReserveForSize(len(payload))
	if err := trx.withdraw(payer, reserve); nil != err {
		return err
	}

	trx.Put(Pool.Cells, addr.Bytes(), encodeCell(reserve, payload))
	return nil
}

// ReadCell - fetch balance and payload of an existing cell
func (trx *Transaction) ReadCell(addr address.Address) (uint64, []byte, error) {
	value := trx.Get(Pool.Cells, addr.Bytes())
	if nil == value {
		return 0, nil, fault.ErrRecordNotFound
	}
	balance, payload := decodeCell(value)
	return balance, payload, nil
}

// WriteCell - replace the payload of an existing cell, keeping its
// balance
//
// growth fee collection is the caller's business: the new payload's
// reserve must already be covered
func (trx *Transaction) WriteCell(addr address.Address, payload []byte) error {
	balance, _, err := trx.ReadCell(addr)
	if nil != err {
		return err
	}
	trx.Put(Pool.Cells, addr.Bytes(), encodeCell(balance, payload))
	return nil
}

// Transfer - move balance between two cells
//
// the destination wallet cell is created on first deposit
func (trx *Transaction) Transfer(from address.Address, to address.Address, amount uint64) error {
	if err := trx.withdraw(from, amount); nil != err {
		return err
	}
	return trx.deposit(to, amount)
}

// CloseCell - destroy a cell, refunding its whole balance
func (trx *Transaction) CloseCell(addr address.Address, receiver address.Address) error {
	balance, _, err := trx.ReadCell(addr)
	if nil != err {
		return err
	}
	if err := trx.deposit(receiver, balance); nil != err {
		return err
	}
	trx.Delete(Pool.Cells, addr.Bytes())
	return nil
}

// Deposit - mint balance into a cell, creating a wallet if absent
//
// bootstrap and faucet use only; everything else moves existing
// balance with Transfer
func (trx *Transaction) Deposit(addr address.Address, amount uint64) error {
	return trx.deposit(addr, amount)
}

// Balance - current balance of a cell, false if absent
func (trx *Transaction) Balance(addr address.Address) (uint64, bool) {
	value := trx.Get(Pool.Cells, addr.Bytes())
	if nil == value {
		return 0, false
	}
	balance, _ := decodeCell(value)
	return balance, true
}

// Footprint - payload byte size of a cell, false if absent
func (trx *Transaction) Footprint(addr address.Address) (int, bool) {
	value := trx.Get(Pool.Cells, addr.Bytes())
	if nil == value {
		return 0, false
	}
	_, payload := decodeCell(value)
	return len(payload), true
}

func (trx *Transaction) withdraw(from address.Address, amount uint64) error {
	value := trx.Get(Pool.Cells, from.Bytes())
	if nil == value {
		return fault.ErrInsufficientFunds
	}
	balance, payload := decodeCell(value)

	remaining, err := arith.TrySub(balance, amount)
	if nil != err {
		return fault.ErrInsufficientFunds
	}
	trx.Put(Pool.Cells, from.Bytes(), encodeCell(remaining, payload))
	return nil
}

func (trx *Transaction) deposit(to address.Address, amount uint64) error {
	value := trx.Get(Pool.Cells, to.Bytes())
	if nil == value {
		trx.Put(Pool.Cells, to.Bytes(), encodeCell(amount, nil))
		return nil
	}
	balance, payload := decodeCell(value)

	total, err := arith.TryAdd(balance, amount)
	if nil != err {
		return err
	}
	trx.Put(Pool.Cells, to.Bytes(), encodeCell(total, payload))
	return nil
}

// ReadCellDirect - snapshot read outside any transaction
//
// used by enquiry surfaces; mutation paths always use a Transaction
func ReadCellDirect(addr address.Address) (uint64, []byte, error) {
	value := Pool.Cells.Get(addr.Bytes())
	if nil == value {
		return 0, nil, fault.ErrRecordNotFound
	}
	balance, payload := decodeCell(value)
	return balance, payload, nil
}
