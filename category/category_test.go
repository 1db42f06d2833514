// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cruxforum/challengerd/category"
	"github.com/cruxforum/challengerd/fault"
)

func TestStringRoundTrip(t *testing.T) {
	for c := category.First; c <= category.Last; c += 1 {
		parsed, err := category.FromString(c.String())
		assert.NoError(t, err)
		assert.Equal(t, c, parsed, "round trip failed for %#v", c)
	}
}

func TestFromStringAliases(t *testing.T) {
	c, err := category.FromString("AI")
	assert.NoError(t, err)
	assert.Equal(t, category.ArtificialIntelligence, c)

	c, err = category.FromString("depin")
	assert.NoError(t, err)
	assert.Equal(t, category.PhysicalInfrastructureNetworks, c)

	_, err = category.FromString("interpretive-dance")
	assert.Equal(t, fault.ErrInvalidCategory, err)
}

func TestIsValid(t *testing.T) {
	assert.False(t, category.Nothing.IsValid())
	assert.True(t, category.Development.IsValid())
	assert.True(t, category.Social.IsValid())
	assert.False(t, category.Category(uint64(category.Last)+1).IsValid())
}

func TestFromUint64(t *testing.T) {
	c, err := category.FromUint64(category.Ideas.Uint64())
	assert.NoError(t, err)
	assert.Equal(t, category.Ideas, c)

	_, err = category.FromUint64(0)
	assert.Equal(t, fault.ErrInvalidCategory, err)

	_, err = category.FromUint64(1 << 20)
	assert.Equal(t, fault.ErrInvalidCategory, err)
}
