// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package category - closed enumeration of challenge category tags
package category

import (
	"fmt"
	"strings"

	"github.com/cruxforum/challengerd/fault"
)

// Category - category enumeration
type Category uint64

// possible category values
const (
	Nothing                        Category = iota // this must be the first value
	ArtificialIntelligence         Category = iota
	CryptoInfrastructure           Category = iota
	DaosAndNetworkStates           Category = iota
	DataAndAnalytics               Category = iota
	Development                    Category = iota
	FinanceAndPayments             Category = iota
	GamingAndEntertainment         Category = iota
	Ideas                          Category = iota
	MobileConsumerApps             Category = iota
	Nfts                           Category = iota
	PhysicalInfrastructureNetworks Category = iota
	Social                         Category = iota
	maximumValue                   Category = iota // this must be the last value
	First                          Category = Nothing + 1
	Last                           Category = maximumValue - 1
	Count                          int      = int(Last) // count of categories
)

// internal conversion
func toString(c Category) ([]byte, error) {
	switch c {
	case Nothing:
		return []byte{}, nil
	case ArtificialIntelligence:
		return []byte("artificial-intelligence"), nil
	case CryptoInfrastructure:
		return []byte("crypto-infrastructure"), nil
	case DaosAndNetworkStates:
		return []byte("daos-and-network-states"), nil
	case DataAndAnalytics:
		return []byte("data-and-analytics"), nil
	case Development:
		return []byte("development"), nil
	case FinanceAndPayments:
		return []byte("finance-and-payments"), nil
	case GamingAndEntertainment:
		return []byte("gaming-and-entertainment"), nil
	case Ideas:
		return []byte("ideas"), nil
	case MobileConsumerApps:
		return []byte("mobile-consumer-apps"), nil
	case Nfts:
		return []byte("nfts"), nil
	case PhysicalInfrastructureNetworks:
		return []byte("physical-infrastructure-networks"), nil
	case Social:
		return []byte("social"), nil
	default:
		return []byte{}, fault.ErrInvalidCategory
	}
}

// convert a string to a category
func fromString(in string) (Category, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "artificial-intelligence", "ai":
		return ArtificialIntelligence, nil
	case "crypto-infrastructure":
		return CryptoInfrastructure, nil
	case "daos-and-network-states", "daos":
		return DaosAndNetworkStates, nil
	case "data-and-analytics":
		return DataAndAnalytics, nil
	case "development":
		return Development, nil
	case "finance-and-payments":
		return FinanceAndPayments, nil
	case "gaming-and-entertainment":
		return GamingAndEntertainment, nil
	case "ideas":
		return Ideas, nil
	case "mobile-consumer-apps":
		return MobileConsumerApps, nil
	case "nfts":
		return Nfts, nil
	case "physical-infrastructure-networks", "depin":
		return PhysicalInfrastructureNetworks, nil
	case "social":
		return Social, nil
	default:
		return Nothing, fault.ErrInvalidCategory
	}
}

// FromString - parse a category symbol
func FromString(in string) (Category, error) {
	return fromString(in)
}

// FromUint64 - convert a stored numeric value, validating range
func FromUint64(n uint64) (Category, error) {
	c := Category(n)
	if !c.IsValid() {
		return Nothing, fault.ErrInvalidCategory
	}
	return c, nil
}

// Uint64 - numeric value for storage
func (category Category) Uint64() uint64 {
	return uint64(category)
}

// String - convert a category to its string symbol
func (category Category) String() string {
	s, err := toString(category)
	if nil != err {
		panic(fmt.Sprintf("invalid category enumeration: %d", category))
	}
	return string(s)
}

// GoString - show enum value and symbol, for debugging
func (category Category) GoString() string {
	return fmt.Sprintf("<Category#%d:%q>", uint64(category), category.String())
}

// MarshalText - for the encoding packages
func (category Category) MarshalText() ([]byte, error) {
	return toString(category)
}

// UnmarshalText - for the encoding packages
func (category *Category) UnmarshalText(s []byte) error {
	parsed, err := fromString(string(s))
	if nil != err {
		return err
	}
	*category = parsed
	return nil
}

// IsValid - valid category if in range of First to Last
// Nothing is not considered as valid
func (category Category) IsValid() bool {
	return category >= First && category <= Last
}
