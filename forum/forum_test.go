// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package forum_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/category"
	"github.com/cruxforum/challengerd/forum"
	"github.com/cruxforum/challengerd/records"
	"github.com/cruxforum/challengerd/storage"
)

// test files
const testingDirName = "testing"

var databaseFileName = filepath.Join(testingDirName, "test")

// mock clock shared by all tests; only ever moved forwards
var testClock *clock.Mock

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	if err := storage.Initialise(databaseFileName); nil != err {
		panic("storage initialise error: " + err.Error())
	}

	testClock = clock.NewMock()
	testClock.Set(time.Unix(1600000000, 0))
	if err := forum.Initialise(testClock); nil != err {
		panic("forum initialise error: " + err.Error())
	}

	rc := m.Run()

	forum.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

func testNow() uint64 {
	return uint64(testClock.Now().Unix())
}

// fund a fresh wallet keyed by tag and commit it
func fundWallet(t *testing.T, tag string, amount uint64) address.Address {
	t.Helper()
	wallet := address.NewFromSeed([]byte(tag))
	trx, err := storage.NewTransaction()
	require.NoError(t, err)
	defer trx.Discard()
	require.NoError(t, trx.Deposit(wallet, amount))
	require.NoError(t, trx.Commit())
	return wallet
}

func walletBalance(t *testing.T, addr address.Address) uint64 {
	t.Helper()
	balance, _, err := storage.ReadCellDirect(addr)
	require.NoError(t, err)
	return balance
}

func loadCrux(t *testing.T, addr address.Address) *records.Crux {
	t.Helper()
	_, payload, err := storage.ReadCellDirect(addr)
	require.NoError(t, err)
	crux, err := records.UnpackCrux(payload)
	require.NoError(t, err)
	return crux
}

func loadProfile(t *testing.T, addr address.Address) *records.UserProfile {
	t.Helper()
	_, payload, err := storage.ReadCellDirect(addr)
	require.NoError(t, err)
	profile, err := records.UnpackUserProfile(payload)
	require.NoError(t, err)
	return profile
}

func loadChallenge(t *testing.T, addr address.Address) *records.Challenge {
	t.Helper()
	_, payload, err := storage.ReadCellDirect(addr)
	require.NoError(t, err)
	challenge, err := records.UnpackChallenge(payload)
	require.NoError(t, err)
	return challenge
}

func loadSubmission(t *testing.T, addr address.Address) *records.Submission {
	t.Helper()
	_, payload, err := storage.ReadCellDirect(addr)
	require.NoError(t, err)
	submission, err := records.UnpackSubmission(payload)
	require.NoError(t, err)
	return submission
}

// a committed crux plus its derived treasury
type cruxFixture struct {
	manager  address.Address
	crux     address.Address
	treasury address.Address
}

func newCrux(t *testing.T, tag string, fees records.CruxFees) cruxFixture {
	t.Helper()
	manager := fundWallet(t, tag+"-manager", 10_000_000)
	cruxAddress := address.NewFromSeed([]byte(tag + "-crux"))
	treasury, _ := address.Derive(address.RoleTreasury, cruxAddress)
	require.NoError(t, forum.CreateCrux(manager, cruxAddress, fees))
	return cruxFixture{
		manager:  manager,
		crux:     cruxAddress,
		treasury: treasury,
	}
}

func newProfile(t *testing.T, f cruxFixture, tag string) (address.Address, address.Address) {
	t.Helper()
	owner := fundWallet(t, tag, 10_000_000)
	profile, _ := address.Derive(address.RoleUserProfile, f.crux, owner)
	require.NoError(t, forum.CreateProfile(f.crux, f.treasury, owner, profile))
	return owner, profile
}

func newModerator(t *testing.T, f cruxFixture, tag string) (address.Address, address.Address) {
	t.Helper()
	owner, profile := newProfile(t, f, tag)
	require.NoError(t, forum.AddModerator(f.manager, f.crux, owner, profile))
	return owner, profile
}

func defaultChallengeParams(reputation uint64) forum.ChallengeParams {
	return forum.ChallengeParams{
		Categories:  []category.Category{category.Development, category.Ideas},
		Title:       "build a light client",
		ContentURL:  "https://forum.example/challenges/light-client",
		ContentHash: address.NewFromSeed([]byte("light client brief")),
		ExpiresAt:   testNow() + 86400,
		Reputation:  reputation,
	}
}

func newChallenge(t *testing.T, f cruxFixture, moderator address.Address, moderatorProfile address.Address, tag string, reputation uint64) (address.Address, address.Address) {
	t.Helper()
	seed := address.NewFromSeed([]byte(tag + "-seed"))
	challenge, _ := address.Derive(address.RoleChallenge, f.crux, seed)
	require.NoError(t, forum.CreateChallenge(f.crux, moderator, moderatorProfile, seed, challenge, defaultChallengeParams(reputation)))
	return seed, challenge
}

func newSubmission(t *testing.T, f cruxFixture, owner address.Address, profile address.Address, seed address.Address, challenge address.Address, tag string) address.Address {
	t.Helper()
	submission, _ := address.Derive(address.RoleSubmission, challenge, profile)
	url := "https://forum.example/answers/" + tag
	hash := address.NewFromSeed([]byte(tag + "-answer"))
	require.NoError(t, forum.CreateSubmission(f.crux, f.treasury, owner, profile, seed, challenge, submission, url, hash))
	return submission
}
