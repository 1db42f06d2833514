// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruxforum/challengerd/configuration"
)

// test files
const testingDirName = "testing"

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)
	rc := m.Run()
	removeFiles()
	os.Exit(rc)
}

const sampleConfiguration = `
local M = {}

M.data_directory = "."

M.database = {
    directory = "cells",
    name = "forum",
}

M.logging = {
    size = 65536,
    count = 5,
    console = true,
    levels = {
        DEFAULT = "info",
        forum = "debug",
    },
}

return M
`

func writeConfigurationFile(t *testing.T, name string, content string) string {
	t.Helper()
	fileName := filepath.Join(testingDirName, name)
	require.NoError(t, ioutil.WriteFile(fileName, []byte(content), 0600))
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfigurationFile(t, "challengerd.conf", sampleConfiguration)

	config, err := configuration.GetConfiguration(fileName)
	require.NoError(t, err)

	dir, err := filepath.Abs(testingDirName)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cells"), config.Database.Directory)
	assert.Equal(t, filepath.Join(dir, "cells", "forum"), config.DatabasePrefix())

	assert.Equal(t, 65536, config.Logging.Size)
	assert.Equal(t, 5, config.Logging.Count)
	assert.True(t, config.Logging.Console)
	assert.Equal(t, "debug", config.Logging.Levels["forum"])

	// unset fields keep their defaults
	assert.Equal(t, "challengerd.log", config.Logging.File)
	assert.Equal(t, "", config.PidFile)
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration(filepath.Join(testingDirName, "no-such.conf"))
	assert.Error(t, err)
}

func TestGetConfigurationBadDataDirectory(t *testing.T) {
	fileName := writeConfigurationFile(t, "bad.conf", `
local M = {}
M.data_directory = "~"
return M
`)
	_, err := configuration.GetConfiguration(fileName)
	assert.Error(t, err)
}
