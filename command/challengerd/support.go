// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/cruxforum/challengerd/address"
	"github.com/cruxforum/challengerd/configuration"
	"github.com/cruxforum/challengerd/forum"
	"github.com/cruxforum/challengerd/storage"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// open the configuration, logging and the cell store for one command
//
// the returned teardown must be deferred by the caller
func setup(c *cli.Context) (*metadata, func(), error) {

	file := c.GlobalString("config-file")
	if "" == file {
		return nil, nil, fmt.Errorf("configuration file is required, use: --config-file FILE")
	}

	config, err := configuration.GetConfiguration(file)
	if nil != err {
		return nil, nil, fmt.Errorf("configuration file: %q error: %s", file, err)
	}

	if err := logger.Initialise(config.Logging); nil != err {
		return nil, nil, fmt.Errorf("logger setup failed: %s", err)
	}

	if err := storage.Initialise(config.DatabasePrefix()); nil != err {
		logger.Finalise()
		return nil, nil, fmt.Errorf("storage setup failed: %s", err)
	}

	if err := forum.Initialise(nil); nil != err {
		storage.Finalise()
		logger.Finalise()
		return nil, nil, fmt.Errorf("forum setup failed: %s", err)
	}

	teardown := func() {
		forum.Finalise()
		storage.Finalise()
		logger.Finalise()
	}

	m := &metadata{
		file:    file,
		config:  config,
		verbose: c.GlobalBool("verbose"),
		e:       c.App.ErrWriter,
		w:       c.App.Writer,
	}
	return m, teardown, nil
}

// decode a required base58 address flag
func addressFlag(c *cli.Context, name string) (address.Address, error) {
	s := c.String(name)
	if "" == s {
		return address.Zero, fmt.Errorf("%s is required", name)
	}
	a, err := address.FromBase58(s)
	if nil != err {
		return address.Zero, fmt.Errorf("%s: %q error: %s", name, s, err)
	}
	return a, nil
}
