// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/storageitems/configuration"
	"github.com/bitmark-inc/storageitems/fault"
	"github.com/bitmark-inc/storageitems/schema"
	"github.com/bitmark-inc/storageitems/storage"
)

type environment struct {
	config   *configuration.Configuration
	catalogs []*schema.Catalog
	db       *storage.Database
	log      *logger.L
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "statectl"
	app.Usage = "inspect typed storage items in a state database"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.StringSliceFlag{
			Name:  "define, D",
			Usage: " configuration variable `NAME=VALUE`",
		},
	}

	itemFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "module, m",
			Value: "",
			Usage: "*storage module `NAME`",
		},
		cli.StringFlag{
			Name:  "item, i",
			Value: "",
			Usage: "*storage item `NAME`",
		},
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: " map key or list index `KEY`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "metadata",
			Usage:     "print the metadata of all modules (or one module) as JSON",
			ArgsUsage: "[MODULE]",
			Action:    runMetadata,
		},
		{
			Name:      "key",
			Usage:     "print the physical key of an item",
			ArgsUsage: "\n   (* = required)",
			Flags:     itemFlags,
			Action:    runKey,
		},
		{
			Name:      "get",
			Usage:     "read an item",
			ArgsUsage: "\n   (* = required)",
			Flags:     itemFlags,
			Action:    runGet,
		},
		{
			Name:      "set",
			Usage:     "write an item",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: "*new value `TEXT`",
				},
			}, itemFlags...),
			Action: runSet,
		},
		{
			Name:      "delete",
			Usage:     "remove a value or map entry, or clear a list",
			ArgsUsage: "\n   (* = required)",
			Flags:     itemFlags,
			Action:    runDelete,
		},
		{
			Name:      "dump",
			Usage:     "print raw keys and values below a prefix",
			ArgsUsage: "\n   (+ = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "prefix, p",
					Value: "",
					Usage: "+key prefix `TEXT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 100,
					Usage: " maximum number of keys `COUNT`",
				},
			}, itemFlags...),
			Action: runDump,
		},
		{
			Name:      "digest",
			Usage:     "print the SHA3-256 of all keys below a prefix",
			ArgsUsage: "\n   (+ = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "prefix, p",
					Value: "",
					Usage: "+key prefix `TEXT`",
				},
			}, itemFlags...),
			Action: runDigest,
		},
		{
			Name:  "version",
			Usage: "display statectl version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the database
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		file := c.GlobalString("config-file")
		if "" == file {
			return fmt.Errorf("configuration file is required")
		}

		variables := make(map[string]string)
		for _, d := range c.GlobalStringSlice("define") {
			s := strings.SplitN(d, "=", 2)
			if 2 != len(s) {
				return fmt.Errorf("define: %q is not NAME=VALUE", d)
			}
			variables[s[0]] = s[1]
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file, variables)
		if nil != err {
			return err
		}

		catalogs, err := config.Catalogs()
		if nil != err {
			return err
		}

		if err := logger.Initialise(config.LoggerConfiguration()); nil != err {
			return fmt.Errorf("logger setup failed with error: %s", err)
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		log := logger.New("statectl")
		log.Infof("starting: %s  version: %s", command, version)

		readOnly := config.Database.ReadOnly
		switch command {
		case "set", "delete":
		default:
			readOnly = storage.ReadOnly
		}

		if verbose {
			fmt.Fprintf(e, "database: %s  read only: %t\n", config.Database.Name, readOnly)
		}

		// metadata is printed from the configuration alone
		var db *storage.Database
		if "metadata" != command {
			db, err = storage.Open(config.Database.Name, readOnly)
			if nil != err {
				log.Errorf("open database: %s  error: %s", config.Database.Name, err)
				fault.Finalise()
				logger.Finalise()
				return err
			}
		}

		c.App.Metadata["env"] = &environment{
			config:   config,
			catalogs: catalogs,
			db:       db,
			log:      log,
			verbose:  verbose,
			e:        e,
			w:        w,
		}
		return nil
	}

	// close the database and flush logs
	app.After = func(c *cli.Context) error {
		env, ok := c.App.Metadata["env"].(*environment)
		if !ok {
			return nil
		}
		var err error
		if nil != env.db {
			err = env.db.Close()
		}
		env.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return err
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
