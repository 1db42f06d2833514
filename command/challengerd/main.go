// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2024 Cruxforum Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// challengerd - command line interface to a local challenge forum
//
// record addresses are derived client side from their owner chain so
// most commands only need the crux address and the acting wallet
package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
)

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "challengerd"
	app.Usage = "tenant-scoped challenge forum ledger"
	app.Version = version
	app.HideVersion = false

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a fresh wallet address, will not store anything",
			Action: runGenerate,
		},
		{
			Name:      "derive",
			Usage:     "show the derived address for a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "role, r",
					Usage: "*record role `NAME` [authority|treasury|profile|challenge|submission]",
				},
				cli.StringSliceFlag{
					Name:  "parent, p",
					Usage: "*parent `ADDRESS` in derivation order, repeatable",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "deposit",
			Usage:     "credit a wallet from thin air, local testing only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wallet, w",
					Usage: "*wallet `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: "*amount `N`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "show",
			Usage:     "show the balance and decoded record of any cell",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Usage: "*cell `ADDRESS`",
				},
			},
			Action: runShow,
		},
		{
			Name:  "crux",
			Usage: "manage a crux",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "open a new crux, manager pays both reserves",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "manager, m",
							Usage: "*manager wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.Uint64Flag{
							Name:  "profile-fee",
							Usage: " fee to join `N`",
						},
						cli.Uint64Flag{
							Name:  "submission-fee",
							Usage: " fee to answer `N`",
						},
					},
					Action: runCruxCreate,
				},
				{
					Name:      "fees",
					Usage:     "update the crux fee schedule, manager only",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "manager, m",
							Usage: "*manager wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.Uint64Flag{
							Name:  "profile-fee",
							Usage: "*fee to join `N`",
						},
						cli.Uint64Flag{
							Name:  "submission-fee",
							Usage: "*fee to answer `N`",
						},
					},
					Action: runCruxFees,
				},
				{
					Name:      "payout",
					Usage:     "drain the treasury above its reserve, manager only",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "manager, m",
							Usage: "*manager wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "receiver, r",
							Usage: "*receiving wallet `ADDRESS`",
						},
					},
					Action: runCruxPayout,
				},
				{
					Name:      "close",
					Usage:     "close an empty crux and its treasury, manager only",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "manager, m",
							Usage: "*manager wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "receiver, r",
							Usage: "*receiving wallet `ADDRESS`",
						},
					},
					Action: runCruxClose,
				},
			},
		},
		{
			Name:  "profile",
			Usage: "manage user profiles",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "join a crux, pays the profile fee",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "owner, o",
							Usage: "*owner wallet `ADDRESS`",
						},
					},
					Action: runProfileCreate,
				},
				{
					Name:      "edit",
					Usage:     "update the display media reference, owner only",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "owner, o",
							Usage: "*owner wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "media, d",
							Usage: "*display media reference `ADDRESS`",
						},
					},
					Action: runProfileEdit,
				},
				{
					Name:      "grant-moderator",
					Usage:     "set the moderator flag on a profile, manager only",
					ArgsUsage: "\n   (* = required)",
					Flags:     moderatorFlagArguments,
					Action:    runGrantModerator,
				},
				{
					Name:      "revoke-moderator",
					Usage:     "clear the moderator flag on a profile, manager only",
					ArgsUsage: "\n   (* = required)",
					Flags:     moderatorFlagArguments,
					Action:    runRevokeModerator,
				},
				{
					Name:      "delete",
					Usage:     "leave the crux, reserve goes to the receiver",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "owner, o",
							Usage: "*owner wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "receiver, r",
							Usage: "*receiving wallet `ADDRESS`",
						},
					},
					Action: runProfileDelete,
				},
			},
		},
		{
			Name:  "challenge",
			Usage: "manage challenges",
			Subcommands: []cli.Command{
				{
					Name:      "post",
					Usage:     "post a new challenge, moderator only",
					ArgsUsage: "\n   (* = required)",
					Flags:     challengeContentArguments,
					Action:    runChallengePost,
				},
				{
					Name:      "edit",
					Usage:     "replace a challenge's content, moderator only",
					ArgsUsage: "\n   (* = required)",
					Flags:     challengeContentArguments,
					Action:    runChallengeEdit,
				},
				{
					Name:      "delete",
					Usage:     "remove a challenge, moderator only",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "moderator, m",
							Usage: "*moderator wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "seed, s",
							Usage: "*challenge seed `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "receiver, r",
							Usage: "*receiving wallet `ADDRESS`",
						},
					},
					Action: runChallengeDelete,
				},
			},
		},
		{
			Name:  "submission",
			Usage: "manage submissions",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "answer a challenge, pays the submission fee",
					ArgsUsage: "\n   (* = required)",
					Flags:     submissionContentArguments,
					Action:    runSubmissionCreate,
				},
				{
					Name:      "edit",
					Usage:     "replace submitted content, re-enters review",
					ArgsUsage: "\n   (* = required)",
					Flags:     submissionContentArguments,
					Action:    runSubmissionEdit,
				},
				{
					Name:      "evaluate",
					Usage:     "complete or reject a submission, moderator only",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "moderator, m",
							Usage: "*moderator wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "owner, o",
							Usage: "*submitter wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "seed, s",
							Usage: "*challenge seed `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "state, t",
							Usage: "*new state `NAME` [completed|rejected]",
						},
					},
					Action: runSubmissionEvaluate,
				},
				{
					Name:      "delete",
					Usage:     "withdraw an uncompleted submission, owner only",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "owner, o",
							Usage: "*submitter wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "seed, s",
							Usage: "*challenge seed `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "receiver, r",
							Usage: "*receiving wallet `ADDRESS`",
						},
					},
					Action: runSubmissionDelete,
				},
				{
					Name:      "remove",
					Usage:     "remove any submission, moderator only",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "crux, x",
							Usage: "*crux `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "moderator, m",
							Usage: "*moderator wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "owner, o",
							Usage: "*submitter wallet `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "seed, s",
							Usage: "*challenge seed `ADDRESS`",
						},
						cli.StringFlag{
							Name:  "receiver, r",
							Usage: "*receiving wallet `ADDRESS`",
						},
					},
					Action: runSubmissionRemove,
				},
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

// flag sets shared between grant and revoke
var moderatorFlagArguments = []cli.Flag{
	cli.StringFlag{
		Name:  "manager, m",
		Usage: "*manager wallet `ADDRESS`",
	},
	cli.StringFlag{
		Name:  "crux, x",
		Usage: "*crux `ADDRESS`",
	},
	cli.StringFlag{
		Name:  "owner, o",
		Usage: "*profile owner wallet `ADDRESS`",
	},
}

// flag set shared between challenge post and edit
var challengeContentArguments = []cli.Flag{
	cli.StringFlag{
		Name:  "crux, x",
		Usage: "*crux `ADDRESS`",
	},
	cli.StringFlag{
		Name:  "moderator, m",
		Usage: "*moderator wallet `ADDRESS`",
	},
	cli.StringFlag{
		Name:  "seed, s",
		Usage: "*challenge seed `ADDRESS`",
	},
	cli.StringFlag{
		Name:  "title, t",
		Usage: "*challenge title `STRING`",
	},
	cli.StringFlag{
		Name:  "url, u",
		Usage: "*content `URL`",
	},
	cli.StringFlag{
		Name:  "hash, H",
		Usage: "*content hash `ADDRESS`",
	},
	cli.StringSliceFlag{
		Name:  "category, g",
		Usage: "*category `NAME`, repeatable",
	},
	cli.Uint64Flag{
		Name:  "expires, e",
		Usage: "*expiry unix `TIMESTAMP`",
	},
	cli.Uint64Flag{
		Name:  "reputation, p",
		Usage: " reputation award `N`",
	},
}

// flag set shared between submission create and edit
var submissionContentArguments = []cli.Flag{
	cli.StringFlag{
		Name:  "crux, x",
		Usage: "*crux `ADDRESS`",
	},
	cli.StringFlag{
		Name:  "owner, o",
		Usage: "*submitter wallet `ADDRESS`",
	},
	cli.StringFlag{
		Name:  "seed, s",
		Usage: "*challenge seed `ADDRESS`",
	},
	cli.StringFlag{
		Name:  "url, u",
		Usage: "*content `URL`",
	},
	cli.StringFlag{
		Name:  "hash, H",
		Usage: "*content hash `ADDRESS`",
	},
}
