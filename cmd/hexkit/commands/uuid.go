// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/hexkit-project/hexkit/cmd/hexkit/cli"
	"github.com/hexkit-project/hexkit/lib/byteutil"
	"github.com/hexkit-project/hexkit/lib/digest/extra"
	"github.com/hexkit-project/hexkit/lib/uuid"
)

func uuidCommand() *cli.Command {
	return &cli.Command{
		Name:    "uuid",
		Summary: "generate and parse RFC 4122 UUIDs",
		Subcommands: []*cli.Command{
			uuidV4Command(),
			uuidNameCommand(3),
			uuidNameCommand(5),
			uuidParseCommand(),
		},
	}
}

func uuidV4Command() *cli.Command {
	var count int

	return &cli.Command{
		Name:    "v4",
		Summary: "generate random UUIDs",
		Usage:   "hexkit uuid v4 [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("v4", pflag.ContinueOnError)
			flags.IntVarP(&count, "count", "n", 1, "number of UUIDs to generate")
			return flags
		},
		Run: func(args []string) error {
			for range count {
				u, err := uuid.NewV4()
				if err != nil {
					return err
				}
				fmt.Println(u)
			}
			return nil
		},
	}
}

// uuidNameCommand builds the v3 or v5 subcommand; the two differ only
// in digest and version.
func uuidNameCommand(uuidVersion int) *cli.Command {
	var namespaceName string

	name := fmt.Sprintf("v%d", uuidVersion)
	digestName := "SHA-1"
	if uuidVersion == 3 {
		digestName = "MD5"
	}

	return &cli.Command{
		Name:    name,
		Summary: fmt.Sprintf("derive a %s name-based UUID", digestName),
		Usage:   fmt.Sprintf("hexkit uuid %s <name> [flags]", name),
		Examples: []cli.Example{
			{Command: fmt.Sprintf("hexkit uuid %s example.com", name)},
			{Command: fmt.Sprintf("hexkit uuid %s --namespace url https://example.com/", name)},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
			flags.StringVar(&namespaceName, "namespace", "dns",
				"namespace: dns, url, oid, x500, or a UUID literal")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("want exactly one name argument, got %d", len(args))
			}
			namespace, err := parseNamespace(namespaceName)
			if err != nil {
				return err
			}

			var u uuid.UUID
			if uuidVersion == 3 {
				u, err = uuid.NewV3(extra.MD5Sum, namespace, args[0])
			} else {
				u, err = uuid.NewV5(context.Background(), namespace, args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println(u)
			return nil
		},
	}
}

func uuidParseCommand() *cli.Command {
	return &cli.Command{
		Name:    "parse",
		Summary: "parse a UUID and show its fields",
		Usage:   "hexkit uuid parse <uuid>",
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("want exactly one UUID argument, got %d", len(args))
			}
			u, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("canonical: %s\n", u)
			fmt.Printf("version:   %d\n", u.Version())
			fmt.Printf("bytes:     %s\n", byteutil.BytesToHex(u.Bytes()))
			return nil
		},
	}
}

// parseNamespace resolves a well-known namespace name or a UUID
// literal.
func parseNamespace(name string) (uuid.UUID, error) {
	switch strings.ToLower(name) {
	case "dns":
		return uuid.NamespaceDNS, nil
	case "url":
		return uuid.NamespaceURL, nil
	case "oid":
		return uuid.NamespaceOID, nil
	case "x500":
		return uuid.NamespaceX500, nil
	default:
		return uuid.Parse(name)
	}
}
