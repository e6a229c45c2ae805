// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bureau-foundation/blueprint/cmd/blueprint/cli"
	"github.com/bureau-foundation/blueprint/lib/fingerprint"
	"github.com/bureau-foundation/blueprint/lib/schema"
)

type inspectParams struct {
	globalParams
	inputParams
	cli.JSONOutput
}

// inspectNode describes one document in the container tree.
type inspectNode struct {
	Path        string `json:"path"`
	Kind        string `json:"kind"`
	Label       string `json:"label,omitempty"`
	GameVersion string `json:"game_version"`
	Entries     int    `json:"entries,omitempty"`
	Entities    int    `json:"entities,omitempty"`
	Tiles       int    `json:"tiles,omitempty"`
	Fingerprint string `json:"fingerprint"`
}

func inspectCommand(streams Streams) *cli.Command {
	var params inspectParams
	var flags flagTracker

	return &cli.Command{
		Name:    "inspect",
		Summary: "List the documents inside a blueprint string",
		Description: `Decode a blueprint string and list every document it holds.

A blueprint book is listed with each of its entries below it, depth
first. Paths are book entry indices joined by "/"; the outermost
document is "/".`,
		Usage: "blueprint inspect [--file F | --data S] [--json]",
		Examples: []cli.Example{
			{
				Description: "List a book's contents",
				Command:     "blueprint inspect --file book.txt",
			},
			{
				Description: "Find blueprints with no entities",
				Command:     "blueprint inspect --json --file book.txt | jq '.[] | select(.kind == \"blueprint\" and .entities == null)'",
			},
		},
		Flags: flags.bind("inspect", &params),
		Run: func(args []string) error {
			session, err := params.begin(streams, "inspect")
			if err != nil {
				return err
			}
			decoder, err := session.codec()
			if err != nil {
				return err
			}
			input, source, err := params.open(streams.Stdin, args)
			if err != nil {
				return err
			}
			defer input.Close()

			container, err := decoder.Decode(input)
			if err != nil {
				return codecError(source, err)
			}
			nodes, err := inspectTree(container)
			if err != nil {
				return cli.Internal("%s: %w", source, err)
			}
			session.logger.Debug("inspected", "source", source, "documents", len(nodes))

			if done, err := params.EmitJSON(streams.Stdout, nodes); done {
				return err
			}

			writer := tabwriter.NewWriter(streams.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "PATH\tKIND\tLABEL\tVERSION\tCONTENTS\tFINGERPRINT")
			for _, node := range nodes {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
					node.Path, node.Kind, node.Label, node.GameVersion, node.contents(), node.Fingerprint)
			}
			return writer.Flush()
		},
	}
}

// inspectTree describes container and every document below it.
func inspectTree(container schema.Container) ([]inspectNode, error) {
	var nodes []inspectNode
	err := container.Walk(func(path []uint64, node schema.Container) error {
		hash, err := fingerprint.Compute(node)
		if err != nil {
			return err
		}
		description := inspectNode{
			Path:        formatPath(path),
			Kind:        string(node.Kind()),
			Label:       node.Label(),
			GameVersion: schema.FormatGameVersion(node.Version()),
			Fingerprint: hash.Short(),
		}
		switch {
		case node.Blueprint != nil:
			description.Entities = len(node.Blueprint.Entities)
			description.Tiles = len(node.Blueprint.Tiles)
		case node.BlueprintBook != nil:
			description.Entries = len(node.BlueprintBook.Blueprints)
		}
		nodes = append(nodes, description)
		return nil
	})
	return nodes, err
}

func formatPath(path []uint64) string {
	parts := make([]string, len(path))
	for i, index := range path {
		parts[i] = strconv.FormatUint(index, 10)
	}
	return "/" + strings.Join(parts, "/")
}

// contents summarizes what a node holds for the text listing.
func (n inspectNode) contents() string {
	switch n.Kind {
	case string(schema.KindBlueprint):
		return fmt.Sprintf("%d entities, %d tiles", n.Entities, n.Tiles)
	case string(schema.KindBlueprintBook):
		return fmt.Sprintf("%d entries", n.Entries)
	default:
		return "-"
	}
}
