package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/backmassage/fileinfo/internal/entity"
)

func newDocCmd(a *app) *cobra.Command {
	var (
		sets    []string
		appends []string
	)

	cmd := &cobra.Command{
		Use:   "doc <file> [key|index]",
		Short: "Print or edit a JSON or YAML document",
		Long: `Print a JSON or YAML document, or a single top-level value of it.
--set key=value edits a mapping and --append value extends a sequence;
values are read as JSON when they parse, otherwise as plain strings, and
the document is written back in its own format.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.reg.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			d, ok := e.(*entity.Document)
			if !ok {
				return fmt.Errorf("%s is a %s, not a json or yaml document", args[0], e.Kind())
			}

			if len(sets) > 0 || len(appends) > 0 {
				return editDocument(d, sets, appends)
			}

			if len(args) == 1 {
				data, err := d.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			v, ok := lookupDocument(d, args[1])
			if !ok {
				return fmt.Errorf("%s: no value at %q", args[0], args[1])
			}
			return printValue(cmd, v)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set `key=value` in a mapping document (repeatable)")
	cmd.Flags().StringArrayVar(&appends, "append", nil, "Append `value` to a sequence document (repeatable)")
	return cmd
}

func lookupDocument(d *entity.Document, key string) (any, bool) {
	if d.IsSequence() {
		i, err := strconv.Atoi(key)
		if err != nil {
			return nil, false
		}
		return d.Index(i)
	}
	return d.Get(key)
}

func editDocument(d *entity.Document, sets, appends []string) error {
	for _, kv := range sets {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return fmt.Errorf("--set %q: want key=value", kv)
		}
		if err := d.Set(key, parseValue(raw)); err != nil {
			return err
		}
	}
	for _, raw := range appends {
		if err := d.Append(parseValue(raw)); err != nil {
			return err
		}
	}
	return d.Dump()
}

// parseValue reads raw as JSON, falling back to the literal string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

// printValue prints strings bare and anything else as indented JSON.
func printValue(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	if s, ok := v.(string); ok {
		fmt.Fprintln(out, s)
		return nil
	}
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}
