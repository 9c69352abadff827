package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/lencoder/category"
	"github.com/arloliu/lencoder/format"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (c *cli) fitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fit <handle> [values...]",
		Short: "Create a mapping from the distinct input values",
		Long:  "Labels the distinct values 0..n-1 and writes the mapping to handle, replacing any existing one.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := c.readValues(args[1:])
			if err != nil {
				return err
			}

			return c.store.Fit(cmd.Context(), values, args[0])
		},
	}
}

func (c *cli) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <handle> [values...]",
		Short: "Extend an existing mapping with unseen values",
		Long:  "Gives every unseen value the smallest unused label. Existing labels never change.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := c.readValues(args[1:])
			if err != nil {
				return err
			}

			return c.store.Update(cmd.Context(), values, args[0])
		},
	}
}

func (c *cli) transformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform <handle> [values...]",
		Short: "Print the label of each value, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := c.readValues(args[1:])
			if err != nil {
				return err
			}

			labels, err := c.store.Transform(cmd.Context(), values, args[0])
			if err != nil {
				return err
			}

			w := bufio.NewWriter(c.stdout)
			for _, label := range labels {
				fmt.Fprintln(w, label)
			}

			return w.Flush()
		},
	}
}

func (c *cli) inverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse <handle> [labels...]",
		Short: "Print the category of each label, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := c.readFields(args[1:])
			if err != nil {
				return err
			}

			labels := make([]int, len(fields))
			for i, field := range fields {
				labels[i], err = strconv.Atoi(field)
				if err != nil {
					return fmt.Errorf("parse label %q: %w", field, err)
				}
			}

			values, err := c.store.InverseTransform(cmd.Context(), labels, args[0])
			if err != nil {
				return err
			}

			w := bufio.NewWriter(c.stdout)
			for _, v := range values {
				fmt.Fprintln(w, v.String())
			}

			return w.Flush()
		},
	}
}

// dumpEntry is one line of the dump listing.
type dumpEntry struct {
	Label int    `yaml:"label"`
	Kind  string `yaml:"kind"`
	Value any    `yaml:"value"`
}

type dumpDocument struct {
	Handle  string      `yaml:"handle"`
	Count   int         `yaml:"count"`
	Entries []dumpEntry `yaml:"entries"`
}

func (c *cli) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <handle>",
		Short: "Print the stored mapping as YAML in label order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.store.Mapping(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			doc := dumpDocument{Handle: args[0], Count: m.Len()}
			for _, e := range m.Entries() {
				doc.Entries = append(doc.Entries, dumpEntry{
					Label: e.Label,
					Kind:  e.Category.Kind().String(),
					Value: e.Category.Any(),
				})
			}

			enc := yaml.NewEncoder(c.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}

// readValues parses args, or stdin lines when args is empty, as --kind values.
func (c *cli) readValues(args []string) ([]category.Value, error) {
	kind, err := format.ParseKind(c.kind)
	if err != nil {
		return nil, err
	}

	fields, err := c.readFields(args)
	if err != nil {
		return nil, err
	}

	values := make([]category.Value, len(fields))
	for i, field := range fields {
		values[i], err = category.Parse(kind, field)
		if err != nil {
			return nil, err
		}
	}

	return values, nil
}

func (c *cli) readFields(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	return readLines(c.stdin)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return lines, nil
}
