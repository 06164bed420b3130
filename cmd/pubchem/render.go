package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
	outputCSV   outputFormat = "csv"
)

func parseOutput(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(s)); f {
	case outputTable, outputJSON, outputYAML, outputCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// result is what a command prints: rows for table and csv, value for json and yaml.
type result struct {
	header table.Row
	rows   []table.Row
	value  any
}

func render(w io.Writer, f outputFormat, res result) error {
	switch f {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.value)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res.value); err != nil {
			return err
		}
		return enc.Close()
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(res.header)
	t.AppendRows(res.rows)
	if f == outputCSV {
		t.RenderCSV()
		return nil
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}

func listResult[T any](column string, values []T) result {
	res := result{header: table.Row{column}, value: values}
	for _, v := range values {
		res.rows = append(res.rows, table.Row{v})
	}
	if values == nil {
		res.value = []T{}
	}
	return res
}
