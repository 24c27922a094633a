package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"

	"todosync/internal/colors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printJSONOrTable(v any) error {
	if viper.GetBool("json") {
		return printJSON(v)
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
	return nil
}

func newTable(header ...any) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row(header))
	return tw
}

// parseColor accepts a palette id or name. Empty means unset.
func parseColor(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if id, err := strconv.Atoi(s); err == nil {
		if !colors.Known(id) {
			return nil, fmt.Errorf("unknown color id %d; see todosync colors", id)
		}
		return &id, nil
	}
	c, ok := colors.ByName(s)
	if !ok {
		return nil, fmt.Errorf("unknown color %q; see todosync colors", s)
	}
	return &c.ID, nil
}
