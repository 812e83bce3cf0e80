package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/plexgraph/graph-bridge/boundary"
	"github.com/plexgraph/graph-bridge/errors"
	"github.com/plexgraph/graph-bridge/marshal"
	"github.com/plexgraph/graph-bridge/registry"
)

type convertResult struct {
	file   string
	render string
	err    error
}

func newConvertCmd(a *app) *cobra.Command {
	var typeID string

	cmd := &cobra.Command{
		Use:   "convert --type <id> FILE...",
		Short: "Convert JSON host literals against a native type",
		Long: `Each FILE holds one JSON value, the host literal. The literal is checked
and constructed against the converter registered for --type; failures are
reported per file in host error categories.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, registry.TypeID(typeID), args)
		},
	}

	cmd.Flags().StringVarP(&typeID, "type", "t", string(marshal.PropertyValueID), "target native type identity")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, id registry.TypeID, files []string) error {
	if _, err := a.reg.Lookup(id); err != nil {
		return boundary.Translate(err)
	}

	var (
		mu      sync.Mutex
		results []convertResult
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)

	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := convertResult{file: file}
			r.render, r.err = a.convertFile(id, file)

			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].file < results[j].file })

	var failed error
	for _, r := range results {
		if r.err != nil {
			translated := boundary.Translate(r.err)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r.file, a.styled(errorStyle, translated.Error()))
			failed = multierr.Append(failed, fmt.Errorf("%s: %w", r.file, translated))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r.file, r.render)
	}
	return failed
}

func (a *app) convertFile(id registry.TypeID, file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", errors.IO("read host literal", err)
	}

	var host any
	if err := json.Unmarshal(data, &host); err != nil {
		return "", errors.New(errors.PhaseCheck, errors.KindValue).
			Cause(err).
			Detail("file is not valid JSON").
			Build()
	}
	if seq, ok := host.([]any); ok && len(seq) > a.cfg.MaxElements {
		return "", errors.New(errors.PhaseCheck, errors.KindValue).
			Detail("literal has %d elements, limit is %d", len(seq), a.cfg.MaxElements).
			Build()
	}

	a.logger.Debug("converting host literal",
		zap.String("file", file),
		zap.String("type", string(id)))

	native, err := a.reg.Construct(id, host)
	if err != nil {
		return "", err
	}
	return a.describe(native), nil
}

// describe renders a native value for the terminal, tagging variants with
// the candidate that accepted them.
func (a *app) describe(native any) string {
	switch v := native.(type) {
	case marshal.PropertyValue:
		return fmt.Sprintf("%s %v", a.styled(tagStyle, "<"+v.Tag().String()+">"), v.ToHost())
	case interface{ ToHost() []any }:
		return fmt.Sprintf("%v", v.ToHost())
	default:
		return fmt.Sprintf("%v", v)
	}
}
