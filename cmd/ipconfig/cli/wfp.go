// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/ipconfig2/ipconfig/net/wfp"
	"github.com/ipconfig2/ipconfig/types/ifid"
)

type subLayerView struct {
	Key         ifid.GUID  `json:"key" yaml:"key"`
	Name        string     `json:"name" yaml:"name"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Flags       uint32     `json:"flags" yaml:"flags"`
	Weight      uint16     `json:"weight" yaml:"weight"`
	ProviderKey *ifid.GUID `json:"providerKey,omitempty" yaml:"providerKey,omitempty"`
}

func viewSubLayer(sl wfp.SubLayer) subLayerView {
	return subLayerView{
		Key:         sl.Key,
		Name:        sl.Display.Name,
		Description: sl.Display.Description,
		Flags:       sl.Flags,
		Weight:      sl.Weight,
		ProviderKey: sl.ProviderKey,
	}
}

func sublayersCmd(ra *rootArgs) *ffcli.Command {
	return &ffcli.Command{
		Name:       "sublayers",
		ShortUsage: "ipconfig sublayers",
		ShortHelp:  "List packet filter sub-layers",
		FlagSet:    newFlagSet("sublayers"),
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return errors.New("unexpected arguments")
			}
			sls, err := listSubLayers(ra.logf)
			if err != nil {
				return err
			}
			views := make([]subLayerView, len(sls))
			for i, sl := range sls {
				views[i] = viewSubLayer(sl)
			}
			return ra.emit(views, func(w io.Writer) {
				fmt.Fprintln(w, "KEY\tWEIGHT\tFLAGS\tNAME")
				for i, v := range views {
					fmt.Fprintf(w, "%v\t%d\t%#x\t%v\n", v.Key, v.Weight, v.Flags, sls[i].Display)
				}
			})
		},
	}
}

func addSubLayerCmd(ra *rootArgs) *ffcli.Command {
	var (
		name string
		desc string
	)
	fs := newFlagSet("add-sublayer")
	fs.StringVar(&name, "name", "", "display name of the new sub-layer (required)")
	fs.StringVar(&desc, "desc", "", "display description of the new sub-layer")
	return &ffcli.Command{
		Name:       "add-sublayer",
		ShortUsage: "ipconfig add-sublayer -name <name> [-desc <description>]",
		ShortHelp:  "Add a packet filter sub-layer",
		LongHelp: `Add a sub-layer with a new random key and the maximum weight. The
sub-layer persists after the command exits. Requires administrator rights.`,
		FlagSet: fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return errors.New("unexpected arguments")
			}
			if name == "" {
				return errors.New("-name is required")
			}
			var descp *string
			fs.Visit(func(f *flag.Flag) {
				if f.Name == "desc" {
					descp = &desc
				}
			})
			sl, err := wfp.NewSubLayer(name, descp)
			if err != nil {
				return err
			}
			if err := addSubLayer(ra.logf, sl); err != nil {
				return err
			}
			outln(sl.Key)
			return nil
		},
	}
}

type filterView struct {
	ID            uint64     `json:"id" yaml:"id"`
	Key           ifid.GUID  `json:"key" yaml:"key"`
	Name          string     `json:"name" yaml:"name"`
	Description   *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Flags         uint32     `json:"flags" yaml:"flags"`
	ProviderKey   *ifid.GUID `json:"providerKey,omitempty" yaml:"providerKey,omitempty"`
	LayerKey      ifid.GUID  `json:"layerKey" yaml:"layerKey"`
	SubLayerKey   ifid.GUID  `json:"subLayerKey" yaml:"subLayerKey"`
	NumConditions uint32     `json:"numConditions" yaml:"numConditions"`
	ActionType    uint32     `json:"actionType" yaml:"actionType"`
}

func viewFilter(f wfp.Filter) filterView {
	return filterView{
		ID:            f.ID,
		Key:           f.Key,
		Name:          f.Display.Name,
		Description:   f.Display.Description,
		Flags:         f.Flags,
		ProviderKey:   f.ProviderKey,
		LayerKey:      f.LayerKey,
		SubLayerKey:   f.SubLayerKey,
		NumConditions: f.NumConditions,
		ActionType:    f.ActionType,
	}
}

func filtersCmd(ra *rootArgs) *ffcli.Command {
	var layer string
	fs := newFlagSet("filters")
	fs.StringVar(&layer, "layer", wfp.LayerALEAuthConnectV4.String(), "GUID of the layer to list")
	return &ffcli.Command{
		Name:       "filters",
		ShortUsage: "ipconfig filters [-layer <GUID>]",
		ShortHelp:  "List packet filters in a layer",
		LongHelp:   "List the filters in one layer. The default layer is FWPM_LAYER_ALE_AUTH_CONNECT_V4.",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return errors.New("unexpected arguments")
			}
			key, err := ifid.ParseGUID(layer)
			if err != nil {
				return fmt.Errorf("-layer: %w", err)
			}
			fts, err := listFilters(ra.logf, key)
			if err != nil {
				return err
			}
			views := make([]filterView, len(fts))
			for i, f := range fts {
				views[i] = viewFilter(f)
			}
			return ra.emit(views, func(w io.Writer) {
				fmt.Fprintln(w, "ID\tKEY\tSUBLAYER\tACTION\tCONDITIONS\tNAME")
				for i, v := range views {
					fmt.Fprintf(w, "%d\t%v\t%v\t%#x\t%d\t%v\n", v.ID, v.Key, v.SubLayerKey, v.ActionType, v.NumConditions, fts[i].Display)
				}
			})
		},
	}
}
