// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fontcfg provides an embeddable widget for interactively editing
// a font configuration: a table of named font files, and named font-family
// fallback lists that reference them.
//
// You should keep a [Config] in your application state and edit it with an
// [Editor] (see [NewEditor]), or with [Dialog] for a standalone window.
// The editor does not handle serialization; set [Editor.SaveFunc] to
// persist [Config.Families] and the [CustomPaths] registry however you
// like, and use [LoadCustom] on startup to reload the font files the user
// added in a previous session.
package fontcfg

//go:generate core generate

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"slices"

	"cogentcore.org/core/base/errors"
	"github.com/go-text/typesetting/fontscan"
)

// Config is an editable font configuration. It bundles the two tables that
// an [Editor] operates on. Both tables are owned by the host application;
// the editor only inserts, updates, and removes entries.
type Config struct {

	// Fonts contains the raw data of each font file, keyed by a
	// user-chosen font identifier.
	Fonts map[string][]byte `json:"-"`

	// Families contains the ordered fallback list of font identifiers
	// for each named font family. Order matters: earlier identifiers
	// have priority. Duplicates are allowed. A family may reference an
	// identifier that is not (or is no longer) present in Fonts; such
	// dangling references are resolved by the host at apply time, not
	// validated here.
	Families map[string][]string
}

// CustomPaths records the file path of each font that the user added
// through an [Editor], keyed by font identifier. It only ever contains
// fonts added through the editor, never fonts pre-loaded by the host.
// It exists so that the host can persist which external files to reload
// on the next run, using [LoadCustom].
type CustomPaths map[string]string

// NewConfig returns a new [Config] with empty font and family tables.
func NewConfig() *Config {
	return &Config{
		Fonts:    map[string][]byte{},
		Families: map[string][]string{},
	}
}

// AddFont inserts the given font data under the given identifier,
// overwriting any existing font with that identifier.
func (c *Config) AddFont(name string, data []byte) {
	c.Fonts[name] = data
}

// AddFontFile reads the font file at the given path and inserts its data
// under the given identifier, overwriting any existing font with that
// identifier. If custom is non-nil, the path is recorded there under the
// same identifier. If the file cannot be read, nothing is changed and the
// error is returned.
func (c *Config) AddFontFile(name, path string, custom CustomPaths) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c.AddFont(name, data)
	if custom != nil {
		custom[name] = path
	}
	return nil
}

// RemoveFont removes the font with the given identifier from the font
// table and, if custom is non-nil, from the custom path registry.
// Family fallback lists are left untouched, so a family may be left with
// a dangling reference to the removed identifier.
func (c *Config) RemoveFont(name string, custom CustomPaths) {
	delete(c.Fonts, name)
	if custom != nil {
		delete(custom, name)
	}
}

// AddFamily adds a family with the given name and an empty fallback list.
// If the family already exists, its list is reset to empty.
func (c *Config) AddFamily(name string) {
	c.Families[name] = []string{}
}

// RemoveFamily removes the given family and its entire fallback list.
func (c *Config) RemoveFamily(name string) {
	delete(c.Families, name)
}

// AppendSlot appends one empty font identifier slot to the end of the
// given family's fallback list. It does nothing if the family does not
// exist.
func (c *Config) AppendSlot(family string) {
	if _, ok := c.Families[family]; !ok {
		return
	}
	c.Families[family] = append(c.Families[family], "")
}

// RemoveSlot removes the slot at index i from the given family's fallback
// list, preserving the relative order of the remaining slots. It does
// nothing if the family or the index does not exist.
func (c *Config) RemoveSlot(family string, i int) {
	list, ok := c.Families[family]
	if !ok || i < 0 || i >= len(list) {
		return
	}
	c.Families[family] = slices.Delete(list, i, i+1)
}

// SetSlot sets the slot at index i of the given family's fallback list to
// the given font identifier. It does nothing if the family or the index
// does not exist.
func (c *Config) SetSlot(family string, i int, font string) {
	list, ok := c.Families[family]
	if !ok || i < 0 || i >= len(list) {
		return
	}
	list[i] = font
}

// Use adds every font in the configuration to the given font map, in
// sorted identifier order, overwriting by identifier. This is the typical
// [Editor.ApplyFunc] for hosts that drive text rendering through a
// [fontscan.FontMap]. Fonts that fail to parse are reported in the
// returned joined error; the remaining fonts are still added.
func (c *Config) Use(fontMap *fontscan.FontMap) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(c.Fonts)) {
		err := fontMap.AddFont(bytes.NewReader(c.Fonts[name]), name, "")
		if err != nil {
			errs = append(errs, fmt.Errorf("font %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// LoadCustom reads each font file recorded in the given custom path
// registry and inserts its data into the given configuration under the
// registered identifier, overwriting existing entries. Entries are
// processed in sorted identifier order. It stops at the first file that
// cannot be read and returns that error; fonts already inserted in the
// same call are kept. It is intended to be called once at host startup,
// before the first [Editor] frame.
func LoadCustom(custom CustomPaths, c *Config) error {
	for _, name := range slices.Sorted(maps.Keys(custom)) {
		data, err := os.ReadFile(custom[name])
		if err != nil {
			return fmt.Errorf("error loading custom font %q: %w", name, err)
		}
		c.AddFont(name, data)
	}
	return nil
}
