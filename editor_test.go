// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontcfg

import (
	"path/filepath"
	"testing"

	"cogentcore.org/core/core"
	"github.com/stretchr/testify/assert"
)

// testConfig returns a config with a couple of fonts and families.
func testConfig() *Config {
	c := NewConfig()
	c.AddFont("sans", []byte("sans bytes"))
	c.AddFont("mono", []byte("mono bytes"))
	c.Families["body"] = []string{"sans", "mono"}
	c.Families["code"] = []string{"mono"}
	return c
}

func TestEditor(t *testing.T) {
	b := core.NewBody()
	NewEditor(b).SetConfig(testConfig())
	b.AssertRender(t, "editor/basic")
}

func TestEditorEmpty(t *testing.T) {
	b := core.NewBody()
	NewEditor(b).SetConfig(NewConfig())
	b.AssertRender(t, "editor/empty")
}

func TestEditorAddForm(t *testing.T) {
	b := core.NewBody()
	ed := NewEditor(b).SetConfig(NewConfig())
	ed.addingFont = true
	ed.errMsg = "previous error"
	b.AssertRender(t, "editor/add-form")
}

func TestEditorAddFont(t *testing.T) {
	b := core.NewBody()
	c := NewConfig()
	custom := CustomPaths{}
	ed := NewEditor(b).SetConfig(c).SetCustomPaths(custom)
	data := []byte("sans bytes")
	path := writeFont(t, "sans.ttf", data)
	b.AssertRender(t, "editor/add-font", func() {
		ed.addingFont = true
		ed.fontName = "sans"
		ed.fontPath = path
		ed.addFont()
		assert.Equal(t, data, c.Fonts["sans"])
		assert.Equal(t, path, custom["sans"])
		assert.Empty(t, ed.fontName)
		assert.Empty(t, ed.fontPath)
		assert.Empty(t, ed.errMsg)
		assert.False(t, ed.addingFont)
	})
}

func TestEditorAddFontMissing(t *testing.T) {
	b := core.NewBody()
	c := NewConfig()
	custom := CustomPaths{}
	ed := NewEditor(b).SetConfig(c).SetCustomPaths(custom)
	b.AssertRender(t, "editor/add-font-missing", func() {
		ed.addingFont = true
		ed.fontName = "sans"
		ed.fontPath = filepath.Join(t.TempDir(), "missing.ttf")
		ed.addFont()
		assert.Empty(t, c.Fonts)
		assert.Empty(t, custom)
		assert.NotEmpty(t, ed.errMsg)
		// the form stays open with the buffers intact so the user
		// can correct the path
		assert.True(t, ed.addingFont)
		assert.Equal(t, "sans", ed.fontName)
	})
}

func TestEditorAddFamily(t *testing.T) {
	b := core.NewBody()
	c := NewConfig()
	ed := NewEditor(b).SetConfig(c)
	b.AssertRender(t, "editor/add-family", func() {
		ed.addingFamily = true
		ed.familyName = "body"
		ed.addFamily()
		assert.Equal(t, []string{}, c.Families["body"])
		assert.Empty(t, ed.familyName)
		assert.False(t, ed.addingFamily)
	})
}

func TestEditorSave(t *testing.T) {
	b := core.NewBody()
	c := testConfig()
	ed := NewEditor(b).SetConfig(c)
	ed.save() // no-op without a SaveFunc

	saves := 0
	ed.SetSaveFunc(func() {
		saves++
	})
	b.AssertRender(t, "editor/save", func() {
		ed.save()
		ed.save()
		assert.Equal(t, 2, saves)
		// saving never changes any data
		assert.Equal(t, testConfig(), c)
	})
}

func TestEditorApply(t *testing.T) {
	b := core.NewBody()
	c := testConfig()
	ed := NewEditor(b).SetConfig(c)
	ed.apply() // no-op without an ApplyFunc

	var applied *Config
	applies := 0
	ed.SetApplyFunc(func(c *Config) error {
		applied = c
		applies++
		return nil
	})
	b.AssertRender(t, "editor/apply", func() {
		ed.apply()
		ed.apply()
		assert.Equal(t, 2, applies)
		assert.Same(t, c, applied)
		assert.Equal(t, testConfig(), c)
	})
}
