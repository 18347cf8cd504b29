// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontcfg

import (
	"maps"
	"slices"
	"strconv"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
)

// Editor is a widget for editing a font [Config]: adding and removing
// fonts, and editing the family fallback lists that reference them.
// The [Config] is edited in place. The editor itself never does any
// persistence or applies fonts to a rendering context; see
// [Editor.SaveFunc] and [Editor.ApplyFunc].
type Editor struct {
	core.Frame

	// Config is the font configuration being edited. It must be set
	// before the editor is shown.
	Config *Config

	// CustomPaths, if non-nil, records the file path of each font the
	// user adds, and drops the entry again when the user removes that
	// font. It never contains fonts the host loaded itself. See
	// [LoadCustom] for reloading the recorded fonts on startup.
	CustomPaths CustomPaths

	// ApplyFunc, if non-nil, is called with [Editor.Config] when the
	// user presses Apply, so that the host can push the configuration
	// to its live rendering context. [Config.Use] is a typical
	// implementation. A returned error is shown in an error dialog.
	ApplyFunc func(c *Config) error `json:"-" xml:"-"`

	// SaveFunc, if non-nil, is called when the user presses Save.
	// The editor never persists anything itself; the format and
	// location are up to the host.
	SaveFunc func() `json:"-" xml:"-"`

	// transient add-form state; never persisted
	fontName     string
	fontPath     string
	familyName   string
	errMsg       string
	addingFont   bool
	addingFamily bool
}

func (ed *Editor) Init() {
	ed.Frame.Init()
	ed.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
	})

	rowStyler := func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Align.Items = styles.Center
		})
	}
	deleteButton := func(w *core.Button) {
		w.SetIcon(icons.Delete).SetType(core.ButtonAction)
	}

	ed.Maker(func(p *tree.Plan) {
		if ed.Config == nil {
			return
		}
		tree.AddAt(p, "fonts-header", func(w *core.Frame) {
			rowStyler(w)
			tree.AddChild(w, func(w *core.Text) {
				w.SetType(core.TextTitleLarge).SetText("Fonts")
			})
			tree.AddChild(w, func(w *core.Button) {
				w.SetIcon(icons.Add).SetType(core.ButtonTonal).SetTooltip("Add a new font from a file")
				w.OnClick(func(e events.Event) {
					ed.addingFont = true
					ed.errMsg = ""
					ed.Update()
				})
			})
		})
		if ed.addingFont {
			tree.AddAt(p, "font-form", func(w *core.Frame) {
				w.Styler(func(s *styles.Style) {
					s.Direction = styles.Column
				})
				tree.AddChild(w, func(w *core.TextField) {
					w.SetPlaceholder("Identifier for new font")
					w.Styler(func(s *styles.Style) {
						s.Min.X.Em(20)
					})
					w.Updater(func() {
						w.SetText(ed.fontName)
					})
					w.OnChange(func(e events.Event) {
						ed.fontName = w.Text()
					})
				})
				tree.AddChild(w, func(w *core.TextField) {
					w.SetPlaceholder("Path to new font")
					w.Styler(func(s *styles.Style) {
						s.Min.X.Em(20)
					})
					w.Updater(func() {
						w.SetText(ed.fontPath)
					})
					w.OnChange(func(e events.Event) {
						ed.fontPath = w.Text()
					})
				})
				tree.AddChild(w, func(w *core.Button) {
					w.SetText("Add font").SetIcon(icons.Add)
					w.OnClick(func(e events.Event) {
						ed.addFont()
					})
				})
			})
		}
		if ed.errMsg != "" {
			tree.AddAt(p, "error", func(w *core.Text) {
				w.Styler(func(s *styles.Style) {
					s.Color = colors.Scheme.Error.Base
				})
				w.Updater(func() {
					w.SetText(ed.errMsg)
				})
			})
		}
		for _, name := range slices.Sorted(maps.Keys(ed.Config.Fonts)) {
			tree.AddAt(p, "font-"+name, func(w *core.Frame) {
				rowStyler(w)
				tree.AddChild(w, func(w *core.Text) {
					w.SetText(name)
				})
				tree.AddChild(w, func(w *core.Button) {
					deleteButton(w)
					w.SetTooltip("Delete this font")
					w.OnClick(func(e events.Event) {
						ed.Config.RemoveFont(name, ed.CustomPaths)
						ed.Update()
					})
				})
			})
		}
		tree.AddAt(p, "families-separator", func(w *core.Separator) {})
		tree.AddAt(p, "families-header", func(w *core.Frame) {
			rowStyler(w)
			tree.AddChild(w, func(w *core.Text) {
				w.SetType(core.TextTitleLarge).SetText("Families")
			})
			tree.AddChild(w, func(w *core.Button) {
				w.SetIcon(icons.Add).SetType(core.ButtonTonal).SetTooltip("Add a new font family")
				w.OnClick(func(e events.Event) {
					ed.addingFamily = true
					ed.Update()
				})
			})
		})
		if ed.addingFamily {
			tree.AddAt(p, "family-form", func(w *core.Frame) {
				rowStyler(w)
				tree.AddChild(w, func(w *core.TextField) {
					w.SetPlaceholder("Name for new family")
					w.Updater(func() {
						w.SetText(ed.familyName)
					})
					w.OnChange(func(e events.Event) {
						ed.familyName = w.Text()
					})
				})
				tree.AddChild(w, func(w *core.Button) {
					w.SetText("Add family").SetIcon(icons.Add)
					w.OnClick(func(e events.Event) {
						ed.addFamily()
					})
				})
			})
		}
		for _, family := range slices.Sorted(maps.Keys(ed.Config.Families)) {
			tree.AddAt(p, "family-"+family, func(w *core.Frame) {
				w.Styler(func(s *styles.Style) {
					s.Direction = styles.Column
				})
				w.Maker(func(p *tree.Plan) {
					tree.AddAt(p, "header", func(w *core.Frame) {
						rowStyler(w)
						tree.AddChild(w, func(w *core.Text) {
							w.SetType(core.TextTitleMedium).SetText(family)
						})
						tree.AddChild(w, func(w *core.Button) {
							w.SetIcon(icons.Add).SetType(core.ButtonAction).SetTooltip("Add a fallback slot to this family")
							w.OnClick(func(e events.Event) {
								ed.Config.AppendSlot(family)
								ed.Update()
							})
						})
						tree.AddChild(w, func(w *core.Button) {
							deleteButton(w)
							w.SetTooltip("Delete this family and its fallback list")
							w.OnClick(func(e events.Event) {
								ed.Config.RemoveFamily(family)
								ed.Update()
							})
						})
					})
					for i := range ed.Config.Families[family] {
						tree.AddAt(p, "slot-"+strconv.Itoa(i), func(w *core.Frame) {
							rowStyler(w)
							w.Styler(func(s *styles.Style) {
								s.Padding.Left.Em(1)
							})
							tree.AddChild(w, func(w *core.TextField) {
								w.Updater(func() {
									w.SetText(ed.Config.Families[family][i])
								})
								w.OnChange(func(e events.Event) {
									ed.Config.SetSlot(family, i, w.Text())
								})
							})
							tree.AddChild(w, func(w *core.Button) {
								deleteButton(w)
								w.SetTooltip("Remove this fallback slot")
								w.OnClick(func(e events.Event) {
									ed.Config.RemoveSlot(family, i)
									ed.Update()
								})
							})
						})
					}
				})
			})
		}
		tree.AddAt(p, "buttons-separator", func(w *core.Separator) {})
		tree.AddAt(p, "buttons", func(w *core.Frame) {
			rowStyler(w)
			tree.AddChild(w, func(w *core.Button) {
				w.SetText("Apply").SetIcon(icons.Check).SetType(core.ButtonTonal)
				w.SetTooltip("Apply the current font configuration to the running application")
				w.OnClick(func(e events.Event) {
					ed.apply()
				})
			})
			tree.AddChild(w, func(w *core.Button) {
				w.SetText("Save").SetIcon(icons.Save).SetType(core.ButtonTonal)
				w.SetTooltip("Save the current font configuration")
				w.OnClick(func(e events.Event) {
					ed.save()
				})
			})
		})
	})
}

// addFont attempts to add the font named in the add-form buffers.
// On a read failure the form is left open with the buffers intact so
// that the user can correct the path and try again.
func (ed *Editor) addFont() {
	err := ed.Config.AddFontFile(ed.fontName, ed.fontPath, ed.CustomPaths)
	if err != nil {
		ed.errMsg = err.Error()
		ed.Update()
		return
	}
	ed.fontName = ""
	ed.fontPath = ""
	ed.errMsg = ""
	ed.addingFont = false
	ed.Update()
}

// addFamily adds a family with the name in the add-form buffer.
func (ed *Editor) addFamily() {
	ed.Config.AddFamily(ed.familyName)
	ed.familyName = ""
	ed.addingFamily = false
	ed.Update()
}

// apply pushes the configuration to the host through [Editor.ApplyFunc].
func (ed *Editor) apply() {
	if ed.ApplyFunc == nil {
		return
	}
	core.ErrorDialog(ed, ed.ApplyFunc(ed.Config), "Error applying font configuration")
}

// save notifies the host through [Editor.SaveFunc]. It never changes
// any configuration data itself.
func (ed *Editor) save() {
	if ed.SaveFunc == nil {
		return
	}
	ed.SaveFunc()
}
