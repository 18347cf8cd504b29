// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontcfg

import "cogentcore.org/core/core"

// Dialog opens an [Editor] for the given configuration in a closable
// dialog window, in the context of the given widget. It returns the
// editor so that the caller can set [Editor.SaveFunc], [Editor.ApplyFunc],
// and [Editor.CustomPaths]. Closing the dialog discards no edits: the
// configuration is edited in place, so a reopened dialog resumes from
// the current state.
func Dialog(ctx core.Widget, cfg *Config) *Editor {
	d := core.NewBody("Font configuration")
	ed := NewEditor(d).SetConfig(cfg)
	d.RunWindowDialog(ctx)
	return ed
}
