// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	baseerrors "github.com/vizcore/vizcore/base/errors"
	"github.com/vizcore/vizcore/base/logx"
)

// WatchConfig watches the given config file and calls onChange with
// the freshly decoded config whenever it is written. The watch runs in
// its own goroutine; the returned function stops it. Decode failures
// are logged and skipped, keeping the last good config in effect.
func WatchConfig(filename string, onChange func(*Config)) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory: editors replace files on save, which drops
	// a watch held on the file itself.
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, err
	}
	abs := baseerrors.Ignore1(filepath.Abs(filename))
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				if baseerrors.Ignore1(filepath.Abs(ev.Name)) != abs {
					continue
				}
				cf, err := OpenConfig(filename)
				if err != nil {
					baseerrors.Log(err)
					continue
				}
				logx.PrintInfo("engine: config reloaded from %s", filename)
				onChange(cf)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				baseerrors.Log(err)
			}
		}
	}()
	return func() { w.Close() }, nil
}
