// Package data loads typed JSON or YAML objects and dispatches each one to the
// handler registered for its "type" member.
package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"wasteland/pkg/engine/debug"
)

// Handler loads one object. src names the file the object came from.
type Handler func(obj json.RawMessage, src string) error

// Loader dispatches data objects to per-type handlers.
type Loader struct {
	handlers map[string]Handler
	loaded   map[string]int
}

// NewLoader creates a loader with no handlers
func NewLoader() *Loader {
	return &Loader{
		handlers: make(map[string]Handler),
		loaded:   make(map[string]int),
	}
}

// Register sets the handler for objects of the given type.
func (l *Loader) Register(typ string, h Handler) {
	l.handlers[typ] = h
}

// Loaded returns how many objects of the given type were dispatched
func (l *Loader) Loaded(typ string) int {
	return l.loaded[typ]
}

type header struct {
	Type string `json:"type"`
}

// LoadBytes loads a JSON or YAML document. The format is chosen by the extension of name.
// A document is either one object or an array of objects. Errors in single objects do
// not stop the rest of the document from loading; all of them are returned joined.
func (l *Loader) LoadBytes(name string, b []byte) error {
	objs, err := split(name, b)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	var errs []error
	for i, obj := range objs {
		var h header
		if err := json.Unmarshal(obj, &h); err != nil {
			errs = append(errs, fmt.Errorf("%s: object %d: %w", name, i, err))
			continue
		}
		if h.Type == "" {
			errs = append(errs, fmt.Errorf("%s: object %d has no type", name, i))
			continue
		}
		handler, ok := l.handlers[h.Type]
		if !ok {
			debug.Msg("%s: ignoring object %d of unhandled type %q", name, i, h.Type)
			continue
		}
		if err := handler(obj, name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %s object %d: %w", name, h.Type, i, err))
			continue
		}
		l.loaded[h.Type]++
	}
	return errors.Join(errs...)
}

// LoadFile loads one file from disk
func (l *Loader) LoadFile(p string) error {
	b, err := os.ReadFile(p)
	if err != nil {
		return err
	}
	return l.LoadBytes(p, b)
}

// LoadDir loads every data file under dir on disk, in lexical order.
func (l *Loader) LoadDir(dir string) error {
	return l.LoadFS(os.DirFS(dir), ".")
}

// LoadFS loads every data file under root in fsys, in lexical order.
func (l *Loader) LoadFS(fsys fs.FS, root string) error {
	var files []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isDataFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Strings(files)

	var errs []error
	for _, p := range files {
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := l.LoadBytes(p, b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func isDataFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// split breaks a document into raw JSON objects.
func split(name string, b []byte) ([]json.RawMessage, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		js, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("yaml document is not representable as json: %w", err)
		}
		b = js
	}

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, nil
	}
	if b[0] == '[' {
		var objs []json.RawMessage
		if err := json.Unmarshal(b, &objs); err != nil {
			return nil, err
		}
		return objs, nil
	}
	return []json.RawMessage{json.RawMessage(b)}, nil
}
