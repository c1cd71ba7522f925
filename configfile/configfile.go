// Package configfile writes rendered documents to the configuration
// file location the consuming program reads at startup.
package configfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nodecfg/kdlgen/encode"
	"github.com/nodecfg/kdlgen/ir"
)

// Write renders doc (with opts, e.g. encode.Trailer for extra raw
// lines) and replaces the file at path atomically, so the consumer
// never observes a partial document.
func Write(path string, doc *ir.Node, opts ...encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, opts...); err != nil {
		return err
	}
	return WriteRaw(path, buf.Bytes())
}

// WriteRaw atomically replaces the file at path with data, creating
// parent directories as needed.
func WriteRaw(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace %s: %w", path, err)
	}
	return nil
}

// Current returns the present content of the config file, or "" when
// the file does not exist yet.
func Current(path string) (string, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(d), nil
}
