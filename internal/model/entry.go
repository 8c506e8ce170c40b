package model

import (
	"path/filepath"
	"strings"
)

// FileEntry describes a discovered regular file waiting to be organized.
// It is produced by enumeration and consumed by the classifier.
type FileEntry struct {
	Path string // absolute path to the file
	Name string // base name including extension
	Stem string // base name with the extension stripped
	Ext  string // lower-cased extension with leading dot, "" if none
	Dir  string // parent directory
}

// NewFileEntry builds a FileEntry from a file path.
func NewFileEntry(path string) FileEntry {
	name := filepath.Base(path)
	stem, ext := SplitExt(name)
	return FileEntry{
		Path: path,
		Name: name,
		Stem: stem,
		Ext:  ext,
		Dir:  filepath.Dir(path),
	}
}

// SplitExt splits a file name into stem and lower-cased extension. A name
// whose only dot is the leading one (".bashrc") has no extension; the whole
// name is the stem.
func SplitExt(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), strings.ToLower(ext)
}
