package virtual

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"sort"
)

// virtualDir is a folder made of generated entries, plus any entries of the
// same folder in the underlying file system.
type virtualDir struct {
	info    fileInfo
	entries []fs.DirEntry
	pos     int
}

// Stat returns information about the folder.
func (d *virtualDir) Stat() (fs.FileInfo, error) {
	return d.info, nil
}

// Read fails because folders have no content.
func (d *virtualDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.info.name, Err: errors.New("is a directory")}
}

// Close closes the folder. It holds no resources.
func (d *virtualDir) Close() error {
	return nil
}

// ReadDir reads the contents of the directory and returns
// a slice of up to n DirEntry values in directory order.
// Subsequent calls on the same file will yield further DirEntry values.
//
// If n > 0, ReadDir returns at most n DirEntry structures.
// In this case, if ReadDir returns an empty slice, it will return
// a non-nil error explaining why.
// At the end of a directory, the error is io.EOF.
//
// If n <= 0, ReadDir returns all the DirEntry values from the directory
// in a single slice. In this case, if ReadDir succeeds (reads all the way
// to the end of the directory), it returns the slice and a nil error.
func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	remaining := len(d.entries) - d.pos
	if n <= 0 {
		r := make([]fs.DirEntry, remaining)
		copy(r, d.entries[d.pos:])
		d.pos = len(d.entries)
		return r, nil
	}
	if remaining == 0 {
		return nil, io.EOF
	}
	if n > remaining {
		n = remaining
	}
	r := make([]fs.DirEntry, n)
	copy(r, d.entries[d.pos:d.pos+n])
	d.pos += n
	return r, nil
}

// readDir lists a route folder: its index file, child route folders, the
// special root files, and whatever the underlying file system has there.
func (vfs *FS) readDir(name string) ([]fs.DirEntry, error) {
	byName := make(map[string]fs.DirEntry)

	inner, err := fs.ReadDir(vfs.fs, name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	for _, entry := range inner {
		full := path.Join(name, entry.Name())
		if isHiddenFile(full) || containsSpecialFile(entry.Name()) {
			continue
		}
		byName[entry.Name()] = entry
	}

	var generated []string
	if _, ok := vfs.pages[path.Join(name, indexFile)]; ok {
		generated = append(generated, indexFile)
	}
	if name == "." {
		generated = append(generated, notFoundFile, errorFile, sitemapFile)
	}
	for _, child := range generated {
		full := path.Join(name, child)
		b, err := vfs.render(full)
		if err != nil {
			return nil, err
		}
		byName[child] = fileInfo{name: child, size: int64(len(b)), mode: 0o444, modTime: vfs.modTime}
	}
	for _, child := range vfs.dirs[name] {
		byName[child] = fileInfo{name: child, mode: fs.ModeDir | 0o555, modTime: vfs.modTime}
	}

	entries := make([]fs.DirEntry, 0, len(byName))
	for _, entry := range byName {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}
