package virtual

import (
	"bytes"
	"io/fs"
	"time"
)

// fileInfo holds the metadata about a generated file or folder.
// It doubles as the directory entry for that file.
type fileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func newFileInfo(name string, size int64, mode fs.FileMode, modTime time.Time) fileInfo {
	return fileInfo{name: name, size: size, mode: mode, modTime: modTime}
}

// Name returns the base name of the file.
func (fi fileInfo) Name() string { return fi.name }

// Size reports the length of the rendered data.
func (fi fileInfo) Size() int64 { return fi.size }

// Mode returns the file mode bits.
func (fi fileInfo) Mode() fs.FileMode { return fi.mode }

// ModTime returns the time the FS was created.
func (fi fileInfo) ModTime() time.Time { return fi.modTime }

// IsDir reports whether the entry is a folder.
func (fi fileInfo) IsDir() bool { return fi.mode.IsDir() }

// Sys returns nil.
func (fi fileInfo) Sys() any { return nil }

// Type returns the type bits for the entry.
func (fi fileInfo) Type() fs.FileMode { return fi.mode.Type() }

// Info returns the FileInfo for the entry.
func (fi fileInfo) Info() (fs.FileInfo, error) { return fi, nil }

// renderFile is an in-memory file holding rendered output.
type renderFile struct {
	info   fileInfo
	reader *bytes.Reader
}

func newRenderFile(name string, b []byte, modTime time.Time) *renderFile {
	return &renderFile{
		info:   newFileInfo(name, int64(len(b)), 0o444, modTime),
		reader: bytes.NewReader(b),
	}
}

// Stat returns a FileInfo describing the file.
func (f *renderFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Read reads up to len(b) bytes from the File. It returns the number of bytes read
// and any error encountered. At end of file, Read returns 0, io.EOF.
func (f *renderFile) Read(b []byte) (int, error) {
	return f.reader.Read(b)
}

// ReadAt reads len(b) bytes starting at offset off.
func (f *renderFile) ReadAt(b []byte, off int64) (int, error) {
	return f.reader.ReadAt(b, off)
}

// Seek sets the offset for the next Read, interpreted according
// to whence: io.SeekStart means relative to the start of the file, io.SeekCurrent
// means relative to the current offset, and io.SeekEnd means relative to the end.
func (f *renderFile) Seek(offset int64, whence int) (int64, error) {
	return f.reader.Seek(offset, whence)
}

// Close closes the file. Rendered files are in memory, so this function does nothing.
func (f *renderFile) Close() error {
	return nil
}
