//go:build windows

package btime

import (
	"io/fs"

	"golang.org/x/sys/windows"
)

// setBirthTime opens the file with the minimum rights needed to modify
// attributes and sets only the creation time, leaving last-access and
// last-write untouched. FILE_FLAG_BACKUP_SEMANTICS is required to open
// directories.
func setBirthTime(path string, seconds int64) error {
	creation, err := filetimeFromUnix(seconds)
	if err != nil {
		return err
	}
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &fs.PathError{Op: "open", Path: path, Err: err}
	}
	h, err := windows.CreateFile(pathp,
		windows.FILE_WRITE_ATTRIBUTES, windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE, nil,
		windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return &fs.PathError{Op: "open", Path: path, Err: err}
	}
	defer windows.Close(h)

	if err := windows.SetFileTime(h, &creation, nil, nil); err != nil {
		return &fs.PathError{Op: "setfiletime", Path: path, Err: err}
	}
	return nil
}
