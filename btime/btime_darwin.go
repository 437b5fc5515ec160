//go:build darwin

package btime

import (
	"io/fs"
	"unsafe"

	"golang.org/x/sys/unix"
)

// setBirthTime sets the creation time via setattrlist(2), requesting only
// the ATTR_CMN_CRTIME common attribute. The attribute buffer holds exactly
// one Timespec.
func setBirthTime(path string, seconds int64) error {
	ts := unix.Timespec{Sec: seconds, Nsec: 0}
	attrList := unix.Attrlist{
		Bitmapcount: unix.ATTR_BIT_MAP_COUNT,
		Commonattr:  unix.ATTR_CMN_CRTIME,
	}
	attrBuf := (*[unsafe.Sizeof(ts)]byte)(unsafe.Pointer(&ts))[:]
	if err := unix.Setattrlist(path, &attrList, attrBuf, 0); err != nil {
		return &fs.PathError{Op: "setattrlist", Path: path, Err: err}
	}
	return nil
}
