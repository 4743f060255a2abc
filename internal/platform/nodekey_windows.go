//go:build windows

package platform

import (
	"io/fs"
	"os"

	"golang.org/x/sys/windows"
)

// NodeKey identifies a directory by its file index, the Windows analog
// of a Unix (device, inode) pair.
type NodeKey struct {
	VolumeSerial uint32
	FileIndex    uint64
}

// NodeKeyOf derives a NodeKey from a followed-stat FileInfo by opening
// the directory and querying its BY_HANDLE_FILE_INFORMATION. ok is
// false if the information is unavailable.
func NodeKeyOf(info fs.FileInfo) (NodeKey, bool) {
	pathable, ok := info.(interface{ Name() string })
	if !ok {
		return NodeKey{}, false
	}
	f, err := os.Open(pathable.Name())
	if err != nil {
		return NodeKey{}, false
	}
	defer f.Close()

	var fi windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(windows.Handle(f.Fd()), &fi); err != nil {
		return NodeKey{}, false
	}
	return NodeKey{
		VolumeSerial: fi.VolumeSerialNumber,
		FileIndex:    uint64(fi.FileIndexHigh)<<32 | uint64(fi.FileIndexLow),
	}, true
}
