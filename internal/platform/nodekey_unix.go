//go:build !windows

package platform

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// NodeKey identifies a directory by device+inode so the globstar walker
// can detect symlink cycles that a path-string visited-set would miss
// (two different paths reaching the same directory).
type NodeKey struct {
	Dev uint64
	Ino uint64
}

// NodeKeyOf derives a NodeKey from a followed-stat FileInfo. ok is false
// if the platform cannot expose the underlying device/inode pair.
func NodeKeyOf(info fs.FileInfo) (NodeKey, bool) {
	stat, ok := info.Sys().(*unix.Stat_t)
	if !ok {
		return NodeKey{}, false
	}
	return NodeKey{Dev: uint64(stat.Dev), Ino: stat.Ino}, true
}
