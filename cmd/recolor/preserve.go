package main

import (
	"os"

	"github.com/djherbis/atime"
)

// preserveAttributes copies the selected file attributes of src onto dst.
func preserveAttributes(src, dst string) {
	if !preserveMode && !preserveOwnership && !preserveTimestamps {
		return
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		Warning.Println(err)
		return
	}

	if preserveMode {
		if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
			Warning.Println(err)
		}
	}
	if preserveOwnership {
		if uid, gid, ok := getOwnership(srcInfo); ok {
			if err := os.Chown(dst, uid, gid); err != nil {
				Warning.Println(err)
			}
		}
	}
	if preserveTimestamps {
		if err := os.Chtimes(dst, atime.Get(srcInfo), srcInfo.ModTime()); err != nil {
			Warning.Println(err)
		}
	}
}
