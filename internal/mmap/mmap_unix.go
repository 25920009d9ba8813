//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func osMap(f *os.File, size int) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
}

func osUnmap(data []byte) error {
	return unix.Munmap(data)
}

func osAdviseRandom(data []byte) error {
	err := unix.Madvise(data, unix.MADV_RANDOM)
	if err == unix.EINVAL {
		return nil
	}
	return err
}
