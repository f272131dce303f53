// SPDX-License-Identifier: EPL-2.0

//go:build unix

package loader

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapping is a read-only view of a whole file.
type mapping struct {
	data []byte
}

func mapFile(f *os.File, size int) (*mapping, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &mmapError{"mmap", err}
	}

	return &mapping{data: data}, nil
}

func (m *mapping) unmap() error {
	if m.data == nil {
		return errMmapNotMapped
	}

	err := unix.Munmap(m.data)
	m.data = nil
	if err != nil {
		return &mmapError{"munmap", err}
	}

	return nil
}
