// SPDX-License-Identifier: EPL-2.0

//go:build windows

package loader

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// mapping is a read-only view of a whole file.
type mapping struct {
	data   []byte
	addr   uintptr
	handle windows.Handle // file mapping object
}

func mapFile(f *os.File, size int) (*mapping, error) {
	handle, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, &mmapError{"CreateFileMapping", err}
	}

	addr, err := windows.MapViewOfFile(handle, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(handle)
		return nil, &mmapError{"MapViewOfFile", err}
	}

	return &mapping{
		data:   unsafe.Slice((*byte)(unsafe.Pointer(addr)), size),
		addr:   addr,
		handle: handle,
	}, nil
}

func (m *mapping) unmap() error {
	if m.data == nil {
		return errMmapNotMapped
	}
	m.data = nil

	err := windows.UnmapViewOfFile(m.addr)
	if cerr := windows.CloseHandle(m.handle); err == nil {
		err = cerr
	}
	if err != nil {
		return &mmapError{"UnmapViewOfFile", err}
	}

	return nil
}
