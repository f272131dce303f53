// SPDX-License-Identifier: EPL-2.0

//go:build !unix && !windows

package loader

import "os"

type mapping struct {
	data []byte
}

func mapFile(*os.File, int) (*mapping, error) {
	return nil, errMmapUnsupported
}

func (m *mapping) unmap() error {
	return errMmapNotMapped
}
