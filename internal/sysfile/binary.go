package sysfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
)

const (
	binaryMagic   = "LSB1"
	headerSize    = 8
	maxBinarySize = 1 << 14 // largest n accepted from a header
)

// WriteBinary encodes one system in the .lsb layout.
func WriteBinary(w io.Writer, s System) error {
	if err := s.Validate(); err != nil {
		return err
	}
	n := len(s.Vector)
	buf := make([]byte, headerSize+8*(n*n+n))
	copy(buf, binaryMagic)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(n))
	off := headerSize
	for _, row := range s.Matrix {
		for _, v := range row {
			binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
			off += 8
		}
	}
	for _, v := range s.Vector {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
		off += 8
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("sysfile: write binary: %w", err)
	}

	return nil
}

// DecodeBinary parses one system from an .lsb byte image.
// The returned System does not reference data.
func DecodeBinary(data []byte) (System, error) {
	if len(data) < headerSize {
		return System{}, ErrTruncated
	}
	if string(data[:4]) != binaryMagic {
		return System{}, ErrBadHeader
	}
	n := int(binary.LittleEndian.Uint32(data[4:8]))
	if n == 0 || n > maxBinarySize {
		return System{}, fmt.Errorf("sysfile: size %d: %w", n, ErrBadHeader)
	}
	if want := headerSize + 8*(n*n+n); len(data) != want {
		return System{}, fmt.Errorf("sysfile: have %d bytes, want %d: %w", len(data), want, ErrTruncated)
	}

	off := headerSize
	next := func() float64 {
		v := math.Float64frombits(binary.LittleEndian.Uint64(data[off:]))
		off += 8
		return v
	}
	s := System{Matrix: make([][]float64, n), Vector: make([]float64, n)}
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		for j := range row {
			row[j] = next()
		}
		s.Matrix[i] = row
	}
	for i := range s.Vector {
		s.Vector[i] = next()
	}

	return s, nil
}

// loadBinary maps path read-only and decodes it. The mapping is released
// before returning; the System holds its own copy of the numbers.
func loadBinary(path string) (System, error) {
	f, err := os.Open(path)
	if err != nil {
		return System{}, fmt.Errorf("sysfile: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return System{}, fmt.Errorf("sysfile: %w", err)
	}
	if st.Size() < headerSize {
		return System{}, fmt.Errorf("sysfile: %s: %w", path, ErrTruncated)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return System{}, fmt.Errorf("sysfile: mmap %s: %w", path, err)
	}
	defer m.Unmap()

	s, err := DecodeBinary(m)
	if err != nil {
		return System{}, fmt.Errorf("sysfile: %s: %w", path, err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return s, nil
}
