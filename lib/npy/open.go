// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

package npy

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/klauspost/compress/flate"
	"golang.org/x/sys/unix"
)

// ErrMemberNotFound reports that an .npz archive holds no member with
// the requested name.
var ErrMemberNotFound = errors.New("member not found")

// Open memory-maps an .npy file read-only and returns an array over
// the mapped element data. No element bytes are read up front; pages
// are faulted in as elements are accessed. The caller must Close the
// array to release the mapping, and should wrap element reads in
// Array.Guarded when the file may be truncated while mapped.
func Open(path string) (*Array, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}
	if stat.Size == 0 {
		unix.Close(fd)
		return nil, fmt.Errorf("parsing %s: file too short for NPY magic", path)
	}
	mapping, err := unix.Mmap(fd, 0, int(stat.Size), unix.PROT_READ, unix.MAP_SHARED)
	unix.Close(fd)
	if err != nil {
		return nil, fmt.Errorf("memory-mapping %s: %w", path, err)
	}

	arr, err := parseMapped(mapping, path)
	if err != nil {
		unix.Munmap(mapping)
		return nil, err
	}
	arr.mapping = mapping
	arr.mapped = true
	return arr, nil
}

// parseMapped parses the header out of mapped memory. A file
// truncated behind our back surfaces as a page fault, which the
// guard converts into an error instead of crashing the process.
func parseMapped(mapping []byte, path string) (arr *Array, err error) {
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		if r := recover(); r != nil {
			arr = nil
			err = fmt.Errorf("reading %s: page fault: %v", path, r)
		}
	}()
	return fromBytes(mapping, path)
}

// Load reads an array fully into memory. For .npz paths it loads the
// archive's first member in name order; use LoadMember to pick one.
// Arrays returned by Load need no Close.
func Load(path string) (*Array, error) {
	if filepath.Ext(path) == ".npz" {
		return LoadMember(path, "")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return fromBytes(data, path)
}

// Members lists the .npy member names of an .npz archive in sorted
// order.
func Members(path string) ([]string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer reader.Close()

	names := []string{}
	for _, file := range reader.File {
		if strings.HasSuffix(file.Name, ".npy") {
			names = append(names, file.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadMember reads one member array out of an .npz archive. The name
// may be given with or without the .npy suffix the archive stores.
// An empty name selects the first member in name order. A missing
// member yields an error wrapping ErrMemberNotFound that lists the
// names the archive does hold.
func LoadMember(path, name string) (*Array, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer reader.Close()
	reader.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	var member *zip.File
	names := []string{}
	for _, file := range reader.File {
		if !strings.HasSuffix(file.Name, ".npy") {
			continue
		}
		names = append(names, file.Name)
		if name != "" && (file.Name == name || file.Name == name+".npy") {
			member = file
		}
	}
	sort.Strings(names)

	if name == "" {
		if len(names) == 0 {
			return nil, fmt.Errorf("archive %s has no .npy members", path)
		}
		for _, file := range reader.File {
			if file.Name == names[0] {
				member = file
				break
			}
		}
	}
	if member == nil {
		return nil, fmt.Errorf("%w: %q in %s (available: %s)",
			ErrMemberNotFound, name, path, strings.Join(names, ", "))
	}

	rc, err := member.Open()
	if err != nil {
		return nil, fmt.Errorf("opening member %s of %s: %w", member.Name, path, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading member %s of %s: %w", member.Name, path, err)
	}
	return fromBytes(data, path+":"+member.Name)
}

// fromBytes parses a complete NPY byte stream and validates that the
// data section covers the declared shape.
func fromBytes(data []byte, path string) (*Array, error) {
	header, dataOffset, err := parseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	size, err := shapeSize(header.Shape)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	need := size * header.DType.Size
	if len(data)-dataOffset < need {
		return nil, fmt.Errorf("parsing %s: data section is %d bytes, want %d for %s %s",
			path, len(data)-dataOffset, need, FormatShape(header.Shape), header.DType.Name())
	}
	return newArray(header, data[dataOffset:], path), nil
}
