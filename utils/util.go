package utils

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Compress gzips data
func Compress(data []byte) ([]byte, error) {
	var compressed bytes.Buffer
	w := gzip.NewWriter(&compressed)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return compressed.Bytes(), nil
}

// Decompress reverses Compress
func Decompress(data []byte) ([]byte, error) {
	zipReader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zipReader.Close()
	return io.ReadAll(zipReader)
}
