package export

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/security"
)

// BundleBaseName prefixes every file inside a bundle.
const BundleBaseName = "color-palette"

// maxBundleEntry caps each entry read back from a bundle.
const maxBundleEntry = 100 * 1024 * 1024

// bundleEntries lists the bundle members in archive order.
var bundleEntries = []struct {
	name   string
	format Format
}{
	{BundleBaseName + ".json", FormatJSON},
	{BundleBaseName + ".css", FormatCSS},
	{BundleBaseName + ".scss", FormatSCSS},
	{BundleBaseName + ".ase", FormatASE},
	{BundleBaseName + ".png", FormatPNG},
	{BundleBaseName + ".txt", FormatHex},
}

// WriteBundle writes every export format of p into w as an xz-compressed tar.
func WriteBundle(w io.Writer, p colour.Palette, opts Options) error {
	if opts.Extracted.IsZero() {
		opts.Extracted = time.Now()
	}

	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	for _, entry := range bundleEntries {
		data, err := Encode(entry.format, p, opts)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", entry.name, err)
		}

		header := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     entry.name,
			Mode:     0o644,
			Size:     int64(len(data)),
			ModTime:  opts.Extracted,
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write tar header for %s: %w", entry.name, err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("failed to write %s: %w", entry.name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to close tar writer: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to close xz writer: %w", err)
	}
	return nil
}

// ReadBundle reads a bundle written by WriteBundle back into a map of file
// name to contents.
func ReadBundle(r io.Reader) (map[string][]byte, error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}

	files := make(map[string][]byte)
	tr := tar.NewReader(xzr)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}

		data, err := io.ReadAll(security.NewLimitedReader(tr, maxBundleEntry))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", header.Name, err)
		}
		files[header.Name] = data
	}
	return files, nil
}
