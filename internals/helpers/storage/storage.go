package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore adalah kontrak penyimpanan file excuse: put/get/remove by name.
// Implementasi default ke disk lokal (folder uploads), mengikuti perilaku
// referensi; implementasi cloud tinggal memenuhi interface yang sama.
type BlobStore interface {
	Put(name string, r io.Reader) (string, error)
	Open(name string) (io.ReadCloser, error)
	Remove(name string) error
	// Path mengembalikan path absolut di disk untuk dikirim sebagai attachment.
	Path(name string) (string, error)
}

type LocalStorage struct {
	Dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{Dir: dir}, nil
}

func (s *LocalStorage) Put(name string, r io.Reader) (string, error) {
	name = SanitizeFilename(name)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	// pastikan durable sebelum baris attendance di-commit
	if err := dst.Sync(); err != nil {
		return "", err
	}
	return name, nil
}

func (s *LocalStorage) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Dir, SanitizeFilename(name)))
}

func (s *LocalStorage) Remove(name string) error {
	return os.Remove(filepath.Join(s.Dir, SanitizeFilename(name)))
}

func (s *LocalStorage) Path(name string) (string, error) {
	p := filepath.Join(s.Dir, SanitizeFilename(name))
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}

// SanitizeFilename membuang komponen direktori dan karakter di luar
// [A-Za-z0-9._-] supaya nama file aman dari path traversal.
func SanitizeFilename(name string) string {
	// normalisasi pemisah windows, lalu ambil basename
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "file"
	}
	return out
}
