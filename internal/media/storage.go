package media

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrTooLarge 文件超过大小限制
var ErrTooLarge = errors.New("file too large")

// DiskStorage 把上传文件保存在本地目录，文件名为内容的 sha256
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{dir: dir}
}

// Staged 已写入临时文件、尚未确定最终位置的上传
type Staged struct {
	TempPath string
	Hash     string
	Size     int64
}

// Stage 边写临时文件边计算哈希，超过 maxBytes 时删除临时文件并返回 ErrTooLarge
func (s *DiskStorage) Stage(r io.Reader, maxBytes int64) (*Staged, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	tmpPath := filepath.Join(s.dir, ".upload-"+uuid.NewString())
	dst, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(dst, h), io.LimitReader(r, maxBytes+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if n > maxBytes {
		_ = os.Remove(tmpPath)
		return nil, ErrTooLarge
	}

	return &Staged{TempPath: tmpPath, Hash: hex.EncodeToString(h.Sum(nil)), Size: n}, nil
}

// Commit 把临时文件移动到 <dir>/<name>，返回最终路径
func (s *DiskStorage) Commit(st *Staged, name string) (string, error) {
	final := filepath.Join(s.dir, name)
	if err := os.Rename(st.TempPath, final); err != nil {
		_ = os.Remove(st.TempPath)
		return "", fmt.Errorf("move upload: %w", err)
	}
	return final, nil
}

// Discard 丢弃临时文件
func (s *DiskStorage) Discard(st *Staged) {
	_ = os.Remove(st.TempPath)
}

// Remove 删除已保存的文件，文件不存在不算错误
func (s *DiskStorage) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
