package asset

import (
	"context"
	"io"
	"sync"
)

type mockStorage struct {
	mu sync.Mutex

	statInfo FileInfo

	saveErr      error
	removeErr    error
	removeErrFor map[string]error
	statErr      error

	saveCalls   int
	removeCalls int
	statCalled  bool

	savedKeys   []string
	savedOpts   []SaveOptions
	removedKeys []string
	statKey     string
}

func (m *mockStorage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts SaveOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	m.savedKeys = append(m.savedKeys, fileKey)
	m.savedOpts = append(m.savedOpts, opts)
	return m.saveErr
}

func (m *mockStorage) RemoveFile(ctx context.Context, fileKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeCalls++
	m.removedKeys = append(m.removedKeys, fileKey)
	if err, ok := m.removeErrFor[fileKey]; ok {
		return err
	}
	return m.removeErr
}

func (m *mockStorage) StatFile(ctx context.Context, fileKey string) (FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statCalled = true
	m.statKey = fileKey
	if m.statErr != nil {
		return FileInfo{}, m.statErr
	}
	return m.statInfo, nil
}

type mockTranscoder struct {
	mu sync.Mutex

	out         []byte
	err         error
	errForWidth map[int]error

	calls  int
	widths []int
}

func (m *mockTranscoder) Transcode(r io.Reader, maxDimension int) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.widths = append(m.widths, maxDimension)
	if err, ok := m.errForWidth[maxDimension]; ok {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.out != nil {
		return m.out, nil
	}
	return []byte("webp-bytes"), nil
}
