package wal

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Seq  uint64 `json:"seq"`
	Name string `json:"name"`
}

func readRecords(t *testing.T, w *WAL) []record {
	t.Helper()
	var out []record
	err := w.ReadAll(func(raw []byte) error {
		var r record
		if err := json.Unmarshal(raw, &r); err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestWALWriteAndReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	w, err := NewWAL(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(record{Seq: 1, Name: "a"}))
	require.NoError(t, w.Write(record{Seq: 2, Name: "b"}))
	assert.Equal(t, []record{{1, "a"}, {2, "b"}}, readRecords(t, w))

	// 讀取後繼續寫入仍會附加在檔尾
	require.NoError(t, w.Write(record{Seq: 3, Name: "c"}))
	require.NoError(t, w.Close())

	w, err = NewWAL(path)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, []record{{1, "a"}, {2, "b"}, {3, "c"}}, readRecords(t, w))
}

func TestWALIgnoresTornTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	require.NoError(t, os.WriteFile(path, []byte("{\"seq\":1,\"name\":\"a\"}\n{\"seq\":2,\"na"), FileModeReadOnly))

	w, err := NewWAL(path)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, []record{{1, "a"}}, readRecords(t, w))

	require.NoError(t, w.Write(record{Seq: 2, Name: "b"}))
	assert.Equal(t, []record{{1, "a"}, {2, "b"}}, readRecords(t, w))
}

func TestWALCallbackError(t *testing.T) {
	w, err := NewWAL(filepath.Join(t.TempDir(), "wal.log"))
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Write(record{Seq: 1}))

	boom := assert.AnError
	err = w.ReadAll(func([]byte) error { return boom })
	require.ErrorIs(t, err, boom)
}

// failSync 讓接下來 n 次 fsync 失敗
func failSync(w *WAL, n int) {
	w.syncFile = func(f *os.File) error {
		if n > 0 {
			n--
			return errors.New("input/output error")
		}
		return f.Sync()
	}
}

func TestWALWriteFailureRollsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	w, err := NewWAL(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(record{Seq: 1, Name: "create"}))

	// 資料已寫入但 fsync 失敗，呼叫者會用同一個序號送出下一筆
	failSync(w, 1)
	require.Error(t, w.Write(record{Seq: 2, Name: "deposit 999"}))
	require.NoError(t, w.Write(record{Seq: 2, Name: "deposit 5"}))
	require.NoError(t, w.Close())

	w, err = NewWAL(path)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, []record{{1, "create"}, {2, "deposit 5"}}, readRecords(t, w))
}

func TestWALBrokenAfterFailedRollback(t *testing.T) {
	w, err := NewWAL(filepath.Join(t.TempDir(), "wal.log"))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Write(record{Seq: 1}))

	// 寫入與回滾後的 fsync 都失敗
	failSync(w, 2)
	err = w.Write(record{Seq: 2})
	require.ErrorIs(t, err, ErrBroken)

	// 之後的寫入全部拒絕，即使磁碟已恢復
	require.ErrorIs(t, w.Write(record{Seq: 2}), ErrBroken)
}
