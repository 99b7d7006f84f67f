package wal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// 自己定義常用的權限常量
const (
	// rw-r--r-- (擁有者讀寫，其他人唯讀) - 適用於大多數檔案
	FileModeReadOnly fs.FileMode = 0644

	// rw------- (只有擁有者可讀寫) - 適用於私鑰、機密檔
	FileModePrivate fs.FileMode = 0600
)

// ErrBroken 寫入失敗且無法回滾，檔案尾端狀態未知，之後的寫入一律拒絕
var ErrBroken = errors.New("wal broken")

// WAL 以換行分隔的 JSON 紀錄 (每行一筆)，每次寫入都會 fsync
type WAL struct {
	file *os.File
	mu   sync.Mutex
	// broken 非 nil 時拒絕寫入
	broken error
	// syncFile 測試時可替換，用來模擬 fsync 失敗
	syncFile func(*os.File) error
}

// NewWAL 開啟或建立一個 WAL 檔案
// O_RDWR讀寫模式
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func NewWAL(path string) (*WAL, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModeReadOnly)
	if err != nil {
		return nil, fmt.Errorf("open wal %s: %w", path, err)
	}
	return &WAL{file: file, syncFile: (*os.File).Sync}, nil
}

// Write 寫入一筆資料並刷入硬碟
//
// 寫入或 fsync 失敗時會把檔案截回寫入前的長度，
// 讓呼叫者可以安全地重用同一個序號；截斷也失敗時 WAL 進入 ErrBroken 狀態。
//
// 回傳:
//
//	error: 失敗時紀錄不在檔案中 (已回滾)，或包含 ErrBroken
func (w *WAL) Write(v any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.broken != nil {
		return w.broken
	}

	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	offset := info.Size()

	_, err = w.file.Write(buf.Bytes())
	if err == nil {
		err = w.syncFile(w.file)
	}
	if err == nil {
		return nil
	}
	return w.rollback(offset, err)
}

// rollback 把檔案截回 offset，失敗時標記為 ErrBroken
func (w *WAL) rollback(offset int64, cause error) error {
	truncErr := w.file.Truncate(offset)
	if truncErr == nil {
		truncErr = w.syncFile(w.file)
	}
	if truncErr != nil {
		w.broken = fmt.Errorf("%w: %w (rollback: %w)", ErrBroken, cause, truncErr)
		return w.broken
	}
	return cause
}

// Sync 強制刷入硬碟
func (w *WAL) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.syncFile(w.file)
}

// Close 關閉檔案
func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ReadAll 讀取所有資料
// callback 接收每一筆原始 JSON，避免一次將所有資料載入記憶體
func (w *WAL) ReadAll(callback func(jsonRaw []byte) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	// 確保從頭讀取 (O_APPEND 下寫入仍會寫到檔尾)
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	decoder := json.NewDecoder(w.file)
	var lastGood int64
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// 最後一筆寫到一半 (crash)，視為未提交並截斷，避免之後的寫入接在殘缺資料後面
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return w.file.Truncate(lastGood)
			}
			return err
		}
		lastGood = decoder.InputOffset()
		if err := callback(raw); err != nil {
			return err
		}
	}
	return nil
}
