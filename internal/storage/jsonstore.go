// internal/storage/jsonstore.go
//
// JSON 快照的讀寫。
// 寫入採「原子寫入」：先寫到同目錄下專屬的暫存檔，再以 rename() 取代原檔，
// 中途失敗不會破壞舊快照；每次寫入各用一個暫存檔，同時寫入也不會互相覆蓋。
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Kind 與 Version 標示目前的快照格式。
const (
	Kind    = "json_snapshot"
	Version = 1
)

// ErrVersion 代表快照格式版本不受支援。
var ErrVersion = errors.New("unsupported snapshot version")

// LoadSnapshot 讀取並解析 path 的快照。
// 檔案不存在時回傳的錯誤滿足 errors.Is(err, fs.ErrNotExist)，呼叫端可據此以空銀行啟動。
func LoadSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return snap, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if snap.Meta.Version != 0 && snap.Meta.Version != Version {
		return snap, fmt.Errorf("%w: %d", ErrVersion, snap.Meta.Version)
	}
	return snap, nil
}

// IsNotExist 回報 err 是否代表快照檔不存在。
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// SaveSnapshot 以原子方式將快照寫入 path：
//  1. 填入 Meta.Storage、Meta.Version 與當前時間戳。
//  2. 在 path 同目錄建立唯一的暫存檔並寫入。
//  3. os.Rename() 取代正式檔案。
func SaveSnapshot(path string, snap Snapshot) error {
	snap.Meta.Storage = Kind
	snap.Meta.Version = Version
	snap.Meta.Timestamp = time.Now()

	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmp := f.Name()
	fail := func(err error) error {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}

	if err := f.Chmod(0o644); err != nil {
		return fail(fmt.Errorf("chmod %s: %w", tmp, err))
	}
	// 縮排輸出，方便人工檢視
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fail(fmt.Errorf("encode snapshot: %w", err))
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
