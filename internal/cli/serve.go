// internal/cli/serve.go

package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kinvolk/coding-game-service/internal/bank"
	"github.com/kinvolk/coding-game-service/internal/log"
	"github.com/kinvolk/coding-game-service/internal/server"
	"github.com/kinvolk/coding-game-service/internal/storage"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bank over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("data-file", "data.json", "JSON snapshot file")
	return cmd
}

// loadBank 從快照還原銀行；快照不存在時以空銀行啟動。
func loadBank(path string) (*bank.Bank, error) {
	b := bank.NewBank()
	snap, err := storage.LoadSnapshot(path)
	switch {
	case err == nil:
		b.Restore(snap)
		log.Info("snapshot loaded", "path", path, "accounts", len(snap.Accounts))
	case storage.IsNotExist(err):
		log.Info("no snapshot, starting with an empty bank", "path", path)
	default:
		return nil, err
	}
	return b, nil
}

// snapshotSaver 回傳把銀行狀態寫入 path 的持久化鉤子；呼叫彼此序列化，
// 後完成的寫入一定帶著較新的快照。
func snapshotSaver(path string, b *bank.Bank) func() error {
	var mu sync.Mutex
	return func() error {
		mu.Lock()
		defer mu.Unlock()
		return storage.SaveSnapshot(path, b.Snapshot())
	}
}

// serve 啟動 HTTP 服務直到 ctx 結束，結束前保存一次快照。
func (a *app) serve(ctx context.Context) error {
	dataFile := a.cfg.Storage.DataFile
	b, err := loadBank(dataFile)
	if err != nil {
		return err
	}
	persist := snapshotSaver(dataFile, b)

	if !log.IsDebugEnabled() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           server.NewServer(b, persist).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("bank server running", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
	return persist()
}
