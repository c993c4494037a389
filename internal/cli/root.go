// internal/cli/root.go

// Package cli 組裝 codinggame 指令：classes（銀行情境）、functions（編碼函式鏈）與 serve（HTTP 服務）。
// 指令結果寫到 stdout，日誌與錯誤寫到 stderr。
package cli

import (
	"fmt"
	"os"
	"regexp"

	"github.com/kinvolk/coding-game-service/internal/config"
	"github.com/kinvolk/coding-game-service/internal/log"
	"github.com/spf13/cobra"
)

// app 保存各子指令共用的設定狀態。
type app struct {
	cfgFile string
	cfg     *config.Config
}

// Execute 執行根指令；失敗時把錯誤印到 stderr 並以狀態碼 1 結束。
func Execute() {
	if err := newRootCmd(os.Args[1:]).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var negativeNumber = regexp.MustCompile(`^-\d`)

// numericArgs 在第一個負數參數前插入 "--"，讓 pflag 不把 -1 當成短旗標。
// 已經出現 "--" 時不做任何改變。
func numericArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if negativeNumber.MatchString(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func newRootCmd(args []string) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "codinggame",
		Short: "Banking and function-pipeline exercises",
		Long: `codinggame runs the finished coding-game exercises: a small bank with
business hours, credit cards and overdraft tracking, and a pipeline that
encodes numbers into a string.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: a.initConfig,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (toml, yaml or json)")
	root.PersistentFlags().String("log-level", string(log.LevelInfo), "log level: error, warn, info, debug")

	root.AddCommand(a.classesCmd(), a.functionsCmd(), a.serveCmd())
	root.SetArgs(numericArgs(args))
	return root
}

// initConfig 載入設定並把旗標綁定到 viper；旗標只有在明確指定時才覆寫設定檔與環境變數。
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	dotenv := config.LoadDotEnv()
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}
	bindings := map[string]string{
		config.KeyLogLevel:     "log-level",
		config.KeyPipelineWrap: "wrap",
		config.KeyServerAddr:   "addr",
		config.KeyDataFile:     "data-file",
	}
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	if err := log.SetLevel(level); err != nil {
		return err
	}
	// 等級套用後才記錄載入來源，--log-level debug 時才看得到
	if !dotenv {
		log.Debug("no .env file found, using environment variables")
	}
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug("using config file", "path", used)
	}
	a.cfg = cfg
	return nil
}
