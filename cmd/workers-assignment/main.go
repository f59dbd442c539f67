package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dhanush8/workers-assignment/internal/cli"
	"github.com/Dhanush8/workers-assignment/internal/config"
	"github.com/Dhanush8/workers-assignment/internal/logx"
	"github.com/Dhanush8/workers-assignment/internal/server"
	"github.com/Dhanush8/workers-assignment/internal/service/assigner"
	"github.com/Dhanush8/workers-assignment/internal/util"
)

const usage = `用法:
  workers-assignment assign -file skills.xlsx [-absent E01,E02] [-sheet 名称] [-format table|json|yaml] [-out result.xlsx]
  workers-assignment serve [-port 20262] [-dev] [-open]
  workers-assignment config [-offset 2] [-sheet 名称]    写出当前生效配置

公共参数:
  -config  配置文件路径 (默认可执行文件同目录下的 config.toml)
  -log     日志级别 (debug|info|warn|error|none)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "assign":
		err = runAssign(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "config":
		err = runConfig(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "未知子命令 %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, cli.ErrPromptCancelled) {
			os.Exit(130)
		}
		logx.Log.Error().Err(err).Msg(os.Args[1] + " failed")
		os.Exit(1)
	}
}

// loadConfig 加载配置；命令行日志级别优先
func loadConfig(path, level string) (*config.AppConfig, config.LoadConfigInfo) {
	var (
		cfg  *config.AppConfig
		info config.LoadConfigInfo
		err  error
	)
	if path == "" {
		path = config.DefaultPath()
		cfg, info, err = config.LoadConfigWithInfo()
	} else {
		cfg, info, err = config.LoadFile(path)
	}
	if err != nil {
		logx.Log.Warn().Err(err).Str("path", path).Msg("加载配置失败，使用默认配置")
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{Path: path}
	}
	if level != "" {
		cfg.Log.Level = level
	}
	logx.Configure(cfg.Log.Level)
	return cfg, info
}

func runAssign(args []string) error {
	fs := flag.NewFlagSet("assign", flag.ExitOnError)
	configPath := fs.String("config", "", "配置文件路径")
	logLevel := fs.String("log", "", "日志级别")
	file := fs.String("file", "", "员工技能表 (.xlsx)")
	sheet := fs.String("sheet", "", "工作表名称 (覆盖配置文件)")
	absent := fs.String("absent", "", "缺勤员工编号，逗号分隔；不指定时交互询问")
	format := fs.String("format", cli.FormatTable, "输出格式 table|json|yaml")
	out := fs.String("out", "", "导出分配结果工作簿")
	offset := fs.Int("offset", 0, "兼岗人数偏移 (覆盖配置文件)")
	open := fs.Bool("open", false, "导出后打开结果工作簿")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" && fs.NArg() > 0 {
		*file = fs.Arg(0)
	}

	absentSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "absent" {
			absentSet = true
		}
	})

	cfg, _ := loadConfig(*configPath, *logLevel)
	if *sheet == "" {
		*sheet = cfg.Excel.Sheet
	}
	policy := assigner.Policy{DoubleBookOffset: cfg.Policy.DoubleBookOffset}
	if *offset > 0 {
		policy.DoubleBookOffset = *offset
	}

	_, err := cli.Run(cli.Options{
		File:      *file,
		Sheet:     *sheet,
		Absent:    *absent,
		AbsentSet: absentSet,
		Format:    *format,
		Out:       *out,
		Open:      *open,
		Policy:    policy,
		In:        os.Stdin,
		Stdout:    os.Stdout,
	})
	return err
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "配置文件路径")
	logLevel := fs.String("log", "", "日志级别")
	port := fs.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode := fs.Bool("dev", false, "开发模式")
	open := fs.Bool("open", false, "启动后在浏览器中打开状态页")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, info := loadConfig(*configPath, *logLevel)

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	srv := server.NewServer(cfg)
	if dir, err := config.EnsureOutputDir(cfg); err != nil {
		logx.Log.Warn().Err(err).Msg("创建导出目录失败")
	} else {
		srv.SetArchiveDir(dir)
		logx.Log.Info().Str("dir", dir).Msg("导出目录")
	}
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d/api/status", cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		logx.Log.Info().Int("port", cfg.Server.Port).Int("double_book_offset", cfg.Policy.DoubleBookOffset).Msg("服务启动中")
		errCh <- srv.Run(addr)
	}()

	if *open {
		if err := util.Open(url); err != nil {
			logx.Log.Warn().Err(err).Str("url", url).Msg("无法自动打开浏览器，请手动访问")
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("服务启动失败: %w", err)
	case <-quit:
		logx.Log.Info().Msg("正在关闭服务")
		return nil
	}
}

func runConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	configPath := fs.String("config", "", "配置文件路径")
	offset := fs.Int("offset", 0, "兼岗人数偏移")
	sheet := fs.String("sheet", "", "默认工作表名称")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, info := loadConfig(*configPath, "")
	if *offset > 0 {
		cfg.Policy.DoubleBookOffset = *offset
	}
	if *sheet != "" {
		cfg.Excel.Sheet = *sheet
	}
	if err := config.SaveConfig(info.Path, cfg); err != nil {
		return fmt.Errorf("保存配置失败: %w", err)
	}
	fmt.Printf("配置已写入 %s\n", info.Path)
	return nil
}
