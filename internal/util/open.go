package util

import (
	"os/exec"
	"runtime"
	"strconv"
)

// opener 返回当前系统打开文件或链接的命令
func opener(target string) *exec.Cmd {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		return exec.Command("open", target)
	default:
		return exec.Command("xdg-open", target)
	}
}

// Open 用系统默认程序打开导出文件或服务地址
func Open(target string) error {
	err := opener(target).Start()
	if err == nil || runtime.GOOS != "windows" {
		return err
	}
	// rundll32 失败时退回 explorer
	return exec.Command("explorer", target).Start()
}

// FormatScore 技能分输出格式，整数不带小数点
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
