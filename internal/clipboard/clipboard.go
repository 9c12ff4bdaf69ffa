package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Clipboard 封装平台相关的剪贴板命令
// fabric 流程通过剪贴板在抽取与评级两步之间传递文本
type Clipboard struct {
	copyCmd  []string
	pasteCmd []string
}

// New 根据当前操作系统选择剪贴板命令，命令不可用时报错
func New() (*Clipboard, error) {
	return newForOS(runtime.GOOS)
}

func newForOS(goos string) (*Clipboard, error) {
	copyCmd, pasteCmd, err := commandsFor(goos)
	if err != nil {
		return nil, err
	}

	if _, err := exec.LookPath(copyCmd[0]); err != nil {
		return nil, fmt.Errorf("clipboard utility %q not found: %w", copyCmd[0], err)
	}
	if _, err := exec.LookPath(pasteCmd[0]); err != nil {
		return nil, fmt.Errorf("clipboard utility %q not found: %w", pasteCmd[0], err)
	}

	return &Clipboard{copyCmd: copyCmd, pasteCmd: pasteCmd}, nil
}

// commandsFor 返回指定操作系统的复制/粘贴命令
func commandsFor(goos string) (copyCmd, pasteCmd []string, err error) {
	switch goos {
	case "darwin":
		return []string{"pbcopy"}, []string{"pbpaste"}, nil
	case "linux":
		return []string{"xclip", "-selection", "clipboard", "-i"},
			[]string{"xclip", "-selection", "clipboard", "-o"}, nil
	case "windows":
		return []string{"clip"},
			[]string{"powershell.exe", "-command", "Get-Clipboard"}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// Copy 把文本写入系统剪贴板
func (c *Clipboard) Copy(text string) error {
	cmd := exec.Command(c.copyCmd[0], c.copyCmd[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("clipboard copy failed: %w: %s", err, string(out))
	}
	return nil
}

// Paste 从系统剪贴板读取文本
func (c *Clipboard) Paste() (string, error) {
	cmd := exec.Command(c.pasteCmd[0], c.pasteCmd[1:]...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("clipboard paste failed: %w", err)
	}
	return string(out), nil
}
