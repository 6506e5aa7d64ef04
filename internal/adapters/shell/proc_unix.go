//go:build unix

package shell

import (
	"os/exec"
	"syscall"
)

// killGroup kills the tool together with the JVMs it forked. pty.Start puts
// the tool in its own session, so its pid is also its process group id.
func killGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
