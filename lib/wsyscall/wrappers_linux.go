package wsyscall

import (
	"os"

	"golang.org/x/sys/unix"
)

func closeFd(fd int) error {
	return unix.Close(fd)
}

func ioctl(fd int, request, argp uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), request, argp)
	if errno != 0 {
		return os.NewSyscallError("ioctl", errno)
	}
	return nil
}

func openInetDatagramSocket() (int, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC,
		unix.IPPROTO_IP)
	if err != nil {
		return -1, os.NewSyscallError("socket", err)
	}
	return fd, nil
}
