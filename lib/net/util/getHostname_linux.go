package util

import (
	"os"

	"golang.org/x/sys/unix"
)

func readNodename() ([]byte, error) {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return nil, os.NewSyscallError("uname", err)
	}
	return utsname.Nodename[:], nil
}
