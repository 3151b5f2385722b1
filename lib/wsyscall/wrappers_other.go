//go:build !linux
// +build !linux

package wsyscall

import "errors"

var errNotSupported = errors.New("not supported on this platform")

func closeFd(fd int) error {
	return errNotSupported
}

func ioctl(fd int, request, argp uintptr) error {
	return errNotSupported
}

func openInetDatagramSocket() (int, error) {
	return -1, errNotSupported
}
