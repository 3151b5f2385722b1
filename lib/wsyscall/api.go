// Package wsyscall wraps the few raw system calls that golang.org/x/sys/unix
// does not expose in a typed form.
package wsyscall

// Ioctl issues an ioctl(2) request. The caller owns argp and must keep the
// memory it points to alive for the duration of the call.
func Ioctl(fd int, request, argp uintptr) error {
	return ioctl(fd, request, argp)
}

// OpenInetDatagramSocket returns a transient AF_INET/SOCK_DGRAM socket, used
// only as a handle for interface queries.
func OpenInetDatagramSocket() (int, error) {
	return openInetDatagramSocket()
}

// Close closes a file descriptor returned by OpenInetDatagramSocket.
func Close(fd int) error {
	return closeFd(fd)
}
