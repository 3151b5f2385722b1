//go:build !linux
// +build !linux

package util

import "os"

func readNodename() ([]byte, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}
	return []byte(hostname), nil
}
