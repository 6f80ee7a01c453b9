package tcp

import (
	"net"
	"syscall"
)

// SetKeepAliveCount set the TCP_KEEPCNT option
func SetKeepAliveCount(conn *net.TCPConn, count int) (err error) {
	rawConn, err := conn.SyscallConn()
	if err != nil {
		return err
	}

	cerr := rawConn.Control(func(fdPtr uintptr) {
		err = syscall.SetsockoptInt(int(fdPtr), syscall.IPPROTO_TCP, syscall.TCP_KEEPCNT, count)
	})
	if cerr != nil {
		return cerr
	}
	return err
}
