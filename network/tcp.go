package network

import (
	"net"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
)

type Tcp struct {
	addr        string
	authTimeout time.Duration
}

func NewTcpServer(addr string, authTimeout time.Duration) Tcp {
	return Tcp{addr: addr, authTimeout: authTimeout}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("Tcp server listening on %s\n", t.addr)
	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		async.Async(func() {
			err := handle(protocol.NewTcpReadWriteCloser(conn), t.authTimeout)
			if err != nil {
				log.Error(err)
			}
		})
	}
}
