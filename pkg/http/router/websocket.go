package router

import (
	"context"
	"net"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/navigatorx-junction/pkg/http/router/controllers"
	"github.com/mailru/easygo/netpoll"
	"go.uber.org/zap"
)

/*
handleWebsocket. live turn queries: upgrade the connection, register the user in the hub,
then answer every {"node_id": .., "from": ..} message until the connection is closed.

use epoll api to reduce memory stack, ref: https://sergey.kamardin.org/articles/million-websocket-and-go/
the user connection file descriptor is added to the epoll interest list, a goroutine is only spawned
when the descriptor is readable. without a poller every user gets its own reader goroutine.
*/
func (api *API) handleWebsocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, _, hs, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
		return
	}

	api.log.Info("established websocket connection", zap.String("connnection name ", nameConn(conn)),
		zap.String("protocol", hs.Protocol))

	user := api.hub.Register(conn)

	if api.poller == nil {
		go api.readLoop(conn, user)
		return
	}

	desc, err := netpoll.HandleRead(conn)
	if err != nil {
		api.log.Debug("netpoll unavailable for connection", zap.Error(err), zap.String("connnection name ", nameConn(conn)))
		go api.readLoop(conn, user)
		return
	}

	err = api.poller.Start(desc, func(ev netpoll.Event) {
		if ev&(netpoll.EventReadHup|netpoll.EventHup) != 0 {
			// peer closed its end of the socket
			api.log.Info("user disconnected from websocket server", zap.Uint("user", user.GetID()))
			api.stopUser(desc, conn, user)
			return
		}

		// epoll_wait loop must not block, the request is served on its own goroutine
		go func() {
			if err := api.sem.Acquire(context.Background(), 1); err != nil {
				return
			}
			defer api.sem.Release(1)

			if err := user.HandleTurnRequest(); err != nil {
				api.log.Info("user disconnected from websocket server", zap.Uint("user", user.GetID()), zap.Error(err))
				api.stopUser(desc, conn, user)
			}
		}()
	})
	if err != nil {
		api.log.Debug("netpoll start failed", zap.Error(err))
		desc.Close()
		go api.readLoop(conn, user)
	}
}

func (api *API) readLoop(conn net.Conn, user *controllers.User) {
	defer api.hub.Remove(user)
	for {
		if err := user.HandleTurnRequest(); err != nil {
			api.log.Info("user disconnected from websocket server", zap.Uint("user", user.GetID()), zap.Error(err))
			conn.Close()
			return
		}
	}
}

func (api *API) stopUser(desc *netpoll.Desc, conn net.Conn, user *controllers.User) {
	api.poller.Stop(desc)
	desc.Close()
	conn.Close()
	api.hub.Remove(user)
}

func nameConn(conn net.Conn) string {
	return conn.LocalAddr().String() + " > " + conn.RemoteAddr().String()
}
