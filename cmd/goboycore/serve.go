package main

import (
	"bytes"
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/kestrelcore/goboycore/cmd/goboycore/internal/romio"
	"github.com/kestrelcore/goboycore/internal/console"
	"github.com/kestrelcore/goboycore/pkg/framebuf"
)

// serveCmd runs the console on a ticker goroutine and streams each
// completed frame as a binary PNG websocket message to any connected
// client — a headless remote-viewer for CI inspection.
func serveCmd(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	rom, archive, entry := romFlags(fs)
	addr := fs.String("addr", ":8088", "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	romBytes, err := romio.Load(*rom, *archive, *entry)
	if err != nil {
		return err
	}

	c := console.New()
	if err := c.LoadROM(romBytes); err != nil {
		return err
	}
	c.PowerOn()

	hub := newFrameHub()
	go hub.drive(c)

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	http.HandleFunc("/frames", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.serve(conn)
	})

	return http.ListenAndServe(*addr, nil)
}

type frameHub struct {
	subscribe   chan *websocket.Conn
	unsubscribe chan *websocket.Conn
	broadcast   chan []byte
}

func newFrameHub() *frameHub {
	return &frameHub{
		subscribe:   make(chan *websocket.Conn),
		unsubscribe: make(chan *websocket.Conn),
		broadcast:   make(chan []byte, 1),
	}
}

// drive runs the console, encoding and broadcasting each completed frame,
// and fans incoming subscribe/unsubscribe requests into its connection set.
func (h *frameHub) drive(c *console.Console) {
	conns := map[*websocket.Conn]bool{}
	for {
		select {
		case conn := <-h.subscribe:
			conns[conn] = true
		case conn := <-h.unsubscribe:
			delete(conns, conn)
			conn.Close()
		case frame := <-h.broadcast:
			for conn := range conns {
				if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
					delete(conns, conn)
					conn.Close()
				}
			}
		default:
			c.Tick()
			if c.IsVBlankComplete() {
				var buf bytes.Buffer
				if err := framebuf.EncodePNG(&buf, c.Screen(), 1); err == nil {
					select {
					case h.broadcast <- buf.Bytes():
					default:
					}
				}
			}
		}
	}
}

// serve registers conn with the hub and blocks until the client disconnects.
func (h *frameHub) serve(conn *websocket.Conn) {
	h.subscribe <- conn
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	<-done
	h.unsubscribe <- conn
}
