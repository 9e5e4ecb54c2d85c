package websocket

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/websocket"

	"github.com/esimov/ascii-cloth/cloth"
)

// Default canvas size used until the client reports its real one.
const (
	defaultWidth  = 1280.0
	defaultHeight = 720.0
)

const writeWait = 10 * time.Second

type Params struct {
	Address string
	Prefix  string
	Root    string
}

// A server application calls the Upgrade method from an HTTP request handler to initiate a connection
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Init initializes the webserver and the websocket endpoint. Every client
// connection gets its own simulation world, stepped at TickHz.
func Init(p *Params) {
	var err error
	p.Root, err = filepath.Abs(p.Root)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("serving %s as %s on %s", p.Root, p.Prefix, p.Address)
	http.Handle(p.Prefix, http.StripPrefix(p.Prefix, http.FileServer(http.Dir(p.Root))))
	http.HandleFunc("/ws", wsHandler)

	mux := http.DefaultServeMux.ServeHTTP
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		mux(w, r)
	})
	server := http.Server{
		Addr:    p.Address,
		Handler: handler,
	}
	err = server.ListenAndServe()
	if err != nil {
		log.Fatalln(err)
	}
}

// wsHandler defines the websocket connection endpoint
func wsHandler(w http.ResponseWriter, r *http.Request) {
	upgrader.CheckOrigin = func(r *http.Request) bool { return true }

	// Upgrade the http connection to a WebSocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			log.Println(err)
		}
		return
	}
	go serve(conn)
}

// serve owns one world per connection. All world access happens on this
// goroutine: the reader only forwards decoded commands through the inbox,
// so steps and rebuilds never overlap.
func serve(conn *websocket.Conn) {
	defer conn.Close()

	world := cloth.NewWorld(cloth.DefaultConfig())
	world.Rebuild(defaultWidth, defaultHeight)
	defer world.Dispose()

	inbox := make(chan interface{}, 64)
	go readSocket(conn, inbox)

	ticker := time.NewTicker(time.Second / TickHz)
	defer ticker.Stop()

	for {
		select {
		case cmd, ok := <-inbox:
			if !ok {
				return
			}
			switch c := cmd.(type) {
			case Pointer:
				world.PointerMove(c.X, c.Y)
				if c.Down {
					world.PointerDown()
				} else {
					world.PointerUp()
				}
			case Resize:
				world.Rebuild(c.W, c.H)
			}
		case <-ticker.C:
			frame := world.Step()
			b, err := Encode(MsgFrame, newFrame(frame))
			if err != nil {
				log.Println(err)
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		}
	}
}

// readSocket listens for new messages being sent to the websocket and
// forwards the decoded commands to the session goroutine.
func readSocket(conn *websocket.Conn, inbox chan<- interface{}) {
	defer close(inbox)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			return
		}
		env, err := DecodeEnvelope(msg)
		if err != nil {
			log.Println(err)
			continue
		}
		switch env.T {
		case MsgPointer:
			p, err := DecodePointer(env)
			if err != nil {
				log.Println(err)
				continue
			}
			inbox <- p
		case MsgResize:
			r, err := DecodeResize(env)
			if err != nil {
				log.Println(err)
				continue
			}
			inbox <- r
		}
	}
}

func newFrame(out cloth.FrameOutput) Frame {
	f := Frame{
		Tick:     out.Tick,
		Segments: make([]Line, 0, len(out.Segments)),
	}
	for _, s := range out.Segments {
		f.Segments = append(f.Segments, Line{X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2})
	}
	return f
}
