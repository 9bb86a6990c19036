package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matt-g-everett/frametx/stream"
)

const maxRangeFrames = 10000

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Api serves scene frames over HTTP and websockets.
type Api struct {
	scene    *stream.Scene
	renderer *stream.Renderer
	static   string
}

// NewApi creates an Api for scene. static is a directory served at "/";
// empty disables it.
func NewApi(scene *stream.Scene, renderer *stream.Renderer, static string) *Api {
	a := new(Api)
	a.scene = scene
	a.renderer = renderer
	a.static = static
	return a
}

// Handler returns the routes:
//
//	GET /frames/{n}          one frame
//	GET /frames?from=&to=    frames [from, to)
//	GET /ws?start=&count=    frames pushed at the scene's frame rate
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /frames/{n}", a.handleFrame)
	mux.HandleFunc("GET /frames", a.handleRange)
	mux.HandleFunc("GET /ws", a.handleWebSocket)
	if a.static != "" {
		mux.Handle("/", http.FileServer(http.Dir(a.static)))
	}

	id := a.scene.ID()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Scene-Id", id)
		mux.ServeHTTP(w, r)
	})
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println("Shutdown error:", err)
		}
	}()

	log.Printf("Listening on %s...", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		http.Error(w, "frame must be an integer", http.StatusBadRequest)
		return
	}
	writeJSON(w, a.scene.Frame(n))
}

func (a *Api) handleRange(w http.ResponseWriter, r *http.Request) {
	from, err := intParam(r, "from", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := intParam(r, "to", a.scene.Clock.TotalFrames)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if to < from || to-from > maxRangeFrames {
		http.Error(w, "range must hold between 0 and 10000 frames", http.StatusBadRequest)
		return
	}

	frames, err := a.renderer.RenderRange(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, frames)
}

func (a *Api) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	start, err := intParam(r, "start", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	count, err := intParam(r, "count", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	// Reads only detect the peer going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.scene.Clock.FPS))
	defer ticker.Stop()

	for sent := 0; count == 0 || sent < count; sent++ {
		if err := conn.WriteJSON(a.scene.Frame(start + sent)); err != nil {
			return
		}
		select {
		case <-ticker.C:
		case <-closed:
			return
		case <-r.Context().Done():
			return
		}
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
}

func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Write error:", err)
	}
}
