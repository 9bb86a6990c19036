package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/frametx/api"
	"github.com/matt-g-everett/frametx/stream"
)

type app struct {
	Config   stream.Config
	Scene    *stream.Scene
	Client   mqtt.Client
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.Subscribe(); err != nil {
		log.Println("Subscribe error:", err)
	}
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	if err != nil {
		log.Fatal(err)
	}
	a.Scene, err = stream.NewScene(a.Config)
	if err != nil {
		log.Fatal(err)
	}
}

func (a *app) dump(ctx context.Context, from, to, workers int) {
	if to < 0 {
		to = a.Scene.Clock.TotalFrames
	}
	frames, err := stream.NewRenderer(a.Scene, workers).RenderRange(ctx, from, to)
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, f := range frames {
		if err := enc.Encode(f); err != nil {
			log.Fatal(err)
		}
	}
}

func (a *app) serve(ctx context.Context, workers int) {
	addr := a.Config.Server.Addr
	if addr == "" {
		addr = ":3000"
	}
	srv := api.NewApi(a.Scene, stream.NewRenderer(a.Scene, workers), a.Config.Server.Static)
	if err := srv.Serve(ctx, addr); err != nil {
		log.Fatal(err)
	}
}

func (a *app) runStream(ctx context.Context) {
	clientID := a.Config.Mqtt.ClientID
	if clientID == "" {
		clientID = "frametx-" + a.Scene.ID()
	}

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(clientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Config, a.Client, a.Scene)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal(token.Error())
	}
	defer a.Client.Disconnect(250)

	if err := a.Streamer.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal(err)
	}
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	mode := flag.String("mode", "stream", "One of dump, serve or stream.")
	from := flag.Int("from", 0, "First frame to dump.")
	to := flag.Int("to", -1, "Frame after the last to dump; defaults to the scene length.")
	workers := flag.Int("workers", 0, "Render workers; 0 uses every CPU.")
	flag.Parse()

	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Scene %s: %d tracks, %d frames at %d fps",
		a.Scene.ID(), len(a.Scene.Tracks()), a.Scene.Clock.TotalFrames, a.Scene.Clock.FPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "dump":
		a.dump(ctx, *from, *to, *workers)
	case "serve":
		a.serve(ctx, *workers)
	case "stream":
		a.runStream(ctx)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
