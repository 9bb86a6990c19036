package stream

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

const (
	defaultStreamTopic = "frametx/stream"
	publishQos         = 0
)

// Control message types.
const (
	ControlPlay  = "play"
	ControlPause = "pause"
	ControlSeek  = "seek"
	ControlStep  = "step"
)

// ControlMessage moves the streamer's playhead.
type ControlMessage struct {
	Type  string `json:"type"`
	Frame int    `json:"frame"`
}

// playhead is the host-side notion of "now". It is the only mutable state
// in the pipeline and lives in the host, not in the tracks.
type playhead struct {
	frame   int
	playing bool
}

func (p *playhead) apply(m ControlMessage) {
	switch m.Type {
	case ControlPlay:
		p.playing = true
	case ControlPause:
		p.playing = false
	case ControlSeek:
		p.frame = m.Frame
	case ControlStep:
		p.playing = false
		p.frame += m.Frame
	}
}

// tick returns the frame to publish and advances when playing.
func (p *playhead) tick() int {
	n := p.frame
	if p.playing {
		p.frame++
	}
	return n
}

// Streamer publishes scene frames over MQTT at the scene's frame rate.
type Streamer struct {
	config  Config
	client  mqtt.Client
	scene   *Scene
	control chan ControlMessage
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, scene *Scene) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.scene = scene
	s.control = make(chan ControlMessage, 8)
	return s
}

func (s *Streamer) handleControl(client mqtt.Client, msg mqtt.Message) {
	var m ControlMessage
	if err := json.Unmarshal(msg.Payload(), &m); err != nil {
		log.Printf("Ignoring control message on %s: %v", msg.Topic(), err)
		return
	}
	select {
	case s.control <- m:
	default:
		log.Printf("Dropping control message %q: playhead busy", m.Type)
	}
}

// Subscribe listens on the control topic, if one is configured.
func (s *Streamer) Subscribe() error {
	topic := s.config.Mqtt.Topics.Control
	if topic == "" {
		return nil
	}
	token := s.client.Subscribe(topic, publishQos, s.handleControl)
	token.Wait()
	return token.Error()
}

// SendFrame publishes frame n as JSON, and as binary values when a values
// topic is configured.
func (s *Streamer) SendFrame(n int) error {
	f := s.scene.Frame(n)
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	topic := s.config.Mqtt.Topics.Stream
	if topic == "" {
		topic = defaultStreamTopic
	}
	token := s.client.Publish(topic, publishQos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return err
	}

	if values := s.config.Mqtt.Topics.Values; values != "" {
		data, err := f.MarshalBinary()
		if err != nil {
			return err
		}
		token = s.client.Publish(values, publishQos, false, data)
		token.Wait()
		return token.Error()
	}
	return nil
}

// Run causes the Streamer to send frames until ctx is done. Playback loops
// over the scene's frames.
func (s *Streamer) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(s.scene.Clock.FPS)
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()

	p := playhead{playing: true}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m := <-s.control:
			p.apply(m)
		case <-publishTimer.C:
			n := s.scene.Clock.Wrap(p.tick())
			if err := s.SendFrame(n); err != nil {
				log.Printf("Publish frame %d: %v", n, err)
			}
		}
	}
}
