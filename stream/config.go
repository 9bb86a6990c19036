package stream

import (
	"io"

	"gopkg.in/yaml.v2"
)

// Config is the YAML description of a scene and the hosts that play it.
// All track timing is given in seconds and converted to frames once, when
// the scene is built.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientId"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Values  string `yaml:"values"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	Server struct {
		Addr   string `yaml:"addr"`
		Static string `yaml:"static"`
	} `yaml:"server"`

	Clock  ClockConfig   `yaml:"clock"`
	Tracks []TrackConfig `yaml:"tracks"`
}

// ClockConfig sets the timeline. Frames wins over Duration when both are set.
type ClockConfig struct {
	FPS      int     `yaml:"fps"`
	Duration float64 `yaml:"duration"`
	Frames   int     `yaml:"frames"`
}

// GradientStop is one hue key of a gradient track.
type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// TrackConfig describes one track. Which fields apply depends on Kind.
type TrackConfig struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"`
	Delay    float64 `yaml:"delay"`
	Duration float64 `yaml:"duration"`
	Easing   string  `yaml:"easing"`
	Stagger  float64 `yaml:"stagger"`

	// sequence
	Items      int     `yaml:"items"`
	Transition float64 `yaml:"transition"`
	EndPadding float64 `yaml:"endPadding"`
	Offset     string  `yaml:"offset"`

	// counter
	From             float64 `yaml:"from"`
	To               float64 `yaml:"to"`
	Decimals         int     `yaml:"decimals"`
	GroupSeparator   *string `yaml:"groupSeparator"`
	DecimalSeparator *string `yaml:"decimalSeparator"`
	Locale           string  `yaml:"locale"`
	Abbreviate       bool    `yaml:"abbreviate"`
	Prefix           string  `yaml:"prefix"`
	Suffix           string  `yaml:"suffix"`
	Clamp            bool    `yaml:"clamp"`

	// digits and flip
	FromText string `yaml:"fromText"`
	Text     string `yaml:"text"`
	Alphabet string `yaml:"alphabet"`

	// noise and twinkle
	Salt      int     `yaml:"salt"`
	Mode      string  `yaml:"mode"`
	Amplitude float64 `yaml:"amplitude"`
	Hold      float64 `yaml:"hold"`
	Threshold float64 `yaml:"threshold"`
	Cells     int     `yaml:"cells"`

	// gradient
	Stops      []GradientStop `yaml:"stops"`
	Saturation float64        `yaml:"saturation"`
	Luminance  float64        `yaml:"luminance"`

	// pulse
	Period float64 `yaml:"period"`
}

// ReadConfig decodes a YAML config.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
