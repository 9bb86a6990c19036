// Command preview plays a scene in the terminal.
//
// Keys: space pauses, left and right step one frame, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-g-everett/frametx/stream"
	"github.com/matt-g-everett/frametx/util"
)

const (
	nameWidth = 14
	barWidth  = 30
)

type Preview struct {
	screen tcell.Screen
	scene  *stream.Scene
	frame  int
	paused bool
}

func NewPreview(scene *stream.Scene) (*Preview, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	return &Preview{screen: screen, scene: scene}, nil
}

func (p *Preview) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			p.paused = true
			p.frame = p.scene.Clock.Wrap(p.frame - 1)
		case tcell.KeyRight:
			p.paused = true
			p.frame = p.scene.Clock.Wrap(p.frame + 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				p.paused = !p.paused
			}
		}
		p.draw()

	case *tcell.EventResize:
		p.screen.Sync()
		p.draw()
	}

	return true
}

func (p *Preview) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (p *Preview) draw() {
	p.screen.Clear()
	f := p.scene.Frame(p.frame)

	status := fmt.Sprintf("frame %4d/%d  %6.2fs", f.Number, p.scene.Clock.TotalFrames, f.Seconds)
	if p.paused {
		status += "  [paused]"
	}
	p.drawText(0, 0, status, tcell.StyleDefault.Bold(true))

	for i, s := range f.Samples {
		y := i + 2
		p.drawText(0, y, s.Track, tcell.StyleDefault.Foreground(tcell.ColorYellow))

		filled := util.ClampInt(int(s.Value*barWidth+0.5), 0, barWidth)
		for x := 0; x < barWidth; x++ {
			style := tcell.StyleDefault.Foreground(tcell.ColorGray)
			r := '░'
			if x < filled {
				style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
				r = '█'
			}
			p.screen.SetContent(nameWidth+x, y, r, nil, style)
		}

		style := tcell.StyleDefault
		if s.Kind == stream.KindGradient {
			style = style.Background(tcell.GetColor(s.Text))
		}
		p.drawText(nameWidth+barWidth+2, y, s.Text, style)
	}
	p.screen.Show()
}

func (p *Preview) run() {
	ticker := time.NewTicker(time.Second / time.Duration(p.scene.Clock.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- p.screen.PollEvent()
		}
	}()

	p.draw()
	for {
		select {
		case ev := <-eventChan:
			if !p.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if p.paused {
				continue
			}
			p.frame = p.scene.Clock.Wrap(p.frame + 1)
			p.draw()
		}
	}
}

func (p *Preview) cleanup() {
	p.screen.Fini()
}

func loadScene(path string) (*stream.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := stream.ReadConfig(f)
	if err != nil {
		return nil, err
	}
	return stream.NewScene(cfg)
}

func main() {
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	scene, err := loadScene(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}

	preview, err := NewPreview(scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer preview.cleanup()

	preview.run()
}
