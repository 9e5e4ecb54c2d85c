package terminal

import (
	"time"

	"github.com/nsf/termbox-go"

	"github.com/esimov/ascii-cloth/cloth"
)

const frameInterval = time.Second / 30

// Terminal renders the cloth into a termbox cell backbuffer and feeds mouse
// and resize events back into the simulation.
type Terminal struct {
	backbuf  []termbox.Cell
	bbw, bbh int
	world    *cloth.World
}

func New(cfg cloth.Config) *Terminal {
	return &Terminal{world: cloth.NewWorld(cfg)}
}

// Render runs the frame loop until Esc is pressed. Events are polled on a
// separate goroutine, but the world is only ever touched from this one.
func (t *Terminal) Render() error {
	err := termbox.Init()
	if err != nil {
		return err
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	w, h := termbox.Size()
	t.reallocBackBuffer(w, h)
	t.world.Rebuild(float64(w), float64(h))

	events := make(chan termbox.Event, 16)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev.Type {
			case termbox.EventKey:
				if ev.Key == termbox.KeyEsc {
					t.world.Dispose()
					return nil
				}
			case termbox.EventMouse:
				t.world.PointerMove(float64(ev.MouseX), float64(ev.MouseY))
				switch ev.Key {
				case termbox.MouseLeft:
					t.world.PointerDown()
				case termbox.MouseRelease:
					t.world.PointerUp()
				}
			case termbox.EventResize:
				t.reallocBackBuffer(ev.Width, ev.Height)
				t.world.Rebuild(float64(ev.Width), float64(ev.Height))
			}
		case <-ticker.C:
			frame := t.world.Step()
			t.redraw(frame.Segments)
		}
	}
}

func (t *Terminal) reallocBackBuffer(w, h int) {
	t.bbw, t.bbh = w, h
	t.backbuf = make([]termbox.Cell, w*h)
}

func (t *Terminal) redraw(segs []cloth.Segment) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for i := range t.backbuf {
		t.backbuf[i] = termbox.Cell{}
	}
	for _, s := range segs {
		drawSegment(t.backbuf, t.bbw, t.bbh, s)
	}
	copy(termbox.CellBuffer(), t.backbuf)
	termbox.Flush()
}
