// glint-sandbox rains pooled sprites down a terminal screen. It wires
// the whole library together: a bus driving spawn cadence, a fixed-step
// loop, quadtree picking under a movable cursor, and audio cues on
// spawn. Arrow keys or the mouse move the cursor; q, Escape, or Ctrl+C
// quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glint/audio"
	"github.com/lixenwraith/glint/event"
	"github.com/lixenwraith/glint/loop"
	"github.com/lixenwraith/glint/render"
	"github.com/lixenwraith/glint/spatial"
	"github.com/lixenwraith/glint/sprite"
	"github.com/lixenwraith/glint/vmath"
)

var (
	fpsFlag  = flag.Float64("fps", 60, "fixed update steps per second")
	muteFlag = flag.Bool("mute", false, "disable audio cues")
	maxFlag  = flag.Int("max", 128, "sprite pool capacity")
	seedFlag = flag.Uint64("seed", 0, "rng seed, 0 seeds from the clock")
)

var palette = []string{"red", "green", "blue", "yellow", "fuchsia", "aqua", "silver"}

type command struct {
	dx, dy int
	setX   int
	setY   int
	abs    bool
}

func main() {
	flag.Parse()

	var player *audio.Player
	if !*muteFlag {
		p, err := audio.NewPlayer()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			player = p
			defer player.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: put the terminal back before the stack trace hits
	// stderr. Deferred Fini runs first, then this prints.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nglint-sandbox crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse()

	ctx := render.NewTerminalContext(screen)
	render.SetDefault(ctx)

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	bus := event.NewBus()
	pool := sprite.NewPool(*maxFlag)

	w, h := ctx.Size()
	tree := spatial.NewQuadtree(vmath.RectAt(0, 0, w, h), 5, 8)
	cursorX, cursorY := int(w)/2, int(h)/2

	// Fall behavior: the default advance plus position integration and a
	// floor that expires the sprite
	fall := sprite.UpdaterFunc(func(s *sprite.Sprite, dt float64) {
		s.Advance(dt)
		s.Position = s.Position.AddScaled(s.Velocity, dt)
		_, floor := ctx.Size()
		if s.Y() > floor+2 {
			s.TTL = 0
		}
	})

	spawn := func() {
		sw, _ := ctx.Size()
		cfg := sprite.Config{
			X:      rng.Range(0, sw),
			Y:      -1,
			DX:     rng.Range(-3, 3),
			DY:     rng.Range(4, 12),
			DDY:    8,
			Color:  palette[rng.Intn(len(palette))],
			Width:  float64(1 + rng.Intn(3)),
			Height: 1,
			TTL:    float64(300 + rng.Intn(600)),
			Update: fall,
		}
		if s := pool.Get(cfg); s != nil {
			player.PlayChime(rng.Range(500, 900), 90*time.Millisecond)
		}
	}

	bus.On(event.Init, func(args ...any) {
		for i := 0; i < 8; i++ {
			spawn()
		}
	})
	ticks := 0
	bus.On(event.Tick, func(args ...any) {
		ticks++
		if ticks%12 == 0 {
			spawn()
		}
	})

	cmds := make(chan command, 32)

	var game *loop.Loop
	game = loop.New(loop.Config{
		Bus: bus,
		FPS: *fpsFlag,
		Update: func(dt float64) {
			for {
				select {
				case c := <-cmds:
					if c.abs {
						cursorX, cursorY = c.setX, c.setY
					} else {
						cursorX += c.dx
						cursorY += c.dy
					}
					sw, sh := ctx.Size()
					cursorX = int(vmath.Clamp(float64(cursorX), 0, sw-1))
					cursorY = int(vmath.Clamp(float64(cursorY), 0, sh-1))
				default:
					pool.Update(dt)
					return
				}
			}
		},
		Render: func() {
			ctx.Clear()
			pool.Render()

			tree.Reset()
			pool.Each(func(s *sprite.Sprite) {
				tree.Insert(s, s.Bounds())
			})
			probe := vmath.RectAt(float64(cursorX), float64(cursorY), 1, 1)
			for _, hit := range tree.Query(probe) {
				s := hit.(*sprite.Sprite)
				ctx.Save()
				ctx.Translate(s.X(), s.Y())
				ctx.SetFill("white")
				ctx.FillRect(-s.Anchor.X*s.Width, -s.Anchor.Y*s.Height, s.Width, s.Height)
				ctx.Restore()
			}

			ctx.Save()
			ctx.SetFill("gray")
			ctx.FillRect(float64(cursorX), float64(cursorY), 1, 1)
			ctx.Restore()

			status := fmt.Sprintf(" %d/%d sprites | tick %d | q quits ",
				pool.Alive(), pool.Size(), game.Ticks())
			drawText(screen, 0, 0, status)

			ctx.Show()
		},
	})

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch tev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC,
					tev.Rune() == 'q' || tev.Rune() == 'Q':
					game.Stop()
					return
				case tev.Key() == tcell.KeyUp:
					push(cmds, command{dy: -1})
				case tev.Key() == tcell.KeyDown:
					push(cmds, command{dy: 1})
				case tev.Key() == tcell.KeyLeft:
					push(cmds, command{dx: -1})
				case tev.Key() == tcell.KeyRight:
					push(cmds, command{dx: 1})
				}
			case *tcell.EventMouse:
				mx, my := tev.Position()
				push(cmds, command{abs: true, setX: mx, setY: my})
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	game.Start()
}

// push drops the command when the game is not draining fast enough
func push(cmds chan command, c command) {
	select {
	case cmds <- c:
	default:
	}
}

func drawText(screen tcell.Screen, x, y int, msg string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range msg {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
