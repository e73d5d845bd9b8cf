package server

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"terrafill/internal/grid"
	"terrafill/internal/maps"
	"terrafill/internal/render"
	"terrafill/internal/wang"
)

const (
	hudRows   = 2
	brushSize = 9 // side length of the region refilled by the fill action
)

// SSHServer serves an interactive fill preview: each session gets its own
// working copy of the base map and a cursor to stamp and refill with.
type SSHServer struct {
	addr    string
	hostKey string
	set     *wang.Set
	base    *maps.Map
}

// NewSSHServer creates a server bound to the given address.
func NewSSHServer(addr, hostKey string, set *wang.Set, base *maps.Map) *SSHServer {
	return &SSHServer{
		addr:    addr,
		hostKey: hostKey,
		set:     set,
		base:    base,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

type action int

const (
	actionUp action = iota
	actionDown
	actionLeft
	actionRight
	actionStamp
	actionFill
	actionReroll
	actionRedraw
	actionQuit
)

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}
	log.Printf("Session connected: %s", username)
	defer log.Printf("Session disconnected: %s", username)

	// Per-session working copy of the base map.
	ed := newEditor(s.set, s.base, time.Now().UnixNano())

	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	actionCh := make(chan action, 64)
	quitCh := make(chan struct{})

	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, a := range parseInput(buf[:n]) {
				if a == actionQuit {
					close(quitCh)
					return
				}
				select {
				case actionCh <- a:
				default:
				}
			}
		}
	}()

	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
			select {
			case actionCh <- actionRedraw:
			default:
			}
		}
	}()

	draw := func() {
		termMu.Lock()
		w, h := termW, termH
		termMu.Unlock()
		io.WriteString(sess, ed.frame(w, h))
	}

	draw()
	for {
		select {
		case <-quitCh:
			return
		case a := <-actionCh:
			ed.apply(a)
			draw()
		}
	}
}

// editor holds one session's state.
type editor struct {
	set    *wang.Set
	layer  *maps.Layer
	filler *wang.Filler
	cursor grid.Point
	name   string
	status string
}

func newEditor(set *wang.Set, base *maps.Map, seed int64) *editor {
	bounds := base.Layer.Bounds()
	w, h := base.Layer.Size()

	layer := maps.NewLayer(base.Layer.Origin(), w, h)
	for y := bounds.MinY; y <= bounds.MaxY; y++ {
		for x := bounds.MinX; x <= bounds.MaxX; x++ {
			p := grid.Point{X: x, Y: y}
			layer.SetTile(p, base.Layer.TileAt(p))
		}
	}

	return &editor{
		set:    set,
		layer:  layer,
		filler: wang.NewFiller(set, grid.Orthogonal(), rand.New(rand.NewSource(seed))),
		cursor: grid.Point{X: bounds.MinX + w/2, Y: bounds.MinY + h/2},
		name:   base.Name,
		status: "ready",
	}
}

func (ed *editor) apply(a action) {
	bounds := ed.layer.Bounds()

	move := func(dx, dy int) {
		next := ed.cursor.Add(grid.Point{X: dx, Y: dy})
		if bounds.Contains(next) {
			ed.cursor = next
		}
	}

	switch a {
	case actionUp:
		move(0, -1)
	case actionDown:
		move(0, 1)
	case actionLeft:
		move(-1, 0)
	case actionRight:
		move(1, 0)
	case actionStamp:
		ed.stamp()
	case actionFill:
		ed.fill(ed.brushRect())
	case actionReroll:
		ed.fill(bounds)
	}
}

// stamp refits the cursor cell against its current surroundings.
func (ed *editor) stamp() {
	region := grid.NewRegion(grid.NewRect(ed.cursor.X, ed.cursor.Y, 1, 1))
	scratch := maps.NewLayer(ed.cursor, 1, 1)

	tile, ok := ed.filler.FindFittingTile(ed.layer, scratch, region, ed.cursor)
	if !ok {
		ed.status = fmt.Sprintf("no tile fits %v", ed.cursor)
		return
	}
	ed.layer.SetTile(ed.cursor, tile.Ref)
	ed.status = fmt.Sprintf("stamped tile %d at %v", tile.Ref, ed.cursor)
}

// fill clears a rectangle and refills it so it reconnects with the tiles
// around it.
func (ed *editor) fill(r grid.Rect) {
	r = clampRect(r, ed.layer.Bounds())
	ed.layer.Clear(r)

	res := ed.filler.FillRegion(ed.layer, ed.layer, grid.NewRegion(r), nil)
	if n := len(res.Unplaced); n > 0 {
		ed.status = fmt.Sprintf("filled %d cells, %d unplaced", res.Placed, n)
	} else {
		ed.status = fmt.Sprintf("filled %d cells", res.Placed)
	}
}

func (ed *editor) brushRect() grid.Rect {
	half := brushSize / 2
	return grid.NewRect(ed.cursor.X-half, ed.cursor.Y-half, brushSize, brushSize)
}

func clampRect(r, bounds grid.Rect) grid.Rect {
	if r.MinX < bounds.MinX {
		r.MinX = bounds.MinX
	}
	if r.MinY < bounds.MinY {
		r.MinY = bounds.MinY
	}
	if r.MaxX > bounds.MaxX {
		r.MaxX = bounds.MaxX
	}
	if r.MaxY > bounds.MaxY {
		r.MaxY = bounds.MaxY
	}
	return r
}

// frame renders the map view plus the HUD for the given terminal size.
func (ed *editor) frame(termW, termH int) string {
	view := render.Viewport(ed.cursor, termW, termH, ed.layer.Bounds(), hudRows)

	var sb strings.Builder
	sb.WriteString(render.Frame(ed.layer, ed.set, view, ed.cursor, true))

	constraint := ed.filler.SurroundingID(ed.layer, ed.layer, grid.Region{}, ed.cursor)
	sb.WriteString(render.MoveTo(view.Height()+1, 1))
	sb.WriteString(render.Reset + render.CSI + "2K")
	fmt.Fprintf(&sb, "%s  %v  tile %d  wants %s  | %s",
		ed.name, ed.cursor, ed.layer.TileAt(ed.cursor), constraint, ed.status)
	sb.WriteString(render.MoveTo(view.Height()+2, 1))
	sb.WriteString(render.CSI + "2K")
	sb.WriteString("arrows/wasd move · space stamp · f fill · r reroll · q quit")

	return sb.String()
}

// parseInput converts raw bytes into editor actions. Handles WASD, arrow
// key escape sequences, space, F, R, Q, and Ctrl-C.
func parseInput(data []byte) []action {
	var actions []action
	i := 0
	for i < len(data) {
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				actions = append(actions, actionUp)
			case 'B':
				actions = append(actions, actionDown)
			case 'C':
				actions = append(actions, actionRight)
			case 'D':
				actions = append(actions, actionLeft)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			actions = append(actions, actionUp)
		case 's', 'S':
			actions = append(actions, actionDown)
		case 'a', 'A':
			actions = append(actions, actionLeft)
		case 'd', 'D':
			actions = append(actions, actionRight)
		case ' ':
			actions = append(actions, actionStamp)
		case 'f', 'F':
			actions = append(actions, actionFill)
		case 'r', 'R':
			actions = append(actions, actionReroll)
		case 'q', 'Q':
			actions = append(actions, actionQuit)
		case 3: // Ctrl-C
			actions = append(actions, actionQuit)
		}
		i += size
	}
	return actions
}
