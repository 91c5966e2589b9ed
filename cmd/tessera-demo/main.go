// Command tessera-demo composes a themed table and a focusable button
// row, then runs a synchronous event loop against the live terminal.
// Tab cycles focus, Enter or Space activates the focused button, q
// quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tessera-ui/tessera/pkg/backend"
	tcellbackend "github.com/tessera-ui/tessera/pkg/backend/tcell"
	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/diag"
	"github.com/tessera-ui/tessera/pkg/table"
	"github.com/tessera-ui/tessera/pkg/terminal"
	"github.com/tessera-ui/tessera/pkg/theme"
	"github.com/tessera-ui/tessera/pkg/widget"
)

// Version information - set via ldflags during build
var (
	version   = "1.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	themePath := flag.String("theme", "", "path to a YAML theme file")
	ascii := flag.Bool("ascii", false, "draw borders with seven-bit glyphs")
	logPath := flag.String("log", "", "append JSONL diagnostics to this file")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tessera-demo %s (%s, built %s)\n", version, commit, buildDate)
		return
	}

	if err := run(*themePath, *ascii, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(themePath string, ascii bool, logPath string) error {
	th := theme.Default()
	if themePath != "" {
		loaded, err := theme.Load(themePath)
		if err != nil {
			return err
		}
		th = loaded
	}
	if ascii {
		th.ASCII = true
	}
	ctx, err := th.Context()
	if err != nil {
		return err
	}

	var rec *diag.Recorder
	if logPath != "" {
		rec, err = diag.NewFile(logPath)
		if err != nil {
			return err
		}
		defer rec.Close()
	}
	stats := diag.NewFrameStats()

	b, err := tcellbackend.New()
	if err != nil {
		return fmt.Errorf("allocating terminal: %w", err)
	}
	b.SetRecorder(rec)
	if err := b.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer b.Fini()

	dash, err := newDashboard(th, b.Beep)
	if err != nil {
		return err
	}
	group := dash.FocusGroup()
	group.CurrentEntry().GainFocus()

	for {
		start := time.Now()
		backend.RenderFrame(b, dash, ctx)
		w, h := b.Size()
		stats.RecordFrame(time.Since(start), canvas.Size{Width: w, Height: h})

		ev := b.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case terminal.KeyEvent:
			if isQuitKey(e) {
				rec.Info(diag.CategoryRender, "frame_stats", "", stats.Stats())
				return nil
			}
			consumed := routeKey(group, e)
			stats.RecordKey(consumed)
			if !consumed {
				rec.Debug(diag.CategoryInput, "key_ignored", e.String(), nil)
			}
		case terminal.ResizeEvent:
			b.Sync()
		case terminal.InterruptEvent:
			return nil
		}
	}
}

// routeKey sends one key through the focus cycle: BackTab retreats,
// everything else follows the group's Tab-advances-else-delegate rule.
func routeKey(group *widget.FocusGroup, ev terminal.KeyEvent) bool {
	if ev.Key == terminal.KeyBackTab {
		group.FocusPrevious()
		return true
	}
	return group.HandleKey(ev)
}

func isQuitKey(ev terminal.KeyEvent) bool {
	if ev.Key != terminal.KeyRune {
		return false
	}
	if ev.Rune == 'q' && !ev.Ctrl && !ev.Alt {
		return true
	}
	return ev.Rune == 'c' && ev.Ctrl
}

// dashboard is the demo's root widget: a title, a component table, a
// button row and a status line, stacked with a blank line between
// parts.
type dashboard struct {
	widget.Base

	title   *widget.Text
	tbl     *table.Table
	buttons []*widget.Handle[string]
	status  *widget.Text

	group  *widget.FocusGroup
	align  widget.Alignment
	nextID int
}

func newDashboard(th *theme.Theme, beep func()) (*dashboard, error) {
	d := &dashboard{
		title:  widget.NewText("tessera demo | tab cycles focus, enter activates, q quits"),
		status: widget.NewText("ready"),
		group:  widget.NewFocusGroup(),
		nextID: 1,
	}
	d.title.SetStyle(th.AccentStyle())

	specs := []table.ColumnSpec{
		table.Column(table.ColFixed(4)),
		table.Column(table.ColAuto()),
		table.Column(table.ColAuto()).WithAlignment(widget.AlignRight),
	}
	d.tbl = table.New(specs, table.BorderFull)
	d.tbl.SetBorderAttr(th.BorderStyle())
	d.tbl.SetDefaultCellPadding(widget.PadHorizontal(1))

	if _, err := d.tbl.AddHeadingRow(th.HeadingStyle(), "ID", "COMPONENT", "STATUS"); err != nil {
		return nil, err
	}
	for _, name := range []string{"canvas", "widget", "table", "backend"} {
		if err := d.addComponentRow(name, "stable"); err != nil {
			return nil, err
		}
	}

	d.newButton("add row", func() {
		if err := d.addComponentRow("component", "new"); err != nil {
			d.status.SetText(err.Error())
			return
		}
		d.status.SetText(fmt.Sprintf("%d rows", d.tbl.RowCount()))
	})
	d.newButton("align", func() {
		switch d.align {
		case widget.AlignLeft:
			d.align = widget.AlignCenter
		case widget.AlignCenter:
			d.align = widget.AlignRight
		default:
			d.align = widget.AlignLeft
		}
		d.tbl.SetDefaultCellAlignment(d.align)
		d.status.SetText("new rows align " + d.align.String())
	})
	d.newButton("beep", func() {
		beep()
		d.status.SetText("beep")
	})

	d.SetRenderFunc(d.render)
	d.SetPositionFunc(d.place)
	d.SetGrowth(true, false)
	d.SetFocusGroupFunc(func() *widget.FocusGroup { return d.group })
	return d, nil
}

func (d *dashboard) addComponentRow(name, status string) error {
	id := fmt.Sprintf("%02d", d.nextID)
	err := d.tbl.AddRow(
		table.NewCell(widget.NewText(id)),
		table.NewCell(widget.NewText(name)),
		table.NewCell(widget.NewText(status)),
	)
	if err != nil {
		return err
	}
	d.nextID++
	return nil
}

// newButton registers a focusable one-line button that activates on
// Enter or Space and reports focus changes on the status line.
func (d *dashboard) newButton(label string, press func()) {
	b := widget.New(label)
	b.SetRenderFunc(func(avail canvas.Size, ctx widget.Context) canvas.Image {
		st := ctx.Attr(canvas.Style{})
		if b.Focused() {
			st = ctx.FocusedAttr(canvas.Style{})
		}
		return canvas.Text("[ "+b.State()+" ]", st)
	})
	b.OnKey(func(ev terminal.KeyEvent) bool {
		if ev.Key == terminal.KeyEnter || (ev.Key == terminal.KeyRune && ev.Rune == ' ') {
			press()
			return true
		}
		return false
	})
	b.OnGainFocus(func() {
		d.status.SetText("focus: " + b.State())
	})
	d.buttons = append(d.buttons, b)
	d.group.Add(b)
}

func (d *dashboard) render(avail canvas.Size, ctx widget.Context) canvas.Image {
	blank := canvas.Fill(' ', 1, 1, ctx.Attr(canvas.Style{}))
	return canvas.VCat(
		d.title.Render(avail, ctx),
		blank,
		d.tbl.Render(avail, ctx),
		blank,
		d.renderButtons(avail, ctx),
		blank,
		d.status.Render(avail, ctx),
	)
}

func (d *dashboard) renderButtons(avail canvas.Size, ctx widget.Context) canvas.Image {
	gap := canvas.Fill(' ', 2, 1, ctx.Attr(canvas.Style{}))
	var row []canvas.Image
	for i, b := range d.buttons {
		if i > 0 {
			row = append(row, gap)
		}
		row = append(row, b.Render(avail, ctx))
	}
	return canvas.HCat(row...)
}

// place mirrors render's stacking: each part lands one blank line
// below the previous one, buttons two cells apart.
func (d *dashboard) place(origin canvas.Position) {
	y := origin.Y
	d.title.SetPosition(canvas.Position{X: origin.X, Y: y})
	y += d.title.Size().Height + 1

	d.tbl.SetPosition(canvas.Position{X: origin.X, Y: y})
	y += d.tbl.Size().Height + 1

	x := origin.X
	rowHeight := 1
	for _, b := range d.buttons {
		b.SetPosition(canvas.Position{X: x, Y: y})
		x += b.Size().Width + 2
		if h := b.Size().Height; h > rowHeight {
			rowHeight = h
		}
	}
	y += rowHeight + 1

	d.status.SetPosition(canvas.Position{X: origin.X, Y: y})
}
