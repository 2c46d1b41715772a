package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const (
	menuText        = "Commands: (N)ew game \t(M)ove \t(Q)uit \n"
	promptCommand   = "Type here: "
	promptFrom      = "Choose piece to be moved. (example: A1 or b2): "
	promptTo        = "Move to: "
	promptPromotion = "Promote to (Q, R, N, B): "
)

// interactive is the N/M/Q command loop.
type interactive struct {
	s       *session.Session
	tw      *render.TextWriter
	in      *bufio.Scanner
	out     io.Writer
	pending []string
}

func newInteractive(s *session.Session, tw *render.TextWriter, in io.Reader, out io.Writer) *interactive {
	return &interactive{s: s, tw: tw, in: bufio.NewScanner(in), out: out}
}

// loop reads commands until Q or the end of input.
func (ui *interactive) loop() error {
	fmt.Fprint(ui.out, render.Logo)
	for {
		ui.flush()
		fmt.Fprint(ui.out, menuText)

		line, ok := ui.prompt(promptCommand)
		if !ok {
			return ui.in.Err()
		}
		if len(line) != 1 {
			fmt.Fprint(ui.out, "Invalid option. Type one letter only\n\n")
			continue
		}

		switch line[0] {
		case 'N', 'n':
			if err := ui.s.NewGame(); err != nil {
				return err
			}
			if err := ui.tw.WriteGame(ui.s.Game()); err != nil {
				return err
			}
		case 'M', 'm':
			if err := ui.move(); err != nil {
				return err
			}
		case 'Q', 'q':
			return nil
		default:
			fmt.Fprint(ui.out, "Option does not exist\n\n")
		}
	}
}

// move asks for one move. Rejected input only queues messages; the returned
// error is for broken output or input.
func (ui *interactive) move() error {
	if ui.s.CanMove() != nil {
		return nil
	}

	line, ok := ui.prompt(promptFrom)
	if !ok {
		return ui.in.Err()
	}
	from, err := ui.s.Select(line)
	if err != nil {
		return nil
	}

	if line, ok = ui.prompt(promptTo); !ok {
		return ui.in.Err()
	}
	to, promote, err := ui.s.Target(from, line)
	if err != nil {
		return nil
	}

	promotion := chess.Empty
	if promote {
		if line, ok = ui.prompt(promptPromotion); !ok {
			return ui.in.Err()
		}
		if promotion, err = ui.s.Promotion(line); err != nil {
			return nil
		}
	}

	report, err := ui.s.Move(from, to, promotion)
	ui.pending = append(ui.pending, report.Messages...)
	if err != nil {
		return nil
	}
	return ui.tw.WriteGame(ui.s.Game())
}

func (ui *interactive) prompt(text string) (string, bool) {
	fmt.Fprint(ui.out, text)
	if !ui.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(ui.in.Text()), true
}

// flush prints the messages queued since the last command.
func (ui *interactive) flush() {
	msgs := append(ui.pending, ui.s.Messages()...)
	ui.pending = nil
	for _, msg := range msgs {
		fmt.Fprintln(ui.out, msg)
	}
	if len(msgs) > 0 {
		fmt.Fprintln(ui.out)
	}
}
