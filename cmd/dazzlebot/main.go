// Command dazzlebot bridges a running dazzled server to an external child
// program's stdio: it performs the player handshake using the child's
// first stdout line as the player name, then on every tick writes the
// current Overview to the child's stdin in a simple line format and reads
// back one move command from its stdout.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/net/websocket"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type player struct {
	Name     string `json:"name"`
	Points   uint64 `json:"points"`
	Position point  `json:"position"`
	ID       uint64 `json:"id"`
}

type overview struct {
	Players   []player  `json:"players"`
	Grid      [][]*uint64 `json:"grid"`
	TurnsLeft uint64    `json:"turns_left"`
	MsForTurn uint64    `json:"ms_for_turn"`
	Tokens    []point   `json:"tokens"`
	GameID    uint64    `json:"game_id"`
}

type playerInfo struct {
	Name string `json:"name"`
}

// handShake marshals to {"HandShake":{"Player":{"name":...}}}, matching
// the server's tagged-union wire format.
type handShake struct {
	Player playerInfo `json:"Player"`
}

func marshalHandShake(name string) ([]byte, error) {
	return json.Marshal(struct {
		HandShake handShake `json:"HandShake"`
	}{HandShake: handShake{Player: playerInfo{Name: name}}})
}

// marshalCommand produces {"Command":"Nothing"} or
// {"Command":{"Move":"Up"|"Down"|"Left"|"Right"}}.
func marshalCommand(cmd string) ([]byte, error) {
	if cmd == "NOTHING" {
		return json.Marshal(struct {
			Command string `json:"Command"`
		}{Command: "Nothing"})
	}
	return json.Marshal(struct {
		Command struct {
			Move string `json:"Move"`
		} `json:"Command"`
	}{Command: struct {
		Move string `json:"Move"`
	}{Move: capitalize(cmd)}})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: dazzlebot ws://host:port/subscribe <program> [args...]")
		os.Exit(1)
	}
	serverURL := os.Args[1]
	program := os.Args[2]
	programArgs := os.Args[3:]

	ws, err := websocket.Dial(serverURL, "", "http://localhost/")
	if err != nil {
		fmt.Fprintf(os.Stderr, "dazzlebot: connecting to %s: %v\n", serverURL, err)
		os.Exit(1)
	}
	defer ws.Close()

	child := exec.Command(program, programArgs...)
	child.Stderr = os.Stderr
	childStdin, err := child.StdinPipe()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dazzlebot: opening child stdin: %v\n", err)
		os.Exit(1)
	}
	childStdoutPipe, err := child.StdoutPipe()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dazzlebot: opening child stdout: %v\n", err)
		os.Exit(1)
	}
	if err := child.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "dazzlebot: starting %s: %v\n", program, err)
		os.Exit(1)
	}

	childStdout := bufio.NewReader(childStdoutPipe)

	name, err := childStdout.ReadString('\n')
	if err != nil {
		fmt.Fprintf(os.Stderr, "dazzlebot: reading player name from child: %v\n", err)
		os.Exit(1)
	}
	name = strings.TrimRight(name, "\r\n")

	handshakeData, err := marshalHandShake(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dazzlebot: marshalling handshake: %v\n", err)
		os.Exit(1)
	}
	if err := websocket.Message.Send(ws, string(handshakeData)); err != nil {
		fmt.Fprintf(os.Stderr, "dazzlebot: sending handshake: %v\n", err)
		os.Exit(1)
	}

	var handshakeReply string
	if err := websocket.Message.Receive(ws, &handshakeReply); err != nil {
		fmt.Fprintf(os.Stderr, "dazzlebot: reading handshake reply: %v\n", err)
		os.Exit(1)
	}
	if strings.Contains(handshakeReply, `"Error"`) {
		fmt.Fprintf(os.Stderr, "dazzlebot: server rejected handshake: %s\n", handshakeReply)
		os.Exit(1)
	}

	for {
		var raw string
		if err := websocket.Message.Receive(ws, &raw); err != nil {
			if err == io.EOF {
				return
			}
			fmt.Fprintf(os.Stderr, "dazzlebot: reading overview: %v\n", err)
			return
		}
		var ov overview
		if err := json.Unmarshal([]byte(raw), &ov); err != nil {
			fmt.Fprintf(os.Stderr, "dazzlebot: decoding overview: %v\n", err)
			continue
		}

		writeOverview(childStdin, ov)

		line, err := childStdout.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "dazzlebot: reading move from child: %v\n", err)
			return
		}
		move := strings.TrimSpace(line)
		if move == "QUIT" {
			return
		}

		cmdData, err := marshalCommand(move)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dazzlebot: marshalling command %q: %v\n", move, err)
			continue
		}
		if err := websocket.Message.Send(ws, string(cmdData)); err != nil {
			fmt.Fprintf(os.Stderr, "dazzlebot: sending command: %v\n", err)
			return
		}

		var ack string
		if err := websocket.Message.Receive(ws, &ack); err != nil {
			fmt.Fprintf(os.Stderr, "dazzlebot: reading command ack: %v\n", err)
			return
		}
	}
}

// writeOverview renders an Overview into the line format documented for
// the bot runner: a header line, one line per player, one line per grid
// row, then one line per token.
func writeOverview(w io.Writer, ov overview) {
	rows := len(ov.Grid)
	cols := 0
	if rows > 0 {
		cols = len(ov.Grid[0])
	}
	fmt.Fprintf(w, "%d %d %d %d %d %d\n", len(ov.Players), rows, cols, len(ov.Tokens), ov.TurnsLeft, ov.MsForTurn)
	for _, p := range ov.Players {
		fmt.Fprintf(w, "%d %s %d %d %d\n", p.ID, p.Name, p.Points, p.Position.X, p.Position.Y)
	}
	for _, row := range ov.Grid {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell == nil {
				cells[i] = "-1"
			} else {
				cells[i] = fmt.Sprintf("%d", *cell)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
	for _, t := range ov.Tokens {
		fmt.Fprintf(w, "%d %d\n", t.X, t.Y)
	}
}
