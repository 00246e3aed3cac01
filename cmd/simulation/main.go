package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Scripted client that walks the interview socket through a full
// technical round: start, coding problem, submission, evaluation, end.
// Run against a local server with the sandbox worker up.

var (
	cyan   = color.New(color.FgCyan).SprintfFunc()
	green  = color.New(color.FgGreen).SprintfFunc()
	yellow = color.New(color.FgYellow).SprintfFunc()
	red    = color.New(color.FgRed).SprintfFunc()
)

const submission = `def two_sum(nums, target):
    seen = {}
    for i, n in enumerate(nums):
        if target - n in seen:
            return [seen[target - n], i]
        seen[n] = i
    return []
`

func main() {
	baseURL := os.Getenv("SIMULATION_WS_URL")
	if baseURL == "" {
		baseURL = "ws://localhost:3000/ws/interview"
	}

	sessionID := uuid.New().String()
	url := fmt.Sprintf("%s?session_id=%s", baseURL, sessionID)
	if token := os.Getenv("SIMULATION_TOKEN"); token != "" {
		url += "&token=" + token
	}

	fmt.Println(cyan("=== Interview Protocol Simulation ==="))
	fmt.Println(cyan("Session: %s", sessionID))

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	// Server greets with a ready status before accepting anything.
	waitFor(conn, "status")

	send(conn, map[string]interface{}{
		"type":           "start_interview",
		"interview_mode": "technical",
		"target_role":    "Backend Engineer",
		"difficulty":     "medium",
	})
	waitFor(conn, "session_started")
	waitFor(conn, "audio") // opening question speech

	send(conn, map[string]interface{}{"type": "playback_complete"})
	waitFor(conn, "status")

	send(conn, map[string]interface{}{"type": "request_problem"})
	problem := waitFor(conn, "problem")
	fmt.Println(yellow("PROBLEM: %s", string(problem)))

	start := time.Now()
	send(conn, map[string]interface{}{
		"type":     "code_submission",
		"code":     submission,
		"language": "python",
	})
	verdict := waitFor(conn, "code_evaluation")
	fmt.Println(green("VERDICT (%v): %s", time.Since(start).Round(time.Millisecond), string(verdict)))

	send(conn, map[string]interface{}{"type": "request_evaluation"})
	eval := waitFor(conn, "evaluation")
	fmt.Println(green("EVALUATION: %s", string(eval)))

	send(conn, map[string]interface{}{"type": "end_session"})
	waitFor(conn, "session_ended")
	fmt.Println(cyan("Session ended cleanly."))
}

func send(conn *websocket.Conn, msg map[string]interface{}) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Fatalf("Write failed: %v", err)
	}
}

// waitFor reads frames until one matches the wanted type, printing
// everything else as it streams past. Errors from the server are fatal
// unless flagged recoverable.
func waitFor(conn *websocket.Conn, wanted string) json.RawMessage {
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	for {
		var frame map[string]json.RawMessage
		if err := conn.ReadJSON(&frame); err != nil {
			log.Fatalf("Read failed waiting for %q: %v", wanted, err)
		}

		var msgType string
		json.Unmarshal(frame["type"], &msgType)

		switch msgType {
		case "error":
			var recoverable bool
			json.Unmarshal(frame["recoverable"], &recoverable)
			raw, _ := json.Marshal(frame)
			if !recoverable {
				log.Fatalf("Fatal server error: %s", raw)
			}
			fmt.Println(red("ERROR: %s", raw))
		case "transcript":
			var text string
			json.Unmarshal(frame["text"], &text)
			fmt.Println(yellow("  %s: %s", msgType, text))
		case "transcript_delta":
			var delta string
			json.Unmarshal(frame["delta"], &delta)
			fmt.Println(yellow("  %s: %s", msgType, delta))
		case "audio_chunk":
			// Noise while streaming, skip.
		default:
			if msgType != wanted {
				fmt.Println(cyan("  [%s]", msgType))
			}
		}

		if msgType == wanted {
			raw, _ := json.Marshal(frame)
			return raw
		}
	}
}
