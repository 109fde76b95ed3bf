package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// gameView mirrors the server's game state response.
type gameView struct {
	ID                string `json:"id"`
	Day               string `json:"day"`
	Status            string `json:"status"`
	AttemptsUsed      int    `json:"attempts_used"`
	AttemptsRemaining int    `json:"attempts_remaining"`
	Guesses           []struct {
		Word    string   `json:"word"`
		Results []string `json:"results"`
	} `json:"guesses"`
	Word *string `json:"word"`
}

func main() {
	api := flag.String("api", "http://127.0.0.1:8080", "server base URL")
	token := flag.String("token", "", "bearer token (see cmd/token_gen)")
	wordsFlag := flag.String("words", "slate,crane,audio,round,pride,crisp", "comma-separated guesses")
	flag.Parse()

	if *token == "" {
		log.Fatal("-token is required")
	}

	client := &http.Client{Timeout: 5 * time.Second}

	do := func(method, path string, body any) (*gameView, int, error) {
		var buf io.Reader
		if body != nil {
			b, err := json.Marshal(body)
			if err != nil {
				return nil, 0, err
			}
			buf = bytes.NewReader(b)
		}
		req, err := http.NewRequest(method, *api+path, buf)
		if err != nil {
			return nil, 0, err
		}
		req.Header.Set("Authorization", "Bearer "+*token)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, 0, err
		}
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, resp.StatusCode, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, resp.StatusCode, fmt.Errorf("%s", strings.TrimSpace(string(raw)))
		}
		var v gameView
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, resp.StatusCode, err
		}
		return &v, resp.StatusCode, nil
	}

	view, _, err := do(http.MethodPost, "/api/v1/game/new", nil)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	log.Printf("game %s day=%s attempts_used=%d", view.ID, view.Day, view.AttemptsUsed)

	for _, w := range strings.Split(*wordsFlag, ",") {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		v, code, err := do(http.MethodPost, "/api/v1/game/"+view.ID+"/guess", map[string]string{"word": w})
		if err != nil {
			log.Printf("guess %q rejected (%d): %v", w, code, err)
			continue
		}
		last := v.Guesses[len(v.Guesses)-1]
		log.Printf("guess %q -> %v (status=%s, remaining=%d)", w, last.Results, v.Status, v.AttemptsRemaining)
		if v.Status != "in_progress" {
			if v.Word != nil {
				log.Printf("game over: %s, word was %q", v.Status, *v.Word)
			}
			break
		}
	}

	log.Println("smoke test finished")
}
