package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
)

const (
	baseURL  = "http://localhost:3000/api"
	email    = "admin@demo-institute.test"
	password = "demo1234"
)

// Simplified DTOs for the script
type loginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

type createSessionResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type sendMessageRequest struct {
	ChatSessionID string `json:"chat_session_id"`
	Message       string `json:"message"`
}

type sendMessageResponse struct {
	Data struct {
		Outcome    string   `json:"outcome"`
		Reply      string   `json:"reply"`
		Missing    []string `json:"missing"`
		DocumentID string   `json:"document_id"`
	} `json:"data"`
}

var accessToken string

func main() {
	fmt.Println("=== Assistant Pipeline Simulation Client ===")

	token, err := login()
	if err != nil {
		log.Fatalf("Failed to login: %v", err)
	}
	accessToken = token
	fmt.Printf("Logged in as %s\n", email)

	sessionID, err := createSession()
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	fmt.Printf("Session Created: %s\n", sessionID)

	// Walks the full conversation: template match, candidate pick,
	// field collection, generation.
	testCases := []string{
		"I need a bonafide certificate for Ravi",
		"Ravi Kumar",
		"academic year is 2025-2026",
	}

	userLabel := color.New(color.FgCyan, color.Bold)
	assistantLabel := color.New(color.FgGreen, color.Bold)

	for _, text := range testCases {
		fmt.Println()
		userLabel.Print("USER: ")
		fmt.Println(text)

		start := time.Now()
		resp, err := sendMessage(sessionID, text)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		assistantLabel.Printf("ASSISTANT (%s, %v): ", resp.Data.Outcome, elapsed.Round(time.Millisecond))
		fmt.Println(resp.Data.Reply)
		if len(resp.Data.Missing) > 0 {
			fmt.Printf("  missing: %v\n", resp.Data.Missing)
		}
		if resp.Data.DocumentID != "" {
			fmt.Printf("  document: %s\n", resp.Data.DocumentID)
		}
	}
}

func login() (string, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})

	raw, err := doPost(baseURL+"/auth/v1/login", body)
	if err != nil {
		return "", err
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	return resp.Data.Token, nil
}

func createSession() (string, error) {
	raw, err := doPost(baseURL+"/assistant/v1/session", nil)
	if err != nil {
		return "", err
	}

	var resp createSessionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	return resp.Data.ID, nil
}

func sendMessage(sessionID, text string) (*sendMessageResponse, error) {
	body, _ := json.Marshal(sendMessageRequest{ChatSessionID: sessionID, Message: text})

	raw, err := doPost(baseURL+"/assistant/v1/message", body)
	if err != nil {
		return nil, err
	}

	var resp sendMessageResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func doPost(url string, body []byte) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("status %d: %s", res.StatusCode, string(raw))
	}
	return raw, nil
}
