package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/twilio/twilio-go/twiml"
)

// writeTwiML wraps the reply text in the TwiML envelope Twilio expects.
// An empty message produces an empty <Response/> — Twilio sends nothing back
// to the user (used for suppressed duplicates).
func writeTwiML(w http.ResponseWriter, message string) {
	var verbs []twiml.Element
	if message != "" {
		verbs = append(verbs, &twiml.MessagingMessage{Body: message})
	}

	doc, err := twiml.Messages(verbs)
	if err != nil {
		slog.Error("twiml render failed", "error", err)
		http.Error(w, "response rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write([]byte(doc))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
