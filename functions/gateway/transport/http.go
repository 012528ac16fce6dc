package transport

import (
	"log"
	"net/http"
)

// SendServerRes writes a JSON response. `err` is logged alongside the body
// when the status is 400 or greater; the body alone is what the client sees.
func SendServerRes(w http.ResponseWriter, body []byte, status int, err error) {
	msg := string(body)
	if status >= 400 {
		internalMsg := "ERR: " + msg
		if err != nil {
			internalMsg += " || Internal error msg: " + err.Error()
		}
		log.Println(internalMsg)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, writeErr := w.Write(body)
	if writeErr != nil {
		log.Println("ERR: Error writing response:", writeErr)
	}
}
