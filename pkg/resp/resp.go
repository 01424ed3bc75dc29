package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse пишет статус и тело ответа в JSON
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Println("write response error:", err)
	}
}
