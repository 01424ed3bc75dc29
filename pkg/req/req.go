package req

import (
	"encoding/json"
	"io"
)

// Decode читает JSON тело запроса в T. Неизвестные поля считаются ошибкой
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}
