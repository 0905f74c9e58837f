package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

var (
	errEmptyBody    = errors.New("el cuerpo de la solicitud está vacío")
	errTrailingData = errors.New("el cuerpo contiene datos adicionales")
)

// BindNestedOrFlat decodes the request body into obj. Bodies wrapped as
// {"<key>": {...}} are unwrapped first; anything else is decoded as is.
// Numbers are kept as json.Number so large identifiers survive intact.
func BindNestedOrFlat(c *gin.Context, key string, obj interface{}) error {
	var bodyBytes []byte
	if c.Request.Body != nil {
		bodyBytes, _ = io.ReadAll(c.Request.Body)
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return errEmptyBody
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(bodyBytes, &wrapped); err == nil {
		if inner, ok := wrapped[key]; ok {
			return decodeJSON(inner, obj)
		}
	}

	return decodeJSON(bodyBytes, obj)
}

func decodeJSON(data []byte, obj interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(obj); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errTrailingData
	}
	return nil
}
