package api

import (
	"encoding/json"
	"net/url"

	"github.com/gin-gonic/gin"
)

// decodeError is a body that could not be decoded per its Content-Type
type decodeError struct {
	msg string
}

func (e *decodeError) Error() string {
	return e.msg
}

// decodePayload turns a JSON object or a form-encoded body into one flat
// key/value map so validation does not depend on the encoding. Form fields
// with several values keep the first.
func decodePayload(contentType string, body []byte) (map[string]interface{}, error) {
	switch contentType {
	case gin.MIMEJSON:
		var decoded interface{}
		if err := json.Unmarshal(body, &decoded); err != nil {
			return nil, &decodeError{msg: err.Error()}
		}
		fields, ok := decoded.(map[string]interface{})
		if !ok {
			return nil, &decodeError{msg: "request body must be a JSON object"}
		}
		return fields, nil

	case gin.MIMEPOSTForm:
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, &decodeError{msg: err.Error()}
		}
		fields := make(map[string]interface{}, len(values))
		for key, vals := range values {
			if len(vals) > 0 {
				fields[key] = vals[0]
			}
		}
		return fields, nil

	default:
		return nil, &decodeError{msg: "Unsupported Content-Type"}
	}
}
