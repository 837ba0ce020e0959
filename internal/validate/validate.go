package validate

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// FieldError is one entry of the error envelope returned for a failed check.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// Rule checks a single body field. Rules are declared per endpoint and
// evaluated in order before the handler runs.
type Rule struct {
	Field   string
	Check   func(value interface{}) bool
	Message string
}

// Required fails when the field is absent, null, blank, or an empty array.
func Required(field, message string) Rule {
	return Rule{Field: field, Check: present, Message: message}
}

func present(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []interface{}:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	default:
		// numbers and booleans count as present
		return true
	}
}

// Fields returns middleware that parses the JSON body once, evaluates every
// rule (all failures are collected, not just the first), and aborts with 400
// before the handler when any rule fails. The body is cached so handlers can
// re-bind it into their own request structs.
func Fields(rules ...Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": []FieldError{{Msg: "Invalid JSON Body"}},
			})
			return
		}

		var failures []FieldError
		for _, rule := range rules {
			if !rule.Check(body[rule.Field]) {
				failures = append(failures, FieldError{Msg: rule.Message, Param: rule.Field})
			}
		}

		if len(failures) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": failures})
			return
		}

		c.Next()
	}
}
