package server

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"polls/internal/polls"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorOnce sync.Once

func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return normalizeText(fl.Field().String()) != ""
		})
		_ = engine.RegisterValidation("polltext", func(fl validator.FieldLevel) bool {
			text := normalizeText(fl.Field().String())
			return text == "" || utf8.RuneCountInString(text) <= polls.MaxTextLength
		})
	})
}

const requiredMessage = "This field is required."

var tooLongMessage = fmt.Sprintf("Ensure this value has at most %d characters.", polls.MaxTextLength)

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}

// nonBlank normalizes texts and drops the empty ones.
func nonBlank(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		if clean := normalizeText(text); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
