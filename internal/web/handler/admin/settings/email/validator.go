package email

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var fieldLabels = map[string]string{
	"ServiceID":  "Service ID",
	"TemplateID": "Template ID",
	"PublicKey":  "Public Key",
}

// validationMessages turns validator errors into form messages.
func validationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		label, ok := fieldLabels[ve.Field()]
		if !ok {
			label = ve.Field()
		}

		switch ve.Tag() {
		case "required":
			messages = append(messages, label+" is required")
		case "min":
			messages = append(messages, label+" must have at least "+ve.Param()+" characters")
		default:
			messages = append(messages, "Field '"+label+"' failed validation tag '"+ve.Tag()+"'")
		}
	}

	return messages
}
