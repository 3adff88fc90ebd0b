// Package validate holds the pure input checks the resolvers run
// before touching any collaborator. Checks never short-circuit: every
// violated rule contributes one entry to the returned list.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	domerr "github.com/messagenode/messagenode/internal/domain/errors"
)

const (
	MinPasswordLength = 5
	MinTitleLength    = 4
	MinContentLength  = 10
)

// UserInput checks a registration payload.
func UserInput(email, password string) []domerr.Violation {
	var violations []domerr.Violation
	if !govalidator.IsEmail(email) {
		violations = append(violations, domerr.Violation{Field: "email", Message: "e-mail is invalid"})
	}
	if tooShort(password, MinPasswordLength) {
		violations = append(violations, domerr.Violation{Field: "password", Message: "password is too short"})
	}
	return violations
}

// PostInput checks the title and content of a post payload. The image
// reference is checked separately because only creation requires one.
func PostInput(title, content string) []domerr.Violation {
	var violations []domerr.Violation
	if tooShort(title, MinTitleLength) {
		violations = append(violations, domerr.Violation{Field: "title", Message: "title is invalid"})
	}
	if tooShort(content, MinContentLength) {
		violations = append(violations, domerr.Violation{Field: "content", Message: "content is invalid"})
	}
	return violations
}

// ImageRef checks the image reference of a new post.
func ImageRef(imageURL string) []domerr.Violation {
	if strings.TrimSpace(imageURL) == "" {
		return []domerr.Violation{{Field: "imageUrl", Message: "image is missing"}}
	}
	return nil
}

func tooShort(s string, min int) bool {
	return utf8.RuneCountInString(s) < min
}
