package service

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"calculator-api/domain"
)

const alphabetSize = 26

// ApplyCipher runs the selected transform in the requested direction.
func ApplyCipher(input domain.CipherInput) (domain.CipherResult, error) {
	if input.Text == "" {
		return domain.CipherResult{}, invalid("text is empty")
	}
	if utf8.RuneCountInString(input.Text) > MaxTextLength {
		return domain.CipherResult{}, invalid("text exceeds %d characters", MaxTextLength)
	}

	direction := input.Direction
	switch direction {
	case "":
		direction = domain.Encrypt
	case domain.Encrypt, domain.Decrypt:
	default:
		return domain.CipherResult{}, invalid("unknown direction %q", input.Direction)
	}

	var (
		out string
		err error
	)
	switch input.Method {
	case domain.CipherCaesar:
		shift := input.Shift
		if direction == domain.Decrypt {
			shift = -shift
		}
		out = Caesar(input.Text, shift, input.Options)
	case domain.CipherROT13:
		out = Caesar(input.Text, 13, input.Options)
	case domain.CipherAtbash:
		out = Atbash(input.Text)
	case domain.CipherBase64:
		if direction == domain.Decrypt {
			out, err = Base64Decode(input.Text)
		} else {
			out = Base64Encode(input.Text)
		}
	case domain.CipherReverse:
		out = Reverse(input.Text)
	default:
		return domain.CipherResult{}, invalid("unknown cipher method %q", input.Method)
	}
	if err != nil {
		return domain.CipherResult{}, err
	}

	return domain.CipherResult{
		Method:    input.Method,
		Direction: direction,
		Output:    out,
	}, nil
}

// Caesar shifts letters by shift positions modulo 26. Without CaseSensitive the
// text is lowercased first; without IncludeSpaces non-letters are dropped.
func Caesar(text string, shift int, opts domain.CipherOptions) string {
	if !opts.CaseSensitive {
		text = strings.ToLower(text)
	}
	s := rune(((shift % alphabetSize) + alphabetSize) % alphabetSize)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'+s)%alphabetSize)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'+s)%alphabetSize)
		case opts.IncludeSpaces:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Atbash mirrors each letter across the alphabet (A↔Z, a↔z).
func Atbash(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'z' - (r - 'a')
		case r >= 'A' && r <= 'Z':
			return 'Z' - (r - 'A')
		default:
			return r
		}
	}, text)
}

func Base64Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Base64Decode decodes standard base64 and requires the payload to be UTF-8.
func Base64Decode(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64: %v", ErrMalformedEncoding, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: decoded bytes are not valid UTF-8", ErrMalformedEncoding)
	}
	return string(data), nil
}

func Reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
