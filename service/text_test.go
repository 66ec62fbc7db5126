package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calculator-api/domain"
)

func TestConvertCase(t *testing.T) {
	result, err := ConvertCase(domain.CaseConversionInput{Text: "hello world"})
	require.NoError(t, err)

	assert.Equal(t, "HELLO WORLD", result.Uppercase)
	assert.Equal(t, "hello world", result.Lowercase)
	assert.Equal(t, "Hello World", result.TitleCase)
	assert.Equal(t, "Hello world", result.SentenceCase)
	assert.Equal(t, "helloWorld", result.CamelCase)
	assert.Equal(t, "HelloWorld", result.PascalCase)
	assert.Equal(t, "hello_world", result.SnakeCase)
	assert.Equal(t, "hello-world", result.KebabCase)
	assert.Equal(t, "hElLo wOrLd", result.Alternating)
	assert.Equal(t, "HELLO WORLD", result.Inverse)
}

func TestConvertCase_Sentences(t *testing.T) {
	result, err := ConvertCase(domain.CaseConversionInput{Text: "hello. HOW are you? fine!"})
	require.NoError(t, err)

	assert.Equal(t, "Hello. How are you? Fine!", result.SentenceCase)
	assert.Equal(t, "Hello. How Are You? Fine!", result.TitleCase)
}

func TestConvertCase_ProgrammingCasesDropPunctuation(t *testing.T) {
	result, err := ConvertCase(domain.CaseConversionInput{Text: "  Hello,   World! foo-bar "})
	require.NoError(t, err)

	assert.Equal(t, "helloWorldFoobar", result.CamelCase)
	assert.Equal(t, "HelloWorldFoobar", result.PascalCase)
	assert.Equal(t, "hello_world_foobar", result.SnakeCase)
	assert.Equal(t, "hello-world-foobar", result.KebabCase)
}

func TestConvertCase_NormalizesToNFC(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single "é".
	result, err := ConvertCase(domain.CaseConversionInput{Text: "cafe\u0301"})
	require.NoError(t, err)

	assert.Equal(t, "CAF\u00c9", result.Uppercase)
	assert.Equal(t, "caf\u00e9", result.Lowercase)
	assert.Equal(t, "Caf\u00e9", result.TitleCase)
}

func TestConvertCase_InvalidInput(t *testing.T) {
	_, err := ConvertCase(domain.CaseConversionInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ConvertCase(domain.CaseConversionInput{Text: strings.Repeat("a", MaxTextLength+1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInverseCase(t *testing.T) {
	assert.Equal(t, "hELLO wORLD 123", InverseCase("Hello World 123"))
	assert.Equal(t, "Hello World 123", InverseCase(InverseCase("Hello World 123")))
}

func TestCaesar(t *testing.T) {
	assert.Equal(t, "def", Caesar("abc", 3, domain.CipherOptions{}))
	assert.Equal(t, "abc", Caesar("xyz", 3, domain.CipherOptions{}))
	assert.Equal(t, "xyz", Caesar("abc", -3, domain.CipherOptions{}))

	// Default options lowercase and drop anything that is not a letter.
	assert.Equal(t, "khoorzruog", Caesar("Hello, World!", 3, domain.CipherOptions{}))

	opts := domain.CipherOptions{CaseSensitive: true, IncludeSpaces: true}
	encrypted := Caesar("Hello, World!", 3, opts)
	assert.Equal(t, "Khoor, Zruog!", encrypted)
	assert.Equal(t, "Hello, World!", Caesar(encrypted, -3, opts))
	assert.Equal(t, "Hello, World!", Caesar("Hello, World!", 26, opts))
}

func TestAtbash(t *testing.T) {
	assert.Equal(t, "zyx", Atbash("abc"))
	assert.Equal(t, "Svool, Dliow!", Atbash("Hello, World!"))
	assert.Equal(t, "Hello, World!", Atbash(Atbash("Hello, World!")))
}

func TestBase64(t *testing.T) {
	assert.Equal(t, "SGVsbG8=", Base64Encode("Hello"))

	decoded, err := Base64Decode("SGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "Hello", decoded)

	text := "héllo wörld ✓"
	decoded, err = Base64Decode(Base64Encode(text))
	require.NoError(t, err)
	assert.Equal(t, text, decoded)

	_, err = Base64Decode("not base64!!")
	assert.ErrorIs(t, err, ErrMalformedEncoding)

	// 0xff is not valid UTF-8.
	_, err = Base64Decode("/w==")
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "olléh", Reverse("héllo"))
	assert.Equal(t, "", Reverse(""))
}

func TestApplyCipher(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CipherInput
		want  string
	}{
		{"caesar encrypt", domain.CipherInput{Text: "abc", Method: domain.CipherCaesar, Shift: 3}, "def"},
		{"caesar decrypt", domain.CipherInput{Text: "def", Method: domain.CipherCaesar, Shift: 3, Direction: domain.Decrypt}, "abc"},
		{"rot13", domain.CipherInput{Text: "hello", Method: domain.CipherROT13}, "uryyb"},
		{"rot13 decrypt", domain.CipherInput{Text: "uryyb", Method: domain.CipherROT13, Direction: domain.Decrypt}, "hello"},
		{"atbash", domain.CipherInput{Text: "abc", Method: domain.CipherAtbash}, "zyx"},
		{"base64 encrypt", domain.CipherInput{Text: "Hello", Method: domain.CipherBase64}, "SGVsbG8="},
		{"base64 decrypt", domain.CipherInput{Text: "SGVsbG8=", Method: domain.CipherBase64, Direction: domain.Decrypt}, "Hello"},
		{"reverse", domain.CipherInput{Text: "abc", Method: domain.CipherReverse}, "cba"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ApplyCipher(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Output)
			assert.Equal(t, tt.input.Method, result.Method)
		})
	}
}

func TestApplyCipher_Errors(t *testing.T) {
	_, err := ApplyCipher(domain.CipherInput{Method: domain.CipherCaesar})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ApplyCipher(domain.CipherInput{Text: "abc", Method: "vigenere"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ApplyCipher(domain.CipherInput{Text: "abc", Method: domain.CipherCaesar, Direction: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ApplyCipher(domain.CipherInput{Text: "%%%", Method: domain.CipherBase64, Direction: domain.Decrypt})
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestApplyCipher_DefaultsToEncrypt(t *testing.T) {
	result, err := ApplyCipher(domain.CipherInput{Text: "abc", Method: domain.CipherReverse})
	require.NoError(t, err)
	assert.Equal(t, domain.Encrypt, result.Direction)
}
