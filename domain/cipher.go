package domain

type CipherMethod string

const (
	CipherCaesar  CipherMethod = "caesar"
	CipherROT13   CipherMethod = "rot13"
	CipherAtbash  CipherMethod = "atbash"
	CipherBase64  CipherMethod = "base64"
	CipherReverse CipherMethod = "reverse"
)

type CipherDirection string

const (
	Encrypt CipherDirection = "encrypt"
	Decrypt CipherDirection = "decrypt"
)

type CipherOptions struct {
	CaseSensitive bool `json:"case_sensitive"`
	IncludeSpaces bool `json:"include_spaces"`
}

type CipherInput struct {
	Text      string          `json:"text"`
	Method    CipherMethod    `json:"method"`
	Direction CipherDirection `json:"direction"`
	Shift     int             `json:"shift"`
	Options   CipherOptions   `json:"options"`
}

type CipherResult struct {
	Method    CipherMethod    `json:"method"`
	Direction CipherDirection `json:"direction"`
	Output    string          `json:"output"`
}
