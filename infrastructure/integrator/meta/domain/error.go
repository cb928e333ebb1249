package metadomain

import (
	"slices"
	"strings"
)

// Token de acesso expirado ou revogado
const codeTokenExpired = 190

// ErrorResponse é o envelope {"error": {...}} da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message        string `json:"message"`
	Type           string `json:"type"`
	Code           int    `json:"code"`
	ErrorSubcode   int    `json:"error_subcode,omitempty"`
	FBTraceID      string `json:"fbtrace_id"`
	ErrorUserTitle string `json:"error_user_title,omitempty"`
	ErrorUserMsg   string `json:"error_user_msg,omitempty"`
}

// Empty indica corpo que decodificou mas não trouxe nada do envelope
func (e ErrorResponse) Empty() bool {
	return e.Error.Message == "" && e.Error.Code == 0
}

// IsRateLimited compara com os códigos de META_RATE_LIMIT_CODES (padrão 4 e 17)
func (e ErrorResponse) IsRateLimited(codes []int) bool {
	return slices.Contains(codes, e.Error.Code)
}

func (e ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == codeTokenExpired
}

// Description junta a mensagem técnica com a voltada ao usuário, quando existir
func (e ErrorResponse) Description() string {
	parts := []string{}
	if e.Error.Type != "" {
		parts = append(parts, e.Error.Type)
	}
	if e.Error.Message != "" {
		parts = append(parts, e.Error.Message)
	}
	if e.Error.ErrorUserMsg != "" && e.Error.ErrorUserMsg != e.Error.Message {
		parts = append(parts, e.Error.ErrorUserMsg)
	}
	return strings.Join(parts, ": ")
}
