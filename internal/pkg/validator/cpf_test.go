package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeCPF("529.982.247-25"))
	assert.Equal(t, "52998224725", NormalizeCPF("52998224725"))
	assert.Equal(t, "", NormalizeCPF("abc"))
}

func TestValidCPF(t *testing.T) {
	valid := []string{
		"52998224725",
		"11144477735",
	}
	for _, cpf := range valid {
		assert.True(t, ValidCPF(cpf), cpf)
	}

	invalid := []string{
		"52998224724", // wrong check digit
		"11111111111", // repdigit
		"00000000000",
		"123",          // too short
		"529982247250", // too long
	}
	for _, cpf := range invalid {
		assert.False(t, ValidCPF(cpf), cpf)
	}
}
