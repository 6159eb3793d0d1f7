package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeySanitizesFilename(t *testing.T) {
	key := ObjectKey("tasks", "meu arquivo (final)!.pdf")
	assert.Regexp(t, regexp.MustCompile(`^tasks/\d+_meu_arquivo__final__\.pdf$`), key)
}

func TestObjectKeyKeepsSafeCharacters(t *testing.T) {
	key := ObjectKey("crm", "contrato_v2-final.PDF")
	assert.Regexp(t, regexp.MustCompile(`^crm/\d+_contrato_v2-final\.PDF$`), key)
}

func TestObjectKeyNoExtension(t *testing.T) {
	key := ObjectKey("general", "README")
	assert.Regexp(t, regexp.MustCompile(`^general/\d+_README$`), key)
}
