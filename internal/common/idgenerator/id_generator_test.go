package idgenerator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svnhec/qoda-sub003/internal/common/idgenerator"
)

func TestGenerateID(t *testing.T) {
	t.Run("created new id with prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate("STL")
		assert.NotEmpty(t, id)
		assert.Regexp(t, regexp.MustCompile(`^STL-\d+`), id)
	})

	t.Run("created new id with joined prefixes", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate("JRN", "REV")
		assert.Regexp(t, regexp.MustCompile(`^JRN-REV-\d+`), id)
	})

	t.Run("created new id without prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate()
		assert.NotEmpty(t, id)
		assert.Regexp(t, regexp.MustCompile(`^\d+`), id)
	})

	t.Run("ids are unique", func(t *testing.T) {
		generator := idgenerator.New()
		assert.NotEqual(t, generator.Generate("FND"), generator.Generate("FND"))
	})
}
