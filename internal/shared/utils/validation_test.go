package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateToolID(t *testing.T) {
	assert.NoError(t, ValidateToolID("factors.resolve"))
	assert.NoError(t, ValidateToolID("rates.effective_annual"))

	assert.Error(t, ValidateToolID(""))
	assert.Error(t, ValidateToolID("factors/resolve"))
	assert.Error(t, ValidateToolID("values resolve"))
	assert.Error(t, ValidateToolID(strings.Repeat("a", MaxIDLength+1)))
}

func TestValidateParams(t *testing.T) {
	assert.NoError(t, ValidateParams(nil))
	assert.NoError(t, ValidateParams(map[string]interface{}{"rate": 0.1, "periods": "5"}))
	assert.NoError(t, ValidateParams(map[string]interface{}{"list": []interface{}{1, 2}}))

	deep := map[string]interface{}{"a": map[string]interface{}{"b": []interface{}{1}}}
	assert.Error(t, ValidateParams(deep))

	many := make(map[string]interface{}, MaxParamCount+1)
	for i := 0; i <= MaxParamCount; i++ {
		many[strings.Repeat("k", i+1)] = i
	}
	assert.Error(t, ValidateParams(many))
}
