package query

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reflectTypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

func TestParsePath(t *testing.T) {
	fp, err := ParsePath("Country.Name")
	require.NoError(t, err)
	assert.Equal(t, FieldPath{"Country", "Name"}, fp)
	assert.Equal(t, "Country.Name", fp.String())

	for _, bad := range []string{"", ".Name", "Country.", "Country..Name", "1Name", "Na-me"} {
		_, err := ParsePath(bad)
		assert.Error(t, err, bad)
	}
}

type embeddedBase struct {
	Code string
}

type withEmbed struct {
	embeddedBase
	Label string
}

func TestCompileAccessor(t *testing.T) {
	p := testPeople()[0]

	name, err := CompileAccessor[testPerson]("Country.Name")
	require.NoError(t, err)
	assert.Equal(t, "Spain", name(p))

	// Un puntero nil en la ruta produce nil, no un pánico.
	assert.Nil(t, name(testPeople()[3]))

	ptr, err := CompileAccessor[*testPerson]("First")
	require.NoError(t, err)
	assert.Equal(t, "Lucia", ptr(&p))
	assert.Nil(t, ptr(nil))

	code, err := CompileAccessor[withEmbed]("Code")
	require.NoError(t, err)
	assert.Equal(t, "X1", code(withEmbed{embeddedBase: embeddedBase{Code: "X1"}}))
}

func TestCompileAccessor_Errors(t *testing.T) {
	for _, path := range []string{"Missing", "Country.Missing", "First.Length", "note"} {
		_, err := CompileAccessor[testPersonView](path)
		assert.Error(t, err, path)
	}

	_, err := CompileAccessors[testPerson]("ID", "Nope")
	assert.Error(t, err)
}
