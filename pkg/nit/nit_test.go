package nit_test

import (
	"testing"

	"github.com/jhoicas/textil-erp/pkg/nit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_NITValido(t *testing.T) {
	// 900123456 → dígito de verificación 8 (módulo 11 DIAN).
	assert.NoError(t, nit.Validate("900123456-8"))
	assert.NoError(t, nit.Validate("900.123.456-8"))
	assert.NoError(t, nit.Validate("9001234568"))
}

func TestValidate_DigitoIncorrecto(t *testing.T) {
	err := nit.Validate("900123456-7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dígito de verificación inválido")
}

func TestValidate_SinDigitoDeVerificacion(t *testing.T) {
	assert.Error(t, nit.Validate("900123456"))
}

func TestValidate_MuyCorto(t *testing.T) {
	assert.Error(t, nit.Validate("12345"))
}

func TestComputeCheckDigit(t *testing.T) {
	dv, err := nit.ComputeCheckDigit("900123456")
	require.NoError(t, err)
	assert.Equal(t, byte('8'), dv)
}

func TestComputeCheckDigit_IgnoraPuntuacion(t *testing.T) {
	dv, err := nit.ComputeCheckDigit("830.053.105")
	require.NoError(t, err)
	assert.Equal(t, byte('3'), dv)
}
