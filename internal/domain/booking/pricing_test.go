package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeValores(t *testing.T) {
	v := ComputeValores(100, 2, 30)

	assert.Equal(t, 2, v.NumeroPessoas)
	assert.Equal(t, 200.0, v.ValorTotal)
	assert.Equal(t, 60.0, v.ValorComissao)
	assert.Equal(t, v.ValorTotal*v.PercentualComissao/100, v.ValorComissao)
}

func TestComputeValoresClampsPartySize(t *testing.T) {
	for _, n := range []int{0, -3} {
		v := ComputeValores(150, n, 30)
		assert.Equal(t, 1, v.NumeroPessoas)
		assert.Equal(t, 150.0, v.ValorTotal)
		assert.Equal(t, 45.0, v.ValorComissao)
	}
}

func TestApplyDiscount(t *testing.T) {
	assert.InDelta(t, 190.0, ApplyDiscount(200, 5), 0.0001)
	assert.Equal(t, 200.0, ApplyDiscount(200, 0))
}
