package booking

// Valores is the financial snapshot written with a booking.
type Valores struct {
	NumeroPessoas      int
	ValorTotal         float64
	PercentualComissao float64
	ValorComissao      float64
}

// ComputeValores prices a booking: total = price × party size and
// commission = total × percent / 100. Party sizes below one count as one.
func ComputeValores(preco float64, pessoas int, percentual float64) Valores {
	if pessoas < 1 {
		pessoas = 1
	}
	total := preco * float64(pessoas)
	return Valores{
		NumeroPessoas:      pessoas,
		ValorTotal:         total,
		PercentualComissao: percentual,
		ValorComissao:      total * percentual / 100,
	}
}

// ApplyDiscount returns value reduced by percent.
func ApplyDiscount(value, percent float64) float64 {
	if percent <= 0 {
		return value
	}
	return value * (1 - percent/100)
}
