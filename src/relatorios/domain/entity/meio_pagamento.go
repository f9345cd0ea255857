package entity

import "strings"

// NomeDesconhecido é o rótulo sentinela usado quando uma consulta de
// metadados falha. A agregação continua; só a etiqueta fica degradada.
const NomeDesconhecido = "Desconhecido"

// MeioPagamento é o cadastro de um meio de pagamento, resolvido uma única
// vez por execução de relatório.
type MeioPagamento struct {
	ID                   string `json:"id"`
	Nome                 string `json:"nome"`
	FormaPagamentoFiscal string `json:"formaPagamentoFiscal,omitempty"`
}

// Produto é o cadastro mínimo de um produto (só precisamos do nome).
type Produto struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// EhDinheiro identifica meios de pagamento em espécie. O troco só pode ser
// abatido de pagamentos em dinheiro, então a comparação olha tanto o nome
// quanto a forma de pagamento fiscal, sem diferenciar maiúsculas.
func (m MeioPagamento) EhDinheiro() bool {
	if strings.Contains(strings.ToLower(m.Nome), "dinheiro") {
		return true
	}
	return strings.Contains(strings.ToLower(m.FormaPagamentoFiscal), "dinheiro")
}
