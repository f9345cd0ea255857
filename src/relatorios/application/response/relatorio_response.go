package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormaPagamentoResumo é o faturamento líquido consolidado de um meio de
// pagamento no período.
type FormaPagamentoResumo struct {
	MeioPagamento string          `json:"meioPagamento"`
	TotalLiquido  decimal.Decimal `json:"totalLiquido"`
	Transacoes    int             `json:"transacoes"`
	Percentual    decimal.Decimal `json:"percentual"`
}

// RelatorioPagamentosResponse é a resposta do relatório por meio de
// pagamento, ordenada por faturamento líquido decrescente.
type RelatorioPagamentosResponse struct {
	GeradoEm       time.Time              `json:"geradoEm"`
	PeriodoInicial *time.Time             `json:"periodoInicial,omitempty"`
	PeriodoFinal   *time.Time             `json:"periodoFinal,omitempty"`
	TotalLiquido   decimal.Decimal        `json:"totalLiquido"`
	Formas         []FormaPagamentoResumo `json:"formas"`
}

// ProdutoRanking é uma posição do ranking de produtos mais vendidos.
type ProdutoRanking struct {
	Posicao      int             `json:"posicao"`
	Produto      string          `json:"produto"`
	Quantidade   int             `json:"quantidade"`
	TotalVendido decimal.Decimal `json:"totalVendido"`
}

// RelatorioProdutosResponse é a resposta do ranking de produtos, ordenada
// por quantidade decrescente e truncada no limite pedido.
type RelatorioProdutosResponse struct {
	GeradoEm       time.Time        `json:"geradoEm"`
	PeriodoInicial *time.Time       `json:"periodoInicial,omitempty"`
	PeriodoFinal   *time.Time       `json:"periodoFinal,omitempty"`
	Produtos       []ProdutoRanking `json:"produtos"`
}
