package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusFinalizada é o rótulo que o backend usa para vendas concluídas.
const StatusFinalizada = "FINALIZADA"

// Venda representa uma transação do ponto de venda como o backend a devolve.
// Os campos opcionais são ponteiros porque a ausência deles é significativa
// para a validação de finalização.
type Venda struct {
	ID               string          `json:"id"`
	Status           *string         `json:"status,omitempty"`
	DataFinalizacao  *time.Time      `json:"dataFinalizacao,omitempty"`
	DataCancelamento *time.Time      `json:"dataCancelamento,omitempty"`
	Troco            decimal.Decimal `json:"troco"`
	Pagamentos       []Pagamento     `json:"pagamentos"`
	ProdutosLancados []ItemProduto   `json:"produtosLancados"`
}

// Pagamento é uma linha de liquidação dentro de uma venda.
type Pagamento struct {
	ID               string          `json:"id"`
	Valor            decimal.Decimal `json:"valor"`
	MeioPagamentoID  string          `json:"meioPagamentoId"`
	Cancelado        bool            `json:"cancelado"`
	DataCancelamento *time.Time      `json:"dataCancelamento,omitempty"`
}

// ItemProduto é uma linha de produto lançada na venda.
// ValorFinal já vem com descontos/acréscimos aplicados.
type ItemProduto struct {
	ProdutoID  string          `json:"produtoId"`
	Quantidade int             `json:"quantidade"`
	ValorFinal decimal.Decimal `json:"valorFinal"`
}

// Finalizada revalida localmente se a venda está de fato finalizada.
// O filtro de status da listagem não é tratado como autoritativo: o backend
// pode devolver vendas desatualizadas (consistência eventual), então a regra
// é rederivada dos campos crus:
//   - dataCancelamento presente         → rejeita
//   - dataFinalizacao ausente           → rejeita
//   - status presente e != FINALIZADA   → rejeita
func (v *Venda) Finalizada() bool {
	if v.DataCancelamento != nil {
		return false
	}
	if v.DataFinalizacao == nil {
		return false
	}
	if v.Status != nil && *v.Status != StatusFinalizada {
		return false
	}
	return true
}

// FoiCancelado indica se o pagamento deve ser excluído de qualquer relatório.
// Qualquer um dos dois sinais basta.
func (p *Pagamento) FoiCancelado() bool {
	return p.Cancelado || p.DataCancelamento != nil
}
