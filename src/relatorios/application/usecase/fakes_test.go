package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/entity"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/service"
)

// vendasFake implementa port.VendasFonte em memória para os testes dos
// casos de uso.
type vendasFake struct {
	vendas       []entity.Venda
	erroListagem error
}

func (f *vendasFake) ListarIDsFinalizadas(_ context.Context, _ string, _ service.Periodo) ([]string, error) {
	if f.erroListagem != nil {
		return nil, f.erroListagem
	}
	ids := make([]string, 0, len(f.vendas))
	for _, v := range f.vendas {
		ids = append(ids, v.ID)
	}
	return ids, nil
}

func (f *vendasFake) BuscarDetalhes(_ context.Context, _ string, ids []string) []entity.Venda {
	porID := make(map[string]entity.Venda, len(f.vendas))
	for _, v := range f.vendas {
		porID[v.ID] = v
	}
	detalhes := make([]entity.Venda, 0, len(ids))
	for _, id := range ids {
		if v, ok := porID[id]; ok {
			detalhes = append(detalhes, v)
		}
	}
	return detalhes
}

// catalogoFake implementa port.CatalogoFonte contando as chamadas por ID.
type catalogoFake struct {
	meios         map[string]entity.MeioPagamento
	produtos      map[string]string
	chamadasMeios map[string]int
	chamadasProds map[string]int
}

func newCatalogoFake() *catalogoFake {
	return &catalogoFake{
		meios:         make(map[string]entity.MeioPagamento),
		produtos:      make(map[string]string),
		chamadasMeios: make(map[string]int),
		chamadasProds: make(map[string]int),
	}
}

func (f *catalogoFake) MeioPagamentoPorID(_ context.Context, _ string, id string) (entity.MeioPagamento, error) {
	f.chamadasMeios[id]++
	meio, ok := f.meios[id]
	if !ok {
		return entity.MeioPagamento{}, errors.New("meio de pagamento não encontrado")
	}
	return meio, nil
}

func (f *catalogoFake) ProdutoPorID(_ context.Context, _ string, id string) (entity.Produto, error) {
	f.chamadasProds[id]++
	nome, ok := f.produtos[id]
	if !ok {
		return entity.Produto{}, errors.New("produto não encontrado")
	}
	return entity.Produto{ID: id, Nome: nome}, nil
}

// Auxiliares de construção de vendas finalizadas.

func ptrTempo(t time.Time) *time.Time { return &t }

func vendaFinalizada(id string, troco string, pagamentos []entity.Pagamento, itens []entity.ItemProduto) entity.Venda {
	status := entity.StatusFinalizada
	return entity.Venda{
		ID:               id,
		Status:           &status,
		DataFinalizacao:  ptrTempo(time.Now()),
		Troco:            decimal.RequireFromString(troco),
		Pagamentos:       pagamentos,
		ProdutosLancados: itens,
	}
}

func pagamento(id, valor, meioID string) entity.Pagamento {
	return entity.Pagamento{ID: id, Valor: decimal.RequireFromString(valor), MeioPagamentoID: meioID}
}
