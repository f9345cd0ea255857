package port

import (
	"context"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/entity"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/service"
)

// VendasFonte abstrai o backend de vendas para os casos de uso de relatório.
type VendasFonte interface {
	// ListarIDsFinalizadas percorre a listagem paginada até o fim e devolve
	// todos os IDs de vendas finalizadas no período. Qualquer página com erro
	// aborta a listagem inteira: um conjunto incompleto de IDs subnotificaria
	// o faturamento em silêncio.
	ListarIDsFinalizadas(ctx context.Context, token string, periodo service.Periodo) ([]string, error)

	// BuscarDetalhes resolve os registros completos das vendas. Falhas
	// individuais são registradas e a venda é omitida do resultado; uma venda
	// ilegível não derruba o relatório do período.
	BuscarDetalhes(ctx context.Context, token string, ids []string) []entity.Venda
}

// CatalogoFonte resolve metadados de cadastro por ID.
type CatalogoFonte interface {
	MeioPagamentoPorID(ctx context.Context, token, id string) (entity.MeioPagamento, error)
	ProdutoPorID(ctx context.Context, token, id string) (entity.Produto, error)
}
