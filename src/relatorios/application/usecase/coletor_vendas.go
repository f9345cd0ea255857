package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/entity"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/port"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/service"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/infrastructure/metrics"
)

// coletarVendasFinalizadas é o trecho comum dos dois relatórios: lista todos
// os IDs do período, busca os detalhes e revalida a finalização venda a
// venda. A falha da listagem é fatal (sem conjunto completo de IDs não há
// relatório confiável); o resto degrada com warning.
func coletarVendasFinalizadas(
	ctx context.Context,
	log zerolog.Logger,
	fonte port.VendasFonte,
	token string,
	periodo service.Periodo,
) ([]entity.Venda, error) {
	ids, err := fonte.ListarIDsFinalizadas(ctx, token, periodo)
	if err != nil {
		return nil, fmt.Errorf("error listing finalized sales: %w", err)
	}

	detalhes := fonte.BuscarDetalhes(ctx, token, ids)

	// Revalidação local: o filtro de status da listagem não é autoritativo.
	// Rejeições são contadas e logadas para dar visibilidade a drift do
	// backend, nunca descartadas em silêncio.
	validas := make([]entity.Venda, 0, len(detalhes))
	rejeitadas := 0
	for _, venda := range detalhes {
		if !venda.Finalizada() {
			log.Warn().Str("venda_id", venda.ID).
				Msg("venda listada como finalizada reprovou na revalidação local")
			rejeitadas++
			continue
		}
		validas = append(validas, venda)
	}
	if rejeitadas > 0 {
		metrics.VendasRejeitadas.Add(float64(rejeitadas))
	}

	log.Info().
		Int("ids_listados", len(ids)).
		Int("detalhes_obtidos", len(detalhes)).
		Int("vendas_validas", len(validas)).
		Int("vendas_rejeitadas", rejeitadas).
		Msg("coleta de vendas concluída")

	return validas, nil
}
