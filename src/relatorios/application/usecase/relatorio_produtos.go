package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/application/response"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/port"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/service"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/infrastructure/cache"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/shared/infrastructure/logger"
)

// LimiteProdutosPadrao é o tamanho do ranking quando o caller não pede outro.
const LimiteProdutosPadrao = 10

// RelatorioProdutosUseCase monta o ranking de produtos mais vendidos do
// período, por quantidade.
type RelatorioProdutosUseCase struct {
	vendas   port.VendasFonte
	catalogo port.CatalogoFonte
}

// NewRelatorioProdutosUseCase cria uma nova instância do caso de uso.
func NewRelatorioProdutosUseCase(vendas port.VendasFonte, catalogo port.CatalogoFonte) *RelatorioProdutosUseCase {
	return &RelatorioProdutosUseCase{vendas: vendas, catalogo: catalogo}
}

type acumuladorProduto struct {
	nome       string
	quantidade int
	receita    decimal.Decimal
}

// Execute calcula o ranking. Os buckets são chaveados pelo nome resolvido do
// produto: dois IDs que resolvem para o mesmo nome são somados juntos — o
// catálogo reaproveita nomes quando um produto é recadastrado, e o relatório
// trata essas ocorrências como o mesmo item vendável.
func (uc *RelatorioProdutosUseCase) Execute(ctx context.Context, token string, periodo service.Periodo, limite int) (*response.RelatorioProdutosResponse, error) {
	comeco := time.Now()
	log := logger.WithExecucao("relatorio-produtos", uuid.NewString())

	if limite <= 0 {
		limite = LimiteProdutosPadrao
	}

	validas, err := coletarVendasFinalizadas(ctx, log, uc.vendas, token, periodo)
	if err != nil {
		return nil, err
	}

	produtos := cache.NewProdutoCache(uc.catalogo)
	buckets := make(map[string]*acumuladorProduto)

	for _, venda := range validas {
		for _, item := range venda.ProdutosLancados {
			nome := produtos.Nome(ctx, token, item.ProdutoID)

			bucket, ok := buckets[nome]
			if !ok {
				bucket = &acumuladorProduto{nome: nome, receita: decimal.Zero}
				buckets[nome] = bucket
			}
			bucket.quantidade += item.Quantidade
			bucket.receita = bucket.receita.Add(item.ValorFinal)
		}
	}

	ordenados := make([]*acumuladorProduto, 0, len(buckets))
	for _, bucket := range buckets {
		ordenados = append(ordenados, bucket)
	}
	sort.Slice(ordenados, func(i, j int) bool {
		if ordenados[i].quantidade != ordenados[j].quantidade {
			return ordenados[i].quantidade > ordenados[j].quantidade
		}
		return ordenados[i].nome < ordenados[j].nome
	})

	if len(ordenados) > limite {
		ordenados = ordenados[:limite]
	}

	resp := &response.RelatorioProdutosResponse{
		GeradoEm:       time.Now(),
		PeriodoInicial: periodo.Inicio,
		PeriodoFinal:   periodo.Fim,
		Produtos:       make([]response.ProdutoRanking, 0, len(ordenados)),
	}
	for i, bucket := range ordenados {
		resp.Produtos = append(resp.Produtos, response.ProdutoRanking{
			Posicao:      i + 1,
			Produto:      bucket.nome,
			Quantidade:   bucket.quantidade,
			TotalVendido: bucket.receita,
		})
	}

	log.Info().
		Int("produtos_ranqueados", len(resp.Produtos)).
		Dur("duracao", time.Since(comeco)).
		Msg("relatório de produtos gerado")

	return resp, nil
}
